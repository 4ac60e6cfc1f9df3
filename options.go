package ketotab

// Options holds configuration for the augmentation pipeline.
type Options struct {
	// Insertion target for the net-carbs column; negative means after
	// the carbs column (or position 2 without one).
	target int

	// Header cell content for the inserted column.
	title string
	unit  string

	// keepCarbs leaves the raw carbs column visible.
	keepCarbs bool

	// aliases maps normalized header names onto canonical nutrient names.
	aliases map[string]string
}

// defaultOptions returns the default pipeline options. Empty title and
// unit defer to the render package's defaults.
func defaultOptions() Options {
	return Options{
		target: -1,
	}
}
