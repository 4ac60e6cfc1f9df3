// Package charts defines the handoff surface between the report pipeline
// and a charting collaborator.
//
// The core never draws anything. It produces [Dataset] values (label/value
// pairs plus an explicit missing-data signal) and hands them to a
// [Renderer] once the collaborator has signaled readiness through a [Gate].
package charts

// Point is one slice of an aggregate breakdown.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Dataset is one aggregate breakdown for a report.
//
// Missing marks a dataset whose inputs were unknown: the rendering side
// must show an explicit "data missing" state instead of drawing an empty
// chart. A dataset with no points and Missing unset is a legitimate
// zero-total case and should simply not be drawn.
type Dataset struct {
	Title   string  `json:"title"`
	Points  []Point `json:"points,omitempty"`
	Missing bool    `json:"missing,omitempty"`
}

// Drawable reports whether the dataset has anything to draw.
func (d Dataset) Drawable() bool {
	return !d.Missing && len(d.Points) > 0
}

// Renderer draws a finished aggregate. Implementations live outside the
// core (a browser pie-chart widget, a terminal table, a JSON dump).
type Renderer interface {
	Draw(Dataset) error
}
