package diary

// Cell is the DOM-free view of one table cell: the trimmed full text plus
// the text of the optional labeled sub-elements for value and percentage.
// When a cell has no value sub-element, ValueText is the cell text itself.
type Cell struct {
	Text        string
	ValueText   string
	PercentText string
	HasPercent  bool
}

// NewCell returns a Cell whose value text is the cell text, for sources
// without value sub-elements.
func NewCell(text string) Cell {
	return Cell{Text: text, ValueText: text}
}

// Row is the DOM-free view of one table row: its structural tags (the
// source's class markers) and its cells in order.
type Row struct {
	Tags  []string
	Cells []Cell
}

// HasTag reports whether the row carries the given structural tag.
func (r Row) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Structural tags recognized by the classifier.
const (
	tagSpacer     = "spacer"
	tagTotal      = "total"
	tagGoal       = "alt"
	tagRemaining  = "remaining"
	tagMealHeader = "meal_header"
	tagTitle      = "title"
	tagMealBottom = "bottom"
)
