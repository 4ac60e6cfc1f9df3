package diary

import (
	"github.com/ketotab/ketotab/numeric"
)

// Layout identifies the diary table variant. It determines row
// classification rules and rendering conventions, and is immutable once
// detected from the root marker.
type Layout int

const (
	// LayoutFull is the interactive view: rows carry structural tags and
	// cells split values and percentages into sub-elements.
	LayoutFull Layout = iota + 1

	// LayoutPrintable is the static view: rows are positional and values
	// embed units directly in the cell text.
	LayoutPrintable
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutFull:
		return "full"
	case LayoutPrintable:
		return "printable"
	default:
		return "unknown"
	}
}

// Semantic column names produced by the resolver.
const (
	ColCarbs    = "carbs"
	ColFiber    = "fiber"
	ColFat      = "fat"
	ColProtein  = "protein"
	ColNetCarbs = "net_carbs"
)

// Column describes one resolved table column. Position is mutable:
// inserting a new column shifts every column at or after the insertion
// point. No two columns of a report share a position at any time.
type Column struct {
	Name     string
	Position int
}

// Nutrient is a value observed in one cell. Value is unknown exactly when
// the raw text matches neither the numeric grammar nor the zero-placeholder
// grammar; that signals "unknown", not zero.
type Nutrient struct {
	Column     *Column
	RawValue   string
	Value      numeric.Value
	RawPercent string
	Percent    numeric.Value
}

// Food is a single food row: a name plus one Nutrient per populated column.
type Food struct {
	Name      string
	Nutrients []Nutrient
}

// Meal groups the food rows between one meal header row and the next.
// Subtotal is nil when the meal had no subtotal row, which is distinct
// from a subtotal whose values are all unknown.
type Meal struct {
	Name     string
	Foods    []Food
	Subtotal []Nutrient
}

// Report is the root of the parsed model for one diary table.
// Total, Goal, and Remaining are nil when the corresponding row is absent;
// Goal and Remaining only exist under LayoutFull.
type Report struct {
	// ID correlates this report with its render plan and chart datasets
	// when a page contains several tables.
	ID string

	Layout    Layout
	Columns   []*Column
	Meals     []*Meal
	Total     []Nutrient
	Goal      []Nutrient
	Remaining []Nutrient

	// NetCarbs is the synthetic derived column, set once by the derived
	// column engine. A report owns at most one.
	NetCarbs *Column
}

// Column returns the resolved column with the given normalized name,
// or nil if the table has no such column.
func (r *Report) Column(name string) *Column {
	for _, c := range r.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnAt returns the column occupying the given position, or nil.
func (r *Report) ColumnAt(position int) *Column {
	for _, c := range r.Columns {
		if c.Position == position {
			return c
		}
	}
	return nil
}

// NutrientOf returns the nutrient belonging to col, if present.
// A nil column or nutrient list yields no nutrient.
func NutrientOf(nutrients []Nutrient, col *Column) (*Nutrient, bool) {
	if nutrients == nil || col == nil {
		return nil, false
	}
	for i := range nutrients {
		if nutrients[i].Column == col {
			return &nutrients[i], true
		}
	}
	return nil, false
}

// ValueOf returns the value of the nutrient belonging to col.
// An absent nutrient is unknown.
func ValueOf(nutrients []Nutrient, col *Column) numeric.Value {
	n, ok := NutrientOf(nutrients, col)
	if !ok {
		return numeric.Unknown()
	}
	return n.Value
}
