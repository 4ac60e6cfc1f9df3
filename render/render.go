// Package render translates an augmented diary report into a concrete
// transformation plan.
//
// A [Plan] is the external-facing product of the pipeline: layout-variant
// aware "insert this cell here" and "hide this column" instructions
// consumable by a DOM-mutation collaborator, percentage annotations for the
// summary rows, and the aggregate datasets for the charting collaborator.
// The core never touches styling; it emits semantic cell payloads only.
package render

import (
	"errors"
	"strconv"

	"github.com/ketotab/ketotab/charts"
	"github.com/ketotab/ketotab/diary"
	"github.com/ketotab/ketotab/macros"
	"github.com/ketotab/ketotab/numeric"
)

// ErrNotAugmented is returned when a plan is requested for a report that
// has no net-carbs column yet.
var ErrNotAugmented = errors.New("render: report has no net carbs column")

// UnknownMarker is the literal text rendered for unknown values, so a user
// cannot mistake missing data for a real measurement.
const UnknownMarker = "?"

// Default header cell content for the inserted column.
const (
	DefaultTitle = "nCarbs"
	DefaultUnit  = "g"
)

// Sign flags a semantically signed value for the rendering side.
// Unknown values carry no sign.
type Sign int

const (
	SignNone Sign = iota
	SignPositive
	SignNegative
)

// HeaderCell is the payload for the inserted column's header.
type HeaderCell struct {
	Title string `json:"title"`
	Unit  string `json:"unit"`
}

// CellPayload is the payload for one inserted nutrient cell.
type CellPayload struct {
	ValueText string `json:"value_text"`
	Unknown   bool   `json:"unknown,omitempty"`
	Sign      Sign   `json:"sign,omitempty"`
}

// PercentCell is a percentage annotation for an existing cell, addressed
// by its column position after the insertion shift.
type PercentCell struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	Unknown  bool   `json:"unknown,omitempty"`
}

// Plan is the complete set of instructions derived from one report.
// Row-level payload slices parallel the report's structure: Foods[i][j] is
// meal i, food j; Subtotals[i] is nil when meal i has no subtotal row.
type Plan struct {
	ReportID string       `json:"report_id,omitempty"`
	Layout   diary.Layout `json:"-"`

	// Column insertion.
	Position  int             `json:"position"`
	Header    HeaderCell      `json:"header"`
	Foods     [][]CellPayload `json:"foods"`
	Subtotals []*CellPayload  `json:"subtotals"`
	Total     *CellPayload    `json:"total,omitempty"`
	Goal      *CellPayload    `json:"goal,omitempty"`
	Remaining *CellPayload    `json:"remaining,omitempty"`

	// Percentage annotations for summary rows.
	TotalPercents    []PercentCell   `json:"total_percents,omitempty"`
	GoalPercents     []PercentCell   `json:"goal_percents,omitempty"`
	SubtotalPercents [][]PercentCell `json:"subtotal_percents,omitempty"`

	// Columns to suppress, by position after the insertion shift.
	HideColumns []int `json:"hide_columns,omitempty"`

	// Aggregates for the charting collaborator.
	Calories charts.Dataset `json:"calories"`
	Grams    charts.Dataset `json:"grams"`
}

// Options controls plan emission.
type Options struct {
	// Header cell content; zero values fall back to the defaults.
	Title string
	Unit  string

	// KeepCarbs leaves the raw carbs column visible instead of hiding it.
	KeepCarbs bool
}

// Emit produces the transformation plan for an augmented report.
func Emit(r *diary.Report, opts Options) (*Plan, error) {
	if r.NetCarbs == nil {
		return nil, ErrNotAugmented
	}

	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Unit == "" {
		opts.Unit = DefaultUnit
	}

	plan := &Plan{
		ReportID: r.ID,
		Layout:   r.Layout,
		Position: r.NetCarbs.Position,
		Header:   HeaderCell{Title: opts.Title, Unit: opts.Unit},
	}

	proteinCol := r.Column(diary.ColProtein)
	fatCol := r.Column(diary.ColFat)

	for _, meal := range r.Meals {
		foodCells := make([]CellPayload, 0, len(meal.Foods))
		for _, food := range meal.Foods {
			foodCells = append(foodCells, payload(r.Layout, diary.ValueOf(food.Nutrients, r.NetCarbs), opts.Unit, false))
		}
		plan.Foods = append(plan.Foods, foodCells)

		if meal.Subtotal != nil {
			p := payload(r.Layout, diary.ValueOf(meal.Subtotal, r.NetCarbs), opts.Unit, false)
			plan.Subtotals = append(plan.Subtotals, &p)
			plan.SubtotalPercents = append(plan.SubtotalPercents,
				percentCells(macros.Percentages(meal.Subtotal, r.NetCarbs, proteinCol, fatCol)))
		} else {
			plan.Subtotals = append(plan.Subtotals, nil)
			plan.SubtotalPercents = append(plan.SubtotalPercents, nil)
		}
	}

	if r.Total != nil {
		p := payload(r.Layout, diary.ValueOf(r.Total, r.NetCarbs), opts.Unit, false)
		plan.Total = &p
		plan.TotalPercents = percentCells(macros.Percentages(r.Total, r.NetCarbs, proteinCol, fatCol))
	}
	if r.Goal != nil {
		p := payload(r.Layout, diary.ValueOf(r.Goal, r.NetCarbs), opts.Unit, false)
		plan.Goal = &p
		plan.GoalPercents = percentCells(macros.Percentages(r.Goal, r.NetCarbs, proteinCol, fatCol))
	}
	if r.Remaining != nil {
		// The one place a signed value is semantically meaningful:
		// remaining budget exceeded or not.
		p := payload(r.Layout, diary.ValueOf(r.Remaining, r.NetCarbs), opts.Unit, true)
		plan.Remaining = &p
	}

	if !opts.KeepCarbs {
		if carbs := r.Column(diary.ColCarbs); carbs != nil {
			plan.HideColumns = append(plan.HideColumns, carbs.Position)
		}
	}

	plan.Calories = macros.CaloriesDataset(r)
	plan.Grams = macros.GramsDataset(r)

	return plan, nil
}

// payload formats one derived value for its layout: the Printable layout
// embeds the unit in the value string, the Full layout keeps units in the
// header subtitle. Unknown values render as the unknown marker and carry
// no sign.
func payload(layout diary.Layout, v numeric.Value, unit string, signed bool) CellPayload {
	f, known := v.Float64()
	if !known {
		return CellPayload{ValueText: UnknownMarker, Unknown: true}
	}

	text := strconv.FormatFloat(f, 'f', -1, 64)
	if layout == diary.LayoutPrintable {
		text += unit
	}

	p := CellPayload{ValueText: text}
	if signed {
		if f < 0 {
			p.Sign = SignNegative
		} else {
			p.Sign = SignPositive
		}
	}
	return p
}

func percentCells(shares []macros.Share) []PercentCell {
	if shares == nil {
		return nil
	}

	cells := make([]PercentCell, 0, len(shares))
	for _, s := range shares {
		cell := PercentCell{Position: s.Column.Position}
		if pct, known := s.Percent.Float64(); known {
			cell.Text = strconv.FormatFloat(pct, 'f', -1, 64) + "%"
		} else {
			cell.Text = UnknownMarker + "%"
			cell.Unknown = true
		}
		cells = append(cells, cell)
	}
	return cells
}
