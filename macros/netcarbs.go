package macros

import (
	"errors"
	"math"

	"github.com/ketotab/ketotab/diary"
	"github.com/ketotab/ketotab/numeric"
)

// ErrAlreadyAugmented is returned when a report already owns a net-carbs
// column. The engine is single-application: a second insertion would shift
// every column position a second time.
var ErrAlreadyAugmented = errors.New("macros: report already has a net carbs column")

// DefaultPosition is the fallback insertion point when the table has no
// carbs column to anchor on.
const DefaultPosition = 2

// InsertNetCarbs inserts the synthetic net-carbs column into the report and
// computes a derived nutrient for every existing nutrient row.
//
// A negative target means unspecified: the column lands immediately after
// the carbs column if present, else at [DefaultPosition]. The target is
// clamped into [0, len(columns)], and every existing column at or after it
// shifts right by one.
func InsertNetCarbs(r *diary.Report, target int) (*diary.Column, error) {
	if r.NetCarbs != nil {
		return nil, ErrAlreadyAugmented
	}

	carbsCol := r.Column(diary.ColCarbs)
	fiberCol := r.Column(diary.ColFiber)

	if target < 0 {
		if carbsCol != nil {
			target = carbsCol.Position + 1
		} else {
			target = DefaultPosition
		}
	}
	if target > len(r.Columns) {
		target = len(r.Columns)
	}

	for _, c := range r.Columns {
		if c.Position >= target {
			c.Position++
		}
	}

	col := &diary.Column{Name: diary.ColNetCarbs, Position: target}
	r.Columns = append(r.Columns, col)
	r.NetCarbs = col

	// Accumulators start numeric: a meal with no foods reports zero net
	// carbs, and only an unknown addend makes a sum unknown.
	totalNet := 0.0

	for _, meal := range r.Meals {
		mealNet := 0.0

		for i := range meal.Foods {
			food := &meal.Foods[i]

			carbs := diary.ValueOf(food.Nutrients, carbsCol).OrNaN()
			fiber := diary.ValueOf(food.Nutrients, fiberCol).OrNaN()
			net := math.Max(carbs-fiber, 0)

			mealNet += net
			totalNet += net
			food.Nutrients = append(food.Nutrients, derived(col, net))
		}

		if meal.Subtotal != nil {
			meal.Subtotal = append(meal.Subtotal, derived(col, mealNet))
		}
	}

	// A goal row is a single target number: its net carbs is its carbs
	// value directly, with no fiber distinction.
	goalNet := diary.ValueOf(r.Goal, carbsCol).OrNaN()

	if r.Total != nil {
		r.Total = append(r.Total, derived(col, totalNet))
	}
	if r.Goal != nil {
		r.Goal = append(r.Goal, derived(col, goalNet))
	}
	if r.Remaining != nil {
		r.Remaining = append(r.Remaining, derived(col, goalNet-totalNet))
	}

	return col, nil
}

// derived wraps a computed float as a nutrient of the synthetic column.
// NaN becomes unknown and renders as the unknown marker.
func derived(col *diary.Column, f float64) diary.Nutrient {
	v := numeric.FromFloat64(f)
	return diary.Nutrient{Column: col, RawValue: v.String(), Value: v}
}
