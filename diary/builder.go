package diary

import (
	"strings"

	"github.com/ketotab/ketotab/numeric"
)

// RowMap records which body row produced each model row, so a source
// adapter can address the original rows when applying a render plan.
// Indexes refer into the body row slice passed to Build; -1 means absent.
type RowMap struct {
	Total     int
	Goal      int
	Remaining int
	Meals     []MealRows
}

// MealRows holds the source row indexes for one meal.
type MealRows struct {
	Header   int
	Subtotal int // -1 when the meal has no subtotal row
	Foods    []int
}

// Build constructs a Report from a header row and classified body rows.
// The returned RowMap parallels the report structure row for row.
//
// Absent structural pieces degrade to nil rather than failing: a table
// without a carbs column, goal row, or subtotals still builds.
func Build(layout Layout, header []Cell, body []Row, aliases map[string]string) (*Report, *RowMap) {
	report := &Report{
		Layout:  layout,
		Columns: ResolveColumns(header, aliases),
	}
	rowMap := &RowMap{Total: -1, Goal: -1, Remaining: -1}

	c := classifyRows(layout, body)

	for _, group := range groupMeals(body, c.mealRows) {
		meal := &Meal{Name: mealName(body[group.header])}
		mealRows := MealRows{Header: group.header, Subtotal: group.subtotal}

		for _, i := range group.foods {
			meal.Foods = append(meal.Foods, readFood(body[i], report.Columns))
			mealRows.Foods = append(mealRows.Foods, i)
		}
		if group.subtotal >= 0 {
			meal.Subtotal = readNutrients(body[group.subtotal], report.Columns)
		}

		report.Meals = append(report.Meals, meal)
		rowMap.Meals = append(rowMap.Meals, mealRows)
	}

	if c.total >= 0 {
		report.Total = readNutrients(body[c.total], report.Columns)
		rowMap.Total = c.total
	}
	if c.goal >= 0 {
		report.Goal = readNutrients(body[c.goal], report.Columns)
		rowMap.Goal = c.goal
	}
	if c.remaining >= 0 {
		report.Remaining = readNutrients(body[c.remaining], report.Columns)
		rowMap.Remaining = c.remaining
	}

	return report, rowMap
}

// mealName is the trimmed text of the header row's first cell.
func mealName(header Row) string {
	if len(header.Cells) == 0 {
		return ""
	}
	return strings.TrimSpace(header.Cells[0].Text)
}

// readFood reads one food row: the first cell is the name, the remaining
// cells are nutrients keyed against the resolved columns.
func readFood(row Row, columns []*Column) Food {
	food := Food{Nutrients: readNutrients(row, columns)}
	if len(row.Cells) > 0 {
		food.Name = strings.TrimSpace(row.Cells[0].Text)
	}
	return food
}

// readNutrients reads every cell at position >= 1 into a Nutrient. A cell
// whose position has no resolved column (tables may have stray numeric
// columns) keeps a nil column reference.
func readNutrients(row Row, columns []*Column) []Nutrient {
	nutrients := make([]Nutrient, 0, len(row.Cells))
	for i := 1; i < len(row.Cells); i++ {
		cell := row.Cells[i]

		n := Nutrient{
			Column:   columnAt(columns, i),
			RawValue: strings.TrimSpace(cell.ValueText),
		}
		n.Value = numeric.Parse(n.RawValue)

		if cell.HasPercent {
			n.RawPercent = strings.TrimSpace(cell.PercentText)
			n.Percent = numeric.Parse(n.RawPercent)
		}

		nutrients = append(nutrients, n)
	}
	return nutrients
}

func columnAt(columns []*Column, position int) *Column {
	for _, c := range columns {
		if c.Position == position {
			return c
		}
	}
	return nil
}
