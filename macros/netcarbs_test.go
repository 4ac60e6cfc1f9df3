package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketotab/ketotab/diary"
)

func headerCells(texts ...string) []diary.Cell {
	out := make([]diary.Cell, len(texts))
	for i, t := range texts {
		out[i] = diary.NewCell(t)
	}
	return out
}

func row(tags []string, texts ...string) diary.Row {
	r := diary.Row{Tags: tags}
	for _, t := range texts {
		r.Cells = append(r.Cells, diary.NewCell(t))
	}
	return r
}

// fullReport builds a Full-layout report with carbs and fiber columns and
// one meal per foods slice. Each food is {carbs, fiber}.
func fullReport(t *testing.T, meals [][][2]string, withSummary bool) *diary.Report {
	t.Helper()

	header := headerCells("Foods", "Calories", "Carbs", "Fiber")
	var body []diary.Row
	for _, foods := range meals {
		body = append(body, row([]string{"meal_header"}, "Meal"))
		for _, f := range foods {
			body = append(body, row(nil, "Food", "100", f[0], f[1]))
		}
		body = append(body, row([]string{"bottom"}, "", "", "", ""))
	}
	if withSummary {
		body = append(body,
			row([]string{"total"}, "Totals", "", "30", "5"),
			row([]string{"total", "alt"}, "Goal", "", "50", "0"),
			row([]string{"total", "remaining"}, "Remaining", "", "20", "0"),
		)
	}

	report, _ := diary.Build(diary.LayoutFull, header, body, nil)
	return report
}

func netCarbsOf(t *testing.T, r *diary.Report, nutrients []diary.Nutrient) (float64, bool) {
	t.Helper()
	require.NotNil(t, r.NetCarbs)
	return diary.ValueOf(nutrients, r.NetCarbs).Float64()
}

func TestInsertNetCarbs_FoodValues(t *testing.T) {
	tests := []struct {
		name        string
		carbs       string
		fiber       string
		want        float64
		wantUnknown bool
	}{
		{"simple subtraction", "20", "6", 14, false},
		{"clamped at zero", "5", "8", 0, false},
		{"unknown carbs", "n/a", "3", 0, true},
		{"unknown fiber", "7", "n/a", 0, true},
		{"placeholder fiber is zero", "12", "--g", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fullReport(t, [][][2]string{{{tt.carbs, tt.fiber}}}, false)

			_, err := InsertNetCarbs(r, -1)
			require.NoError(t, err)

			got, known := netCarbsOf(t, r, r.Meals[0].Foods[0].Nutrients)
			if tt.wantUnknown {
				assert.False(t, known, "net carbs should be unknown, not %v", got)
				return
			}
			require.True(t, known)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsertNetCarbs_ColumnShift(t *testing.T) {
	r := fullReport(t, [][][2]string{{{"20", "6"}}}, false)

	// Columns before: calories@1, carbs@2, fiber@3. Insert at 2.
	col, err := InsertNetCarbs(r, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, col.Position)
	assert.Equal(t, diary.ColNetCarbs, col.Name)
	assert.Equal(t, 1, r.Column("calories").Position)
	assert.Equal(t, 3, r.Column(diary.ColCarbs).Position)
	assert.Equal(t, 4, r.Column(diary.ColFiber).Position)

	// No two columns may share a position.
	seen := map[int]string{}
	for _, c := range r.Columns {
		if prev, dup := seen[c.Position]; dup {
			t.Fatalf("columns %q and %q share position %d", prev, c.Name, c.Position)
		}
		seen[c.Position] = c.Name
	}
}

func TestInsertNetCarbs_DefaultPosition(t *testing.T) {
	// With a carbs column at 2, the default target is 3.
	r := fullReport(t, [][][2]string{{{"20", "6"}}}, false)
	col, err := InsertNetCarbs(r, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, col.Position)

	// Without a carbs column, the default target is DefaultPosition.
	header := headerCells("Foods", "Calories", "Fat", "Protein")
	body := []diary.Row{
		row([]string{"meal_header"}, "Lunch"),
		row(nil, "Rice", "200", "1", "4"),
	}
	r2, _ := diary.Build(diary.LayoutFull, header, body, nil)
	col2, err := InsertNetCarbs(r2, -1)
	require.NoError(t, err)
	assert.Equal(t, DefaultPosition, col2.Position)
}

func TestInsertNetCarbs_ClampsTarget(t *testing.T) {
	r := fullReport(t, [][][2]string{{{"20", "6"}}}, false)

	// Columns: calories, carbs, fiber -> len 3; 99 clamps to 3.
	col, err := InsertNetCarbs(r, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, col.Position)
}

func TestInsertNetCarbs_SumPropagation(t *testing.T) {
	// Meal A: one food carbs=20 fiber=5 -> subtotal 15.
	// Meal B: one food carbs=10 fiber=unknown -> subtotal unknown.
	// Daily total: unknown (NaN propagates through the sum).
	r := fullReport(t, [][][2]string{
		{{"20", "5"}},
		{{"10", "n/a"}},
	}, true)

	_, err := InsertNetCarbs(r, -1)
	require.NoError(t, err)

	subA, knownA := netCarbsOf(t, r, r.Meals[0].Subtotal)
	require.True(t, knownA)
	assert.Equal(t, 15.0, subA)

	_, knownB := netCarbsOf(t, r, r.Meals[1].Subtotal)
	assert.False(t, knownB, "meal B subtotal should be unknown")

	_, knownTotal := netCarbsOf(t, r, r.Total)
	assert.False(t, knownTotal, "daily total should be unknown")
}

func TestInsertNetCarbs_EmptyMealSubtotalZero(t *testing.T) {
	r := fullReport(t, [][][2]string{{}}, false)

	_, err := InsertNetCarbs(r, -1)
	require.NoError(t, err)

	got, known := netCarbsOf(t, r, r.Meals[0].Subtotal)
	require.True(t, known, "empty meal reports zero net carbs, not unknown")
	assert.Equal(t, 0.0, got)
}

func TestInsertNetCarbs_GoalAndRemaining(t *testing.T) {
	tests := []struct {
		name     string
		goal     string
		consumed [2]string // carbs, fiber for the single food
		want     float64
	}{
		{"remaining positive", "50", [2]string{"30", "0"}, 20},
		{"remaining negative", "50", [2]string{"60", "0"}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := headerCells("Foods", "Calories", "Carbs", "Fiber")
			body := []diary.Row{
				row([]string{"meal_header"}, "Meal"),
				row(nil, "Food", "", tt.consumed[0], tt.consumed[1]),
				row([]string{"total"}, "Totals", "", tt.consumed[0], tt.consumed[1]),
				row([]string{"total", "alt"}, "Goal", "", tt.goal, "0"),
				row([]string{"total", "remaining"}, "Remaining", "", "", ""),
			}
			r, _ := diary.Build(diary.LayoutFull, header, body, nil)

			_, err := InsertNetCarbs(r, -1)
			require.NoError(t, err)

			// Goal net carbs is the goal's carbs value directly.
			goalNet, known := netCarbsOf(t, r, r.Goal)
			require.True(t, known)
			goalWant := 50.0
			assert.Equal(t, goalWant, goalNet)

			rem, known := netCarbsOf(t, r, r.Remaining)
			require.True(t, known)
			assert.Equal(t, tt.want, rem)
		})
	}
}

func TestInsertNetCarbs_Twice(t *testing.T) {
	r := fullReport(t, [][][2]string{{{"20", "6"}}}, false)

	_, err := InsertNetCarbs(r, -1)
	require.NoError(t, err)

	_, err = InsertNetCarbs(r, -1)
	assert.ErrorIs(t, err, ErrAlreadyAugmented)
}
