package macros

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketotab/ketotab/charts"
	"github.com/ketotab/ketotab/diary"
)

// summaryReport builds an augmented Full-layout report whose single food
// produces the given totals row.
func summaryReport(t *testing.T, carbs, fiber, fat, protein string) *diary.Report {
	t.Helper()

	header := headerCells("Foods", "Carbs", "Fiber", "Fat", "Protein")
	body := []diary.Row{
		row([]string{"meal_header"}, "Meal"),
		row(nil, "Food", carbs, fiber, fat, protein),
		row([]string{"total"}, "Totals", carbs, fiber, fat, protein),
	}
	r, _ := diary.Build(diary.LayoutFull, header, body, nil)

	_, err := InsertNetCarbs(r, -1)
	require.NoError(t, err)
	return r
}

func TestCaloriesDataset(t *testing.T) {
	// carbs 15, fiber 5 -> net carbs 10; protein 20; fat 15.
	// Calories 40/80/135, total 255.
	r := summaryReport(t, "15", "5", "15", "20")

	d := CaloriesDataset(r)
	require.True(t, d.Drawable())

	want := []charts.Point{
		{Label: "Carbs: 40 - 16%", Value: 40},
		{Label: "Protein: 80 - 31%", Value: 80},
		{Label: "Fat: 135 - 53%", Value: 135},
	}
	if diff := cmp.Diff(want, d.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestGramsDataset(t *testing.T) {
	r := summaryReport(t, "15", "5", "15", "20")

	d := GramsDataset(r)
	require.True(t, d.Drawable())

	want := []charts.Point{
		{Label: "Net Carbs: 10g - 22%", Value: 10},
		{Label: "Protein: 20g - 44%", Value: 20},
		{Label: "Fat: 15g - 33%", Value: 15},
	}
	if diff := cmp.Diff(want, d.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasets_MissingData(t *testing.T) {
	// Unknown fat makes both totals unknown: datasets must flag missing
	// data so the renderer shows an explicit state, not an empty chart.
	r := summaryReport(t, "15", "5", "n/a", "20")

	cd := CaloriesDataset(r)
	assert.True(t, cd.Missing)
	assert.False(t, cd.Drawable())

	gd := GramsDataset(r)
	assert.True(t, gd.Missing)
}

func TestDatasets_ZeroTotal(t *testing.T) {
	r := summaryReport(t, "0", "0", "0", "0")

	cd := CaloriesDataset(r)
	assert.False(t, cd.Missing)
	assert.Empty(t, cd.Points)
	assert.False(t, cd.Drawable())
}

func TestDatasets_NoTotalRow(t *testing.T) {
	header := headerCells("Foods", "Carbs", "Fiber")
	body := []diary.Row{
		row([]string{"meal_header"}, "Meal"),
		row(nil, "Food", "10", "2"),
	}
	r, _ := diary.Build(diary.LayoutFull, header, body, nil)
	_, err := InsertNetCarbs(r, -1)
	require.NoError(t, err)

	d := CaloriesDataset(r)
	assert.True(t, d.Missing, "absent daily total is missing data")
}
