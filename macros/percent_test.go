package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketotab/ketotab/diary"
	"github.com/ketotab/ketotab/numeric"
)

var (
	netCarbsCol = &diary.Column{Name: diary.ColNetCarbs, Position: 2}
	proteinCol  = &diary.Column{Name: diary.ColProtein, Position: 3}
	fatCol      = &diary.Column{Name: diary.ColFat, Position: 4}
)

func nutrientRow(netCarbs, protein, fat numeric.Value) []diary.Nutrient {
	return []diary.Nutrient{
		{Column: netCarbsCol, Value: netCarbs},
		{Column: proteinCol, Value: protein},
		{Column: fatCol, Value: fat},
	}
}

func TestPercentages_Standard(t *testing.T) {
	// netCarbs=10, protein=20, fat=15 -> calories 40/80/135, total 255,
	// rounded shares 16/31/53 (independently rounded, need not sum to 100).
	shares := Percentages(
		nutrientRow(numeric.Known(10), numeric.Known(20), numeric.Known(15)),
		netCarbsCol, proteinCol, fatCol,
	)
	require.Len(t, shares, 3)

	assert.Equal(t, 40.0, shares[0].Calories)
	assert.Equal(t, 80.0, shares[1].Calories)
	assert.Equal(t, 135.0, shares[2].Calories)

	wantPercents := []float64{16, 31, 53}
	for i, want := range wantPercents {
		got, known := shares[i].Percent.Float64()
		require.True(t, known, "share %d should be known", i)
		assert.Equal(t, want, got, "share %d", i)
	}
}

func TestPercentages_ZeroTotalSkipped(t *testing.T) {
	// A genuine all-zero row shows nothing rather than dividing by zero.
	shares := Percentages(
		nutrientRow(numeric.Known(0), numeric.Known(0), numeric.Known(0)),
		netCarbsCol, proteinCol, fatCol,
	)
	assert.Nil(t, shares)
}

func TestPercentages_AllMissingSkipped(t *testing.T) {
	// All three macro nutrients absent from the row: nothing to show.
	shares := Percentages(
		[]diary.Nutrient{{Column: &diary.Column{Name: "calories", Position: 1}}},
		netCarbsCol, proteinCol, fatCol,
	)
	assert.Nil(t, shares)

	shares = Percentages(nil, netCarbsCol, proteinCol, fatCol)
	assert.Nil(t, shares)
}

func TestPercentages_AllUnknownValuesSkipped(t *testing.T) {
	// All three macro values unknown: the row is skipped whole, the same as
	// when the nutrients are absent.
	shares := Percentages(
		nutrientRow(numeric.Unknown(), numeric.Unknown(), numeric.Unknown()),
		netCarbsCol, proteinCol, fatCol,
	)
	assert.Nil(t, shares)
}

func TestPercentages_PartiallyUnknownRowShown(t *testing.T) {
	// One unknown value makes the total unknown, so the row is shown with
	// every share unknown rather than being skipped.
	shares := Percentages(
		nutrientRow(numeric.Known(10), numeric.Unknown(), numeric.Known(15)),
		netCarbsCol, proteinCol, fatCol,
	)
	require.Len(t, shares, 3)
	for i, s := range shares {
		assert.False(t, s.Percent.IsKnown(), "share %d should be unknown", i)
	}
}

func TestPercentages_AbsentMacroSkippedIndividually(t *testing.T) {
	// The fat nutrient is absent: it contributes NaN to the total (making
	// the shown shares unknown) but produces no share of its own.
	nutrients := []diary.Nutrient{
		{Column: netCarbsCol, Value: numeric.Known(10)},
		{Column: proteinCol, Value: numeric.Known(20)},
	}
	shares := Percentages(nutrients, netCarbsCol, proteinCol, fatCol)
	require.Len(t, shares, 2)

	assert.Same(t, netCarbsCol, shares[0].Column)
	assert.Same(t, proteinCol, shares[1].Column)
	for i, s := range shares {
		assert.False(t, s.Percent.IsKnown(), "share %d should be unknown", i)
	}
}

func TestPercentages_MissingColumnBehavesLikeAbsent(t *testing.T) {
	// No fat column resolved at all: same shape as an absent nutrient.
	nutrients := nutrientRow(numeric.Known(10), numeric.Known(20), numeric.Known(15))
	shares := Percentages(nutrients, netCarbsCol, proteinCol, nil)
	require.Len(t, shares, 2)
}
