package macros

import (
	"math"

	"github.com/ketotab/ketotab/diary"
	"github.com/ketotab/ketotab/numeric"
)

// Atwater calorie factors, in calories per gram.
const (
	CaloriesPerGramCarbs   = 4
	CaloriesPerGramProtein = 4
	CaloriesPerGramFat     = 9
)

// Share is one macro's portion of a row's total calories.
type Share struct {
	Column   *diary.Column
	Calories float64
	Percent  numeric.Value
}

// Percentages computes each macro's share of total calories for one
// nutrient row, typically a daily total, goal, or meal subtotal.
//
// It returns nil when the row has nothing to show: all three macro values
// missing (absent or unknown), or a calorie total of exactly zero (a
// genuine all-zero row shows nothing rather than a division by zero).
// Otherwise one Share is returned per macro whose nutrient is present; a
// partially-unknown row makes the total unknown, so its shares come back
// unknown rather than being skipped. Percentages are rounded independently
// and need not sum to 100.
func Percentages(nutrients []diary.Nutrient, netCarbs, protein, fat *diary.Column) []Share {
	carbsN, carbsOK := diary.NutrientOf(nutrients, netCarbs)
	proteinN, proteinOK := diary.NutrientOf(nutrients, protein)
	fatN, fatOK := diary.NutrientOf(nutrients, fat)

	carbCals := nutrientOrNaN(carbsN, carbsOK) * CaloriesPerGramCarbs
	proteinCals := nutrientOrNaN(proteinN, proteinOK) * CaloriesPerGramProtein
	fatCals := nutrientOrNaN(fatN, fatOK) * CaloriesPerGramFat
	totalCals := carbCals + proteinCals + fatCals

	if math.IsNaN(carbCals) && math.IsNaN(proteinCals) && math.IsNaN(fatCals) {
		return nil
	}
	if totalCals == 0 {
		return nil
	}

	var shares []Share
	if carbsOK {
		shares = append(shares, share(netCarbs, carbCals, totalCals))
	}
	if proteinOK {
		shares = append(shares, share(protein, proteinCals, totalCals))
	}
	if fatOK {
		shares = append(shares, share(fat, fatCals, totalCals))
	}
	return shares
}

func share(col *diary.Column, cals, totalCals float64) Share {
	return Share{
		Column:   col,
		Calories: cals,
		Percent:  roundedPercent(cals, totalCals),
	}
}

func nutrientOrNaN(n *diary.Nutrient, present bool) float64 {
	if !present {
		return math.NaN()
	}
	return n.Value.OrNaN()
}

func roundedPercent(part, whole float64) numeric.Value {
	return numeric.FromFloat64(math.Round(100 * part / whole))
}
