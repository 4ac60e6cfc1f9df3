package macros

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ketotab/ketotab/charts"
	"github.com/ketotab/ketotab/diary"
)

// Dataset titles for the two daily-total breakdowns.
const (
	CaloriesDatasetTitle = "Daily Totals by Calories"
	GramsDatasetTitle    = "Daily Totals by Grams"
)

// CaloriesDataset builds the daily-totals-by-calories breakdown for the
// charting collaborator. An unknown input anywhere marks the dataset
// missing; an exact zero total yields an empty, undrawable dataset.
func CaloriesDataset(r *diary.Report) charts.Dataset {
	d := charts.Dataset{Title: CaloriesDatasetTitle}

	netCarbs := diary.ValueOf(r.Total, r.NetCarbs).OrNaN()
	protein := diary.ValueOf(r.Total, r.Column(diary.ColProtein)).OrNaN()
	fat := diary.ValueOf(r.Total, r.Column(diary.ColFat)).OrNaN()

	carbCals := netCarbs * CaloriesPerGramCarbs
	proteinCals := protein * CaloriesPerGramProtein
	fatCals := fat * CaloriesPerGramFat
	totalCals := carbCals + proteinCals + fatCals

	if math.IsNaN(totalCals) {
		d.Missing = true
		return d
	}
	if totalCals == 0 {
		return d
	}

	d.Points = []charts.Point{
		caloriePoint("Carbs", carbCals, totalCals),
		caloriePoint("Protein", proteinCals, totalCals),
		caloriePoint("Fat", fatCals, totalCals),
	}
	return d
}

// GramsDataset builds the daily-totals-by-grams breakdown over net carbs,
// protein, and fat.
func GramsDataset(r *diary.Report) charts.Dataset {
	d := charts.Dataset{Title: GramsDatasetTitle}

	netCarbs := diary.ValueOf(r.Total, r.NetCarbs).OrNaN()
	protein := diary.ValueOf(r.Total, r.Column(diary.ColProtein)).OrNaN()
	fat := diary.ValueOf(r.Total, r.Column(diary.ColFat)).OrNaN()

	totalGrams := netCarbs + protein + fat

	if math.IsNaN(totalGrams) {
		d.Missing = true
		return d
	}
	if totalGrams == 0 {
		return d
	}

	d.Points = []charts.Point{
		gramPoint("Net Carbs", netCarbs, totalGrams),
		gramPoint("Protein", protein, totalGrams),
		gramPoint("Fat", fat, totalGrams),
	}
	return d
}

func caloriePoint(name string, cals, totalCals float64) charts.Point {
	return charts.Point{
		Label: fmt.Sprintf("%s: %s - %d%%", name, formatFloat(cals), int(math.Round(100*cals/totalCals))),
		Value: cals,
	}
}

func gramPoint(name string, grams, totalGrams float64) charts.Point {
	return charts.Point{
		Label: fmt.Sprintf("%s: %sg - %d%%", name, formatFloat(grams), int(math.Round(100*grams/totalGrams))),
		Value: grams,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
