// Package macros computes derived macro-nutrient metrics over a parsed
// diary report.
//
// This package implements the numeric half of the pipeline: inserting the
// synthetic net-carbohydrates column, computing each macro's share of total
// calories, and building the aggregate chart datasets.
//
// # Net Carbs
//
// [InsertNetCarbs] appends one synthetic column to the report and one
// derived nutrient per existing nutrient row:
//
//	netCarbs = max(carbs - fiber, 0)
//
// Unknown propagates as unknown: a food whose carbs or fiber value could
// not be parsed yields an unknown net-carbs value, never zero, and an
// unknown addend makes the enclosing meal subtotal and daily total unknown
// in turn. A meal with no foods has zero net carbs.
//
// # Calorie Shares
//
// [Percentages] converts a row's net-carbs/protein/fat grams to calories
// using the standard Atwater factors (4, 4, and 9 calories per gram) and
// returns each macro's rounded share of the total. Rows with nothing to
// show — all three macros absent, or an exact zero calorie total — yield
// no shares at all, which is distinct from a row whose shares are unknown.
//
// # Chart Aggregates
//
// [CaloriesDataset] and [GramsDataset] build the two daily-total breakdowns
// handed to the charting collaborator, flagging missing data explicitly so
// the rendering side never draws an empty chart by accident.
package macros
