// Package diary provides the intermediate representation (IR) for parsed
// food-diary reports.
//
// This package defines the user-facing data structures produced by parsing a
// diary table, along with the layout-aware logic that builds them: column
// resolution, row classification, and report construction. It is deliberately
// DOM-free: rows and cells arrive as plain [Row] and [Cell] values, so the
// model can be built and tested without any rendering surface present.
//
// # Report Structure
//
// A [Report] is the root of the model:
//
//   - [Column] values describe the resolved header columns by normalized
//     name and position.
//   - [Meal] values group [Food] rows between a meal header row and an
//     optional subtotal row.
//   - Total, Goal, and Remaining hold the optional summary rows; Goal and
//     Remaining exist only under the Full layout.
//
// Every populated cell becomes a [Nutrient], which keeps the raw text
// alongside the parsed nullable value so that "unknown" never collapses
// into zero.
//
// # Layouts
//
// The two source layouts are modeled as the closed [Layout] enum rather
// than as separate renderers. [LayoutFull] rows carry structural tags
// (spacer, total, meal_header, bottom, ...); [LayoutPrintable] rows are
// positional, with the last row serving as the daily total. A single
// classifier branching on the enum keeps the state space explicit.
//
// # Building
//
// [Build] turns a header row and body rows into a Report plus a [RowMap]
// recording which source row produced each model row, so a DOM adapter can
// later address the original rows when applying a render plan.
package diary
