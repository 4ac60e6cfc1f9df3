package diaryhtml

import (
	"errors"
	"strconv"

	"golang.org/x/net/html"

	"github.com/ketotab/ketotab/diary"
	"github.com/ketotab/ketotab/render"
)

// ErrNotRead is returned when a plan is applied to a table whose report
// has not been built yet: the plan's row addressing comes from the build.
var ErrNotRead = errors.New("diaryhtml: table has not been read into a report")

// Apply mutates the table's node tree according to the plan: inserts the
// derived column's header and nutrient cells, annotates summary rows with
// calorie percentages, flags the remaining row's sign, and hides
// suppressed columns. The document can then be serialized via
// [Document.Render].
func Apply(t *Table, plan *render.Plan) error {
	if t.rowMap == nil {
		return ErrNotRead
	}

	t.applyHeaderCell(t.headerRow, plan)
	if t.Layout == diary.LayoutFull && t.footerRow != nil {
		t.applyHeaderCell(t.footerRow, plan)
	}

	for i, mealRows := range t.rowMap.Meals {
		if t.Layout == diary.LayoutPrintable {
			widenFirstCell(t.bodyRow(mealRows.Header))
		}

		for j, rowIdx := range mealRows.Foods {
			t.applyNutrientCell(t.bodyRow(rowIdx), plan, plan.Foods[i][j])
		}

		if mealRows.Subtotal >= 0 && plan.Subtotals[i] != nil {
			row := t.bodyRow(mealRows.Subtotal)
			t.applyNutrientCell(row, plan, *plan.Subtotals[i])
			annotatePercents(row, plan.SubtotalPercents[i])
		}
	}

	if t.rowMap.Total >= 0 && plan.Total != nil {
		row := t.bodyRow(t.rowMap.Total)
		t.applyNutrientCell(row, plan, *plan.Total)
		annotatePercents(row, plan.TotalPercents)
	}
	if t.rowMap.Goal >= 0 && plan.Goal != nil {
		row := t.bodyRow(t.rowMap.Goal)
		t.applyNutrientCell(row, plan, *plan.Goal)
		annotatePercents(row, plan.GoalPercents)
	}
	if t.rowMap.Remaining >= 0 && plan.Remaining != nil {
		t.applyNutrientCell(t.bodyRow(t.rowMap.Remaining), plan, *plan.Remaining)
	}

	for _, pos := range plan.HideColumns {
		t.hideColumn(pos)
	}

	return nil
}

func (t *Table) bodyRow(i int) *html.Node {
	if i < 0 || i >= len(t.bodyRows) {
		return nil
	}
	return t.bodyRows[i]
}

// applyHeaderCell inserts the derived column's header cell. The Full
// layout mirrors the host page's nutrient headers: a subtitle holding the
// unit and a percentage marker; the Printable layout shows the bare title.
func (t *Table) applyHeaderCell(row *html.Node, plan *render.Plan) {
	cell := insertCell(row, plan.Position)
	if cell == nil {
		return
	}

	cell.AppendChild(newText(plan.Header.Title))

	if t.Layout != diary.LayoutFull {
		return
	}

	addClass(cell, "alt", "nutrient-column", "show-pointer", "is-macro")

	subtitle := newElement("div")
	addClass(subtitle, "subtitle")
	cell.AppendChild(subtitle)

	value := newElement("span")
	addClass(value, classValue)
	value.AppendChild(newText(plan.Header.Unit))
	subtitle.AppendChild(value)

	pct := newElement("span")
	addClass(pct, classPercentage)
	pct.AppendChild(newText("%"))
	subtitle.AppendChild(pct)
}

// applyNutrientCell inserts one derived value cell. The Full layout splits
// the cell into value and percentage sub-elements like the host page's own
// nutrient cells; the Printable layout writes the text directly.
func (t *Table) applyNutrientCell(row *html.Node, plan *render.Plan, payload render.CellPayload) {
	cell := insertCell(row, plan.Position)
	if cell == nil {
		return
	}

	if t.Layout == diary.LayoutFull {
		value := newElement("span")
		addClass(value, classValue)
		value.AppendChild(newText(payload.ValueText))
		cell.AppendChild(value)

		pct := newElement("span")
		addClass(pct, classPercentage)
		cell.AppendChild(pct)
	} else {
		cell.AppendChild(newText(payload.ValueText))
	}

	switch payload.Sign {
	case render.SignPositive:
		addClass(cell, "positive")
	case render.SignNegative:
		addClass(cell, "negative")
	}
}

// annotatePercents appends a calorie-percentage line to the addressed
// cells of a summary row.
func annotatePercents(row *html.Node, percents []render.PercentCell) {
	if row == nil || len(percents) == 0 {
		return
	}

	cells := childCells(row)
	for _, td := range cells {
		setAttr(td, "style", appendStyle(attrVal(td, "style"), "vertical-align: top"))
	}

	for _, pc := range percents {
		if pc.Position < 0 || pc.Position >= len(cells) {
			continue
		}
		td := cells[pc.Position]

		span := newElement("span")
		setAttr(span, "style", "font-style: italic")
		span.AppendChild(newText(pc.Text))

		td.AppendChild(newElement("br"))
		td.AppendChild(span)
	}
}

// insertCell creates a td and inserts it among the row's cells at the
// given position, clamped to the current cell count.
func insertCell(row *html.Node, position int) *html.Node {
	if row == nil {
		return nil
	}

	cells := childCells(row)
	if position > len(cells) {
		position = len(cells)
	}
	if position < 0 {
		position = 0
	}

	cell := newElement("td")
	if position == len(cells) {
		if len(cells) > 0 {
			last := cells[len(cells)-1]
			if last.NextSibling != nil {
				row.InsertBefore(cell, last.NextSibling)
			} else {
				row.AppendChild(cell)
			}
		} else {
			row.AppendChild(cell)
		}
	} else {
		row.InsertBefore(cell, cells[position])
	}
	return cell
}

// widenFirstCell grows a row's first cell by one column, keeping Printable
// meal headers spanning their widened table.
func widenFirstCell(row *html.Node) {
	if row == nil {
		return
	}
	cells := childCells(row)
	if len(cells) == 0 {
		return
	}

	span := 1
	if v := attrVal(cells[0], "colspan"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			span = parsed
		}
	}
	setAttr(cells[0], "colspan", strconv.Itoa(span+1))
}

// hideColumn suppresses the cell at the given position in every row of the
// table.
func (t *Table) hideColumn(position int) {
	rows := []*html.Node{t.headerRow, t.footerRow}
	rows = append(rows, t.bodyRows...)

	for _, row := range rows {
		if row == nil {
			continue
		}
		cells := childCells(row)
		if position < 0 || position >= len(cells) {
			continue
		}
		setAttr(cells[position], "style", appendStyle(attrVal(cells[position], "style"), "display: none"))
	}
}

func appendStyle(existing, decl string) string {
	if existing == "" {
		return decl
	}
	return existing + "; " + decl
}
