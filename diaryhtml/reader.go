package diaryhtml

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/ketotab/ketotab/diary"
)

// Root markers identifying a diary table and its layout variant. The host
// page reuses the same id for multiple elements, so markers are matched on
// every element rather than treated as unique.
const (
	markerFull      = "diary-table"
	markerPrintable = "food"
)

// Cell sub-element markers.
const (
	classValue      = "macro-value"
	classPercentage = "macro-percentage"
)

// Document is one parsed page snapshot holding zero or more diary tables.
type Document struct {
	root   *html.Node
	tables []*Table
}

// Open parses an HTML file and locates its diary tables.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader and locates its diary tables.
func OpenReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return &Document{
		root:   root,
		tables: findDiaryTables(root),
	}, nil
}

// Tables returns the diary tables found in the document, in source order.
func (d *Document) Tables() []*Table {
	return d.tables
}

// Render serializes the document, including any applied mutations.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// Table is one diary table located in a page.
type Table struct {
	Layout diary.Layout

	node      *html.Node
	headerRow *html.Node
	bodyRows  []*html.Node
	footerRow *html.Node

	report *diary.Report
	rowMap *diary.RowMap
}

// findDiaryTables walks the tree collecting table elements whose id is one
// of the layout markers. Elements with an unrecognized marker are not
// reports and are skipped. Only table elements are considered: the host
// page reuses the marker ids on non-table elements, which have no rows to
// lift.
func findDiaryTables(root *html.Node) []*Table {
	var tables []*Table

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			if layout, ok := layoutOf(n); ok {
				tables = append(tables, newTable(n, layout))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return tables
}

// layoutOf detects the layout variant from the element's root marker.
func layoutOf(n *html.Node) (diary.Layout, bool) {
	switch attrVal(n, "id") {
	case markerFull:
		return diary.LayoutFull, true
	case markerPrintable:
		return diary.LayoutPrintable, true
	default:
		return 0, false
	}
}

// newTable separates one table's rows by section. The header row is the
// first row in the table; body rows are the tbody rows. Under the Full
// layout the tfoot row is the display-only footer; under the Printable
// layout the tfoot row carries the daily total and is appended to the body
// rows, where the classifier expects the total last.
func newTable(node *html.Node, layout diary.Layout) *Table {
	t := &Table{Layout: layout, node: node}

	t.headerRow = findElement(node, "tr")

	var bodyRows []*html.Node
	for _, tbody := range collectElements(node, "tbody", nil) {
		bodyRows = collectElements(tbody, "tr", bodyRows)
	}
	// A table without an explicit tbody keeps its rows directly under the
	// table element.
	if len(bodyRows) == 0 {
		bodyRows = collectElements(node, "tr", nil)
	}

	var footRows []*html.Node
	for _, tfoot := range collectElements(node, "tfoot", nil) {
		footRows = collectElements(tfoot, "tr", footRows)
	}

	for _, row := range bodyRows {
		if row == t.headerRow || containsNode(footRows, row) {
			continue
		}
		t.bodyRows = append(t.bodyRows, row)
	}

	switch layout {
	case diary.LayoutFull:
		if len(footRows) > 0 {
			t.footerRow = footRows[0]
		}
	case diary.LayoutPrintable:
		t.bodyRows = append(t.bodyRows, footRows...)
	}

	return t
}

func containsNode(nodes []*html.Node, n *html.Node) bool {
	for _, c := range nodes {
		if c == n {
			return true
		}
	}
	return false
}

// Report lifts the table into the diary model. The model is built once per
// table and memoized; subsequent calls return the same report.
func (t *Table) Report(aliases map[string]string) *diary.Report {
	if t.report != nil {
		return t.report
	}

	header := readCells(t.headerRow)

	body := make([]diary.Row, 0, len(t.bodyRows))
	for _, tr := range t.bodyRows {
		body = append(body, diary.Row{
			Tags:  classList(tr),
			Cells: readCells(tr),
		})
	}

	t.report, t.rowMap = diary.Build(t.Layout, header, body, aliases)
	t.report.ID = uuid.NewString()
	return t.report
}

// readCells lifts a row's cells: the trimmed text, the optional value
// sub-element (falling back to the cell itself), and the optional
// percentage sub-element.
func readCells(tr *html.Node) []diary.Cell {
	if tr == nil {
		return nil
	}

	nodes := childCells(tr)
	cells := make([]diary.Cell, 0, len(nodes))
	for _, td := range nodes {
		cell := diary.Cell{Text: getTextContent(td)}

		if valueElem := findByClass(td, classValue); valueElem != nil {
			cell.ValueText = getTextContent(valueElem)
		} else {
			cell.ValueText = cell.Text
		}

		if pctElem := findByClass(td, classPercentage); pctElem != nil {
			cell.PercentText = getTextContent(pctElem)
			cell.HasPercent = true
		}

		cells = append(cells, cell)
	}
	return cells
}
