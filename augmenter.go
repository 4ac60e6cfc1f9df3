package ketotab

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ketotab/ketotab/charts"
	"github.com/ketotab/ketotab/diary"
	"github.com/ketotab/ketotab/diaryhtml"
	"github.com/ketotab/ketotab/macros"
	"github.com/ketotab/ketotab/render"
)

// Augmenter runs the parse -> compute -> place pipeline over one document
// snapshot. It is configured fluently and driven by a terminal operation;
// it is not safe for concurrent use.
type Augmenter struct {
	filename string
	source   io.Reader
	doc      *diaryhtml.Document
	options  Options
}

// Target sets the insertion position for the net-carbs column.
// Out-of-range positions are clamped; a negative position restores the
// default placement after the carbs column.
func (a *Augmenter) Target(position int) *Augmenter {
	a.options.target = position
	return a
}

// Title sets the inserted column's header title.
func (a *Augmenter) Title(title string) *Augmenter {
	a.options.title = title
	return a
}

// Unit sets the inserted column's unit label.
func (a *Augmenter) Unit(unit string) *Augmenter {
	a.options.unit = unit
	return a
}

// KeepCarbs leaves the raw carbs column visible instead of hiding it.
func (a *Augmenter) KeepCarbs() *Augmenter {
	a.options.keepCarbs = true
	return a
}

// Aliases maps normalized header names onto canonical nutrient names,
// e.g. "carbohydrates" -> "carbs".
func (a *Augmenter) Aliases(aliases map[string]string) *Augmenter {
	a.options.aliases = aliases
	return a
}

// load parses the source document once.
func (a *Augmenter) load() (*diaryhtml.Document, error) {
	if a.doc != nil {
		return a.doc, nil
	}

	var (
		doc *diaryhtml.Document
		err error
	)
	switch {
	case a.source != nil:
		doc, err = diaryhtml.OpenReader(a.source)
	default:
		doc, err = diaryhtml.Open(a.filename)
	}
	if err != nil {
		return nil, err
	}

	a.doc = doc
	return doc, nil
}

// Reports parses the document and returns the typed report for every
// diary table found, without augmenting anything.
func (a *Augmenter) Reports() ([]*diary.Report, error) {
	doc, err := a.load()
	if err != nil {
		return nil, err
	}

	reports := make([]*diary.Report, 0, len(doc.Tables()))
	for _, t := range doc.Tables() {
		reports = append(reports, t.Report(a.options.aliases))
	}
	return reports, nil
}

// Plans runs the compute stage and returns the transformation plan for
// every diary table, without touching the document tree.
func (a *Augmenter) Plans() ([]*render.Plan, error) {
	doc, err := a.load()
	if err != nil {
		return nil, err
	}

	plans := make([]*render.Plan, 0, len(doc.Tables()))
	for _, t := range doc.Tables() {
		plan, err := a.plan(t)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Augment runs the whole pipeline — parse, compute, apply — over every
// diary table and serializes the augmented document to w.
func (a *Augmenter) Augment(w io.Writer) error {
	doc, err := a.load()
	if err != nil {
		return err
	}

	for _, t := range doc.Tables() {
		plan, err := a.plan(t)
		if err != nil {
			return err
		}
		if err := diaryhtml.Apply(t, plan); err != nil {
			return fmt.Errorf("applying plan: %w", err)
		}
	}

	return doc.Render(w)
}

// Datasets returns the chart aggregates (calories and grams breakdowns)
// for every diary table, in table order.
func (a *Augmenter) Datasets() ([]charts.Dataset, error) {
	plans, err := a.Plans()
	if err != nil {
		return nil, err
	}

	datasets := make([]charts.Dataset, 0, 2*len(plans))
	for _, p := range plans {
		datasets = append(datasets, p.Calories, p.Grams)
	}
	return datasets, nil
}

// Charts waits on the charting collaborator's ready gate and hands every
// table's datasets to the renderer.
func (a *Augmenter) Charts(ctx context.Context, gate *charts.Gate, r charts.Renderer) error {
	datasets, err := a.Datasets()
	if err != nil {
		return err
	}
	return charts.Handoff(ctx, gate, r, datasets...)
}

// plan computes one table's transformation plan, augmenting its report.
func (a *Augmenter) plan(t *diaryhtml.Table) (*render.Plan, error) {
	report := t.Report(a.options.aliases)

	// Reports are memoized per table, so a second terminal call sees the
	// column already in place.
	if _, err := macros.InsertNetCarbs(report, a.options.target); err != nil && !errors.Is(err, macros.ErrAlreadyAugmented) {
		return nil, fmt.Errorf("inserting net carbs column: %w", err)
	}

	plan, err := render.Emit(report, render.Options{
		Title:     a.options.title,
		Unit:      a.options.unit,
		KeepCarbs: a.options.keepCarbs,
	})
	if err != nil {
		return nil, fmt.Errorf("emitting plan: %w", err)
	}
	return plan, nil
}
