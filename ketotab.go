// Package ketotab provides a fluent API for augmenting nutrition-diary
// HTML reports with a derived net-carbohydrates column.
//
// The pipeline parses each diary table on a page into a typed report,
// inserts the net-carbs column (total carbohydrates minus fiber, floored
// at zero), recomputes the macro calorie-percentage breakdowns, and
// produces both an augmented document and the aggregate datasets for a
// charting collaborator.
//
// Basic usage:
//
//	err := ketotab.Open("diary.html").Augment(os.Stdout)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	plans, err := ketotab.Open("diary.html").
//	    KeepCarbs().
//	    Title("Net Carbs").
//	    Plans()
//
// For advanced use cases, the lower-level diary, diaryhtml, macros, and
// render packages are also available.
package ketotab

import (
	"io"

	"github.com/ketotab/ketotab/diaryhtml"
)

// Open prepares an HTML file for augmentation and returns an Augmenter
// for fluent configuration. Parsing happens lazily when a terminal
// operation like Augment or Reports is called.
//
// Example:
//
//	reports, err := ketotab.Open("diary.html").Reports()
func Open(filename string) *Augmenter {
	return &Augmenter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader prepares an Augmenter over an already-open HTML source.
//
// Example:
//
//	err := ketotab.FromReader(resp.Body).Augment(os.Stdout)
func FromReader(r io.Reader) *Augmenter {
	return &Augmenter{
		source:  r,
		options: defaultOptions(),
	}
}

// FromDocument prepares an Augmenter over an already-parsed document.
// This is useful when the caller needs to keep the document for further
// mutation after the pipeline runs.
func FromDocument(doc *diaryhtml.Document) *Augmenter {
	return &Augmenter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	plans := ketotab.Must(ketotab.Open("diary.html").Plans())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
