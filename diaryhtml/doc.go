// Package diaryhtml binds the diary pipeline to HTML documents.
//
// It plays both collaborator roles the core needs: as the input source it
// locates diary tables in a parsed page, detects their layout variant from
// the root marker, and lifts rows and cells into the DOM-free values the
// [github.com/ketotab/ketotab/diary] builder consumes; as the mutation
// collaborator it applies a render plan back onto the node tree — inserting
// the derived column's cells, annotating summary rows with calorie
// percentages, and hiding suppressed columns — so the augmented document
// can be serialized again.
//
// An element whose root marker matches neither layout is not a report: the
// table is skipped whole rather than partially processed.
package diaryhtml
