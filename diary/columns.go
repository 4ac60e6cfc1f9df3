package diary

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	wordPattern = regexp.MustCompile(`\w+`)
	lowerCaser  = cases.Lower(language.Und)
)

// ResolveColumns identifies the table columns from the header row cells.
// Position 0 is reserved for the row label (the food name) and is skipped.
// Names are normalized to the lowercase of the first word-character run in
// the header text; a header without one yields an empty name. Aliases maps
// normalized names onto canonical ones (e.g. "carbohydrates" -> "carbs")
// and may be nil.
func ResolveColumns(header []Cell, aliases map[string]string) []*Column {
	if len(header) <= 1 {
		return nil
	}

	columns := make([]*Column, 0, len(header)-1)
	for i := 1; i < len(header); i++ {
		name := lowerCaser.String(wordPattern.FindString(header[i].Text))
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		columns = append(columns, &Column{Name: name, Position: i})
	}

	return columns
}
