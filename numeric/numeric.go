// Package numeric parses nutrient cell text into nullable numeric values.
//
// Diary tables render numbers inconsistently: plain ("14"), with thousands
// separators ("1,234.5"), with unit suffixes ("21g", "300mg"), or as a
// double-dash zero placeholder ("--", "--mg"). Text that matches none of
// these is unknown, which is distinct from zero: an unknown value must
// propagate through arithmetic as unknown rather than silently becoming 0.
//
// The [Value] type carries that distinction. Arithmetic over values is done
// on floats via [Value.OrNaN], which maps unknown to NaN so that standard
// NaN propagation applies, and results come back through [FromFloat64],
// which maps NaN back to unknown.
package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// floatPattern matches a floating point literal with optional sign and
// thousands separators, anywhere in the text (unit suffixes are ignored).
var floatPattern = regexp.MustCompile(`[-+]?[\d,]*\.?\d+`)

// placeholderPattern matches the double-dash zero notation, optionally
// followed by a unit abbreviation (e.g. "--", "--mg").
var placeholderPattern = regexp.MustCompile(`^\s*--[a-zA-Z]*\s*$`)

// Value is a nullable numeric value read from a table cell.
// The zero Value is unknown.
type Value struct {
	f     float64
	known bool
}

// Known returns a Value holding f.
func Known(f float64) Value {
	return Value{f: f, known: true}
}

// Unknown returns the unknown Value.
func Unknown() Value {
	return Value{}
}

// FromFloat64 converts a computation result back into a Value.
// NaN becomes unknown.
func FromFloat64(f float64) Value {
	if math.IsNaN(f) {
		return Unknown()
	}
	return Known(f)
}

// IsKnown reports whether v holds a number.
func (v Value) IsKnown() bool {
	return v.known
}

// Float64 returns the held number and whether it is known.
func (v Value) Float64() (float64, bool) {
	return v.f, v.known
}

// Equal reports whether two values are both unknown or hold the same
// number.
func (v Value) Equal(o Value) bool {
	if v.known != o.known {
		return false
	}
	return !v.known || v.f == o.f
}

// OrNaN returns the held number, or NaN if the value is unknown.
func (v Value) OrNaN() float64 {
	if !v.known {
		return math.NaN()
	}
	return v.f
}

// String returns the number formatted with minimal digits, or "?" if unknown.
func (v Value) String() string {
	if !v.known {
		return "?"
	}
	return strconv.FormatFloat(v.f, 'f', -1, 64)
}

// Parse extracts a numeric value from raw cell text.
//
// A floating point literal anywhere in the text wins, even when surrounded
// by other characters such as a unit suffix. Otherwise a double-dash
// placeholder is exactly zero. Anything else is unknown. The ordering
// matters: a genuine numeric match must not be shadowed by the placeholder
// pattern, and vice versa.
func Parse(text string) Value {
	if m := floatPattern.FindString(text); m != "" {
		f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			return Unknown()
		}
		return Known(f)
	}

	if placeholderPattern.MatchString(text) {
		return Known(0)
	}

	return Unknown()
}
