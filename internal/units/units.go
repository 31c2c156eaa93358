// Package units parses learner answers and normalizes area units to cm².
package units

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Unit is a recognized area or length unit.
type Unit string

const (
	// UnitNone means the answer carried no unit suffix at all.
	UnitNone Unit = ""
	// UnitCM2 is the canonical area unit. All grading happens in cm².
	UnitCM2 Unit = "cm²"
	UnitM2  Unit = "m²"
	// Length units appear in perimeter-flavored follow-up questions.
	UnitCM Unit = "cm"
	UnitM  Unit = "m"
)

// ErrUnrecognizedUnit is returned when the text after the number is not a
// known unit spelling.
var ErrUnrecognizedUnit = errors.New("units: unrecognized unit")

// ErrNotANumber is returned when no leading numeric value can be read.
var ErrNotANumber = errors.New("units: not a number")

// ParsedAnswer is the result of splitting a raw answer into value and unit.
type ParsedAnswer struct {
	Value       float64
	Unit        Unit
	UnitPresent bool
}

// Suffix spellings learners actually type, stored whitespace-free and
// lower-case. The typed suffix is normalized the same way before matching,
// so "sq cm", "sq  cm" and "sq\tcm" all resolve to the same entry.
var suffixes = []struct {
	text string
	unit Unit
}{
	{"squarecentimetres", UnitCM2},
	{"squarecentimeters", UnitCM2},
	{"squaremetres", UnitM2},
	{"squaremeters", UnitM2},
	{"squarecm", UnitCM2},
	{"squarem", UnitM2},
	{"sq.cm", UnitCM2},
	{"sq.m", UnitM2},
	{"sqcm", UnitCM2},
	{"sqm", UnitM2},
	{"cm^2", UnitCM2},
	{"m^2", UnitM2},
	{"cm²", UnitCM2},
	{"m²", UnitM2},
	{"cm2", UnitCM2},
	{"m2", UnitM2},
	{"cm", UnitCM},
	{"m", UnitM},
}

// normalizeSuffix lower-cases the suffix and removes all whitespace,
// including runs inside it.
func normalizeSuffix(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse splits a raw answer like "24 cm²" into its numeric value and unit.
// It is total over its error values: any input yields either a ParsedAnswer
// or one of ErrNotANumber / ErrUnrecognizedUnit. A bare number parses with
// UnitPresent false; rejecting that is the grader's call, not ours.
func Parse(raw string) (ParsedAnswer, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ParsedAnswer{}, ErrNotANumber
	}

	// Longest numeric prefix. strconv rejects trailing garbage, so walk
	// back from the full string until something parses.
	numEnd := len(s)
	var value float64
	for numEnd > 0 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[:numEnd]), 64)
		if err == nil {
			value = v
			break
		}
		numEnd--
	}
	if numEnd == 0 {
		return ParsedAnswer{}, ErrNotANumber
	}

	rest := strings.TrimSpace(s[numEnd:])
	if rest == "" {
		return ParsedAnswer{Value: value}, nil
	}

	norm := normalizeSuffix(rest)
	for _, suf := range suffixes {
		if norm == suf.text {
			return ParsedAnswer{Value: value, Unit: suf.unit, UnitPresent: true}, nil
		}
	}
	return ParsedAnswer{}, ErrUnrecognizedUnit
}

// ToCanonical converts a parsed answer to the canonical unit for its
// dimension: cm² for areas, cm for lengths. 1 m = 100 cm, so 1 m² = 10000 cm².
func ToCanonical(p ParsedAnswer) (float64, error) {
	switch p.Unit {
	case UnitNone, UnitCM2, UnitCM:
		return p.Value, nil
	case UnitM2:
		return p.Value * 10000, nil
	case UnitM:
		return p.Value * 100, nil
	default:
		return 0, ErrUnrecognizedUnit
	}
}

// IsArea reports whether the unit is an area unit.
func (u Unit) IsArea() bool {
	return u == UnitCM2 || u == UnitM2
}
