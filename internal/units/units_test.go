package units

import (
	"errors"
	"testing"
)

func TestParseAcceptedSpellings(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  Unit
	}{
		{"24 cm²", 24, UnitCM2},
		{"24cm²", 24, UnitCM2},
		{"24 cm^2", 24, UnitCM2},
		{"24cm2", 24, UnitCM2},
		{"24 sq cm", 24, UnitCM2},
		{"24 sq  cm", 24, UnitCM2},
		{"24\tsq\tcm", 24, UnitCM2},
		{"24 sqcm", 24, UnitCM2},
		{"24 square cm", 24, UnitCM2},
		{"24 square  centimeters", 24, UnitCM2},
		{"  24   cm² ", 24, UnitCM2},
		{"0.5 m²", 0.5, UnitM2},
		{"3 M^2", 3, UnitM2},
		{"12.25 sq m", 12.25, UnitM2},
		{"7 cm", 7, UnitCM},
		{"7 m", 7, UnitM},
		{"1e2 cm²", 100, UnitCM2},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got.Value != tt.value || got.Unit != tt.unit || !got.UnitPresent {
			t.Errorf("Parse(%q) = %+v, want value %v unit %q", tt.in, got, tt.value, tt.unit)
		}
	}
}

func TestParseBareNumber(t *testing.T) {
	got, err := Parse("24")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.UnitPresent {
		t.Errorf("bare number reported UnitPresent")
	}
	if got.Value != 24 {
		t.Errorf("Value = %v, want 24", got.Value)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "cm²"} {
		if _, err := Parse(in); !errors.Is(err, ErrNotANumber) {
			t.Errorf("Parse(%q) = %v, want ErrNotANumber", in, err)
		}
	}
	for _, in := range []string{"24 furlongs", "24 km²", "24 inches"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnrecognizedUnit) {
			t.Errorf("Parse(%q) = %v, want ErrUnrecognizedUnit", in, err)
		}
	}
}

func TestToCanonical(t *testing.T) {
	tests := []struct {
		p    ParsedAnswer
		want float64
	}{
		{ParsedAnswer{Value: 24, Unit: UnitCM2, UnitPresent: true}, 24},
		{ParsedAnswer{Value: 1, Unit: UnitM2, UnitPresent: true}, 10000},
		{ParsedAnswer{Value: 0.5, Unit: UnitM2, UnitPresent: true}, 5000},
		{ParsedAnswer{Value: 2, Unit: UnitM, UnitPresent: true}, 200},
		{ParsedAnswer{Value: 9, Unit: UnitCM, UnitPresent: true}, 9},
		{ParsedAnswer{Value: 7}, 7},
	}
	for _, tt := range tests {
		got, err := ToCanonical(tt.p)
		if err != nil {
			t.Errorf("ToCanonical(%+v): %v", tt.p, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToCanonical(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRoundTripEquivalence(t *testing.T) {
	// The same physical quantity in either unit must convert to the same
	// canonical value.
	a, _ := Parse("2.5 m²")
	b, _ := Parse("25000 cm²")
	ca, _ := ToCanonical(a)
	cb, _ := ToCanonical(b)
	if ca != cb {
		t.Errorf("2.5 m² -> %v, 25000 cm² -> %v; want equal", ca, cb)
	}
}
