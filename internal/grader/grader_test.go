package grader

import (
	"math"
	"testing"

	"github.com/abhisek/shapewise/internal/problemgen"
)

func rectQ(answer float64) problemgen.Question {
	return problemgen.Question{
		Prompt:     "A rectangle is 6 cm long and 4 cm wide. What is its area?",
		Answer:     answer,
		Kind:       problemgen.KindRectangle,
		Difficulty: problemgen.Beginner,
		Format:     problemgen.FormatNumeric,
	}
}

func TestGradeCorrectSpellings(t *testing.T) {
	q := rectQ(24)
	for _, in := range []string{"24 cm²", "24cm²", "24 cm^2", "24cm2", "24 sq cm", "0.0024 m²"} {
		r := Grade(q, in)
		if !r.Correct {
			t.Errorf("Grade(%q) rejected: %+v", in, r)
		}
		if r.Points != PointsPerQuestion {
			t.Errorf("Grade(%q) points = %d, want %d", in, r.Points, PointsPerQuestion)
		}
	}
}

func TestGradeMissingUnit(t *testing.T) {
	r := Grade(rectQ(24), "24")
	if r.Correct {
		t.Fatal("unit-less answer accepted")
	}
	if r.Reason != ReasonMissingUnit {
		t.Errorf("Reason = %q, want %q", r.Reason, ReasonMissingUnit)
	}
	if r.Message != MissingUnitMessage {
		t.Errorf("Message = %q, want %q", r.Message, MissingUnitMessage)
	}
}

func TestGradeWrongValue(t *testing.T) {
	r := Grade(rectQ(24), "25 cm²")
	if r.Correct || r.Reason != ReasonWrongValue {
		t.Errorf("got %+v, want wrong_value", r)
	}
}

func TestGradeMetreConversion(t *testing.T) {
	// 1 m² == 10000 cm².
	r := Grade(rectQ(10000), "1 m²")
	if !r.Correct {
		t.Errorf("1 m² rejected against 10000 cm²: %+v", r)
	}
}

func TestGradeLengthUnitRejected(t *testing.T) {
	r := Grade(rectQ(24), "24 cm")
	if r.Correct {
		t.Fatal("length unit accepted for an area answer")
	}
	if r.Reason != ReasonBadUnit {
		t.Errorf("Reason = %q, want %q", r.Reason, ReasonBadUnit)
	}
}

func TestGradeGarbage(t *testing.T) {
	tests := []struct {
		in     string
		reason Reason
	}{
		{"", ReasonNotANumber},
		{"banana", ReasonNotANumber},
		{"24 furlongs", ReasonBadUnit},
	}
	for _, tt := range tests {
		r := Grade(rectQ(24), tt.in)
		if r.Correct || r.Reason != tt.reason {
			t.Errorf("Grade(%q) = %+v, want reason %q", tt.in, r, tt.reason)
		}
	}
}

func TestToleranceBoundary(t *testing.T) {
	q := rectQ(10000)
	within := 10000 * (1 + 1e-7)
	boundary := 10000 * (1 + 1e-6)
	outside := 10000 * (1 + 1e-4)
	if !closeEnough(within, q.Answer) {
		t.Errorf("%v vs %v: rejected inside tolerance", within, q.Answer)
	}
	if !closeEnough(boundary, q.Answer) {
		t.Errorf("%v vs %v: rejected at the tolerance boundary", boundary, q.Answer)
	}
	if closeEnough(outside, q.Answer) {
		t.Errorf("%v vs %v: accepted outside tolerance", outside, q.Answer)
	}
}

func TestCircleAnswerRounding(t *testing.T) {
	// pi*7*7 to 6 decimal places should grade correct, 2 decimals not.
	answer := math.Pi * 49
	if !closeEnough(153.938040, answer) {
		t.Error("6-decimal circle answer rejected")
	}
	if closeEnough(153.94, answer) {
		t.Error("2-decimal circle answer accepted")
	}
}

func TestGradeIdempotent(t *testing.T) {
	q := rectQ(24)
	first := Grade(q, "24 cm²")
	for i := 0; i < 5; i++ {
		if got := Grade(q, "24 cm²"); got != first {
			t.Fatalf("grading not pure: %+v then %+v", first, got)
		}
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	q := problemgen.Question{
		Prompt:  "I have three sides. What shape am I?",
		Kind:    problemgen.KindIdentify,
		Format:  problemgen.FormatMultipleChoice,
		Choices: []string{"circle", "triangle", "square", "rhombus"},
		Correct: "triangle",
	}
	if r := Grade(q, "triangle"); !r.Correct {
		t.Errorf("exact choice rejected: %+v", r)
	}
	if r := Grade(q, "  Triangle "); !r.Correct {
		t.Errorf("case/space-insensitive choice rejected: %+v", r)
	}
	if r := Grade(q, "square"); r.Correct || r.Reason != ReasonWrongChoice {
		t.Errorf("wrong choice graded %+v", r)
	}
}
