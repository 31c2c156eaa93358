package problemgen

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func newTestGen() *Generator {
	return New(rand.NewSource(42))
}

func TestGenerateDeterministic(t *testing.T) {
	a := New(rand.NewSource(7))
	b := New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		qa, err := a.Generate(KindMixed, Intermediate)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		qb, _ := b.Generate(KindMixed, Intermediate)
		if qa.Prompt != qb.Prompt || qa.Answer != qb.Answer {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, qa.Prompt, qb.Prompt)
		}
	}
}

func TestAnswersMatchFormulas(t *testing.T) {
	g := newTestGen()
	for i := 0; i < 200; i++ {
		q, err := g.Generate(KindMixed, Advanced)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Format != FormatNumeric {
			t.Fatalf("mixed run produced non-numeric question %q", q.Prompt)
		}
		if q.Answer <= 0 {
			t.Errorf("%s: non-positive area %v in %q", q.Kind, q.Answer, q.Prompt)
		}
	}
}

func TestCircleAreaUsesPi(t *testing.T) {
	g := newTestGen()
	for i := 0; i < 50; i++ {
		q, err := g.Generate(KindCircle, Beginner)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		// radius in cm is sqrt(area/pi); must come out (near) integral or
		// a clean multiple of 100 when stated in metres.
		r := math.Sqrt(q.Answer / math.Pi)
		if math.Abs(r-math.Round(r)) > 1e-9 {
			t.Errorf("circle answer %v implies non-integral radius %v", q.Answer, r)
		}
	}
}

func TestDimensionRanges(t *testing.T) {
	tests := []struct {
		d      Difficulty
		lo, hi int
	}{
		{Beginner, 2, 10},
		{Intermediate, 5, 20},
		{Advanced, 10, 50},
	}
	for _, tt := range tests {
		lo, hi := dimensionRange(tt.d)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("dimensionRange(%s) = %d..%d, want %d..%d", tt.d, lo, hi, tt.lo, tt.hi)
		}
	}
	g := newTestGen()
	for i := 0; i < 200; i++ {
		q, _ := g.Generate(KindSquare, Beginner)
		side := math.Sqrt(q.Answer)
		// Metre-stated sides convert to 200..1000 cm.
		if !(side >= 2 && side <= 10) && !(side >= 200 && side <= 1000) {
			t.Errorf("Beginner square side %v out of range", side)
		}
	}
}

func TestMetreQuestionsConvertToCM(t *testing.T) {
	g := newTestGen()
	sawMetres := false
	for i := 0; i < 300; i++ {
		q, _ := g.Generate(KindRectangle, Beginner)
		if strings.Contains(q.Prompt, " m long") {
			sawMetres = true
			// Smallest metre rectangle at Beginner is 2m x 2m = 40000 cm².
			if q.Answer < 40000 {
				t.Errorf("metre-stated rectangle answer %v not converted to cm²: %q", q.Answer, q.Prompt)
			}
		}
	}
	if !sawMetres {
		t.Error("300 rectangles and none stated in metres")
	}
}

func TestIdentifyQuestions(t *testing.T) {
	g := newTestGen()
	for i := 0; i < 100; i++ {
		q, err := g.Generate(KindIdentify, Beginner)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Format != FormatMultipleChoice {
			t.Fatalf("identify question has format %q", q.Format)
		}
		if len(q.Choices) != 4 {
			t.Fatalf("got %d choices, want 4", len(q.Choices))
		}
		found := false
		seen := map[string]bool{}
		for _, c := range q.Choices {
			if seen[c] {
				t.Errorf("duplicate choice %q", c)
			}
			seen[c] = true
			if c == q.Correct {
				found = true
			}
		}
		if !found {
			t.Errorf("correct answer %q not among choices %v", q.Correct, q.Choices)
		}
	}
}

func TestIdentifyTierGating(t *testing.T) {
	// Beginner identify runs must never surface Advanced-only clues.
	advancedOnly := map[string]bool{}
	for _, e := range identifyBank {
		if e.tier == Advanced {
			advancedOnly[e.clue] = true
		}
	}
	g := newTestGen()
	for i := 0; i < 200; i++ {
		q, _ := g.Generate(KindIdentify, Beginner)
		if advancedOnly[q.Prompt] {
			t.Fatalf("Advanced clue surfaced at Beginner: %q", q.Prompt)
		}
	}
}

func TestGenerateRun(t *testing.T) {
	g := newTestGen()
	qs, err := g.GenerateRun(KindTriangle, Intermediate, 10)
	if err != nil {
		t.Fatalf("GenerateRun: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("got %d questions, want 10", len(qs))
	}
	for _, q := range qs {
		if q.Kind != KindTriangle {
			t.Errorf("run for triangles produced %s", q.Kind)
		}
	}
}

func TestGenerateRejectsUnknowns(t *testing.T) {
	g := newTestGen()
	if _, err := g.Generate(KindRectangle, Difficulty("Impossible")); err == nil {
		t.Error("unknown difficulty accepted")
	}
	if _, err := g.Generate(ShapeKind("dodecahedron"), Beginner); err == nil {
		t.Error("unknown shape kind accepted")
	}
}
