package session

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/hints"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/ui/components"
)

type stubRunner struct {
	qs     []problemgen.Question
	cursor int
}

func (r *stubRunner) Label() string { return "Rectangles" }
func (r *stubRunner) Cursor() int   { return r.cursor }
func (r *stubRunner) Total() int    { return len(r.qs) }
func (r *stubRunner) Done() bool    { return r.cursor >= len(r.qs) }

func (r *stubRunner) Current() problemgen.Question { return r.qs[r.cursor] }

func (r *stubRunner) Submit(ctx context.Context, raw string) (grader.Result, error) {
	res := grader.Grade(r.qs[r.cursor], raw)
	switch res.Reason {
	case grader.ReasonMissingUnit, grader.ReasonBadUnit, grader.ReasonNotANumber:
		return res, nil
	}
	r.cursor++
	return res, nil
}

func (r *stubRunner) Score() int { return 0 }

func (r *stubRunner) Questions() []problemgen.Question { return r.qs }
func (r *stubRunner) Answers() map[int]string          { return map[int]string{} }

func (r *stubRunner) Passed() (bool, bool) { return false, true }

func stubQuestions(n int) []problemgen.Question {
	qs := make([]problemgen.Question, n)
	for i := range qs {
		qs[i] = problemgen.Question{
			Prompt:     "A rectangle is 6 cm long and 4 cm wide. What is its area?",
			Answer:     24,
			Kind:       problemgen.KindRectangle,
			Difficulty: problemgen.Beginner,
			Format:     problemgen.FormatNumeric,
		}
	}
	return qs
}

func TestProgressLabelClampedOnLastFeedback(t *testing.T) {
	// After the final answer the cursor sits at Total; the label must read
	// "Question 10 of 10", not "Question 11 of 10".
	r := &stubRunner{qs: stubQuestions(10), cursor: 10}
	s := New(r, hints.Static{}, nil)
	s.phase = phaseFeedback
	s.good = true
	s.feedback = "Correct! +10 points"
	s.input = components.NewTextInput("e.g. 24 cm²", 32)

	view := s.View(80, 24)
	if strings.Contains(view, "Question 11 of 10") {
		t.Errorf("label overran the run length:\n%s", view)
	}
	if !strings.Contains(view, "Question 10 of 10") {
		t.Errorf("label missing from feedback view:\n%s", view)
	}
}

func TestProgressLabelMidRun(t *testing.T) {
	r := &stubRunner{qs: stubQuestions(10), cursor: 3}
	s := New(r, hints.Static{}, nil)

	view := s.View(80, 24)
	if !strings.Contains(view, "Question 4 of 10") {
		t.Errorf("label = wrong question number:\n%s", view)
	}
}
