package assessment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/store"
)

func newTestService(t *testing.T) (*Service, int) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	l, err := s.Learners().GetOrCreate(context.Background(), fmt.Sprintf("learner-%s-%d", t.Name(), rand.Int()))
	if err != nil {
		t.Fatalf("create learner: %v", err)
	}
	return NewService(s.PreAssessments(), problemgen.New(rand.NewSource(3))), l.ID
}

func answerFor(q problemgen.Question) string {
	if q.Format == problemgen.FormatMultipleChoice {
		return q.Correct
	}
	return fmt.Sprintf("%v cm²", q.Answer)
}

func TestRunLifecycle(t *testing.T) {
	svc, learnerID := newTestService(t)
	ctx := context.Background()

	run, err := svc.Start(ctx, learnerID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(run.Assessment.Questions) != QuestionsPerRun {
		t.Fatalf("got %d questions", len(run.Assessment.Questions))
	}

	// Answer 7 right, 3 wrong.
	for i := 0; i < QuestionsPerRun; i++ {
		raw := answerFor(run.Current())
		if i >= 7 {
			raw = "123456789 cm²"
		}
		if _, err := svc.Submit(ctx, run, raw); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if !run.Done() {
		t.Fatal("run not done after 10 answers")
	}
	if run.Assessment.Score != 70 {
		t.Errorf("score = %d, want 70", run.Assessment.Score)
	}

	got, err := svc.Result(ctx, learnerID)
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if !got.Finished() || got.Score != 70 {
		t.Errorf("persisted result = finished %v score %d", got.Finished(), got.Score)
	}

	// One-shot: no second run.
	if _, err := svc.Start(ctx, learnerID); !errors.Is(err, ErrAlreadyTaken) {
		t.Fatalf("second start = %v, want ErrAlreadyTaken", err)
	}
}

func TestResumeMidRun(t *testing.T) {
	svc, learnerID := newTestService(t)
	ctx := context.Background()

	run, err := svc.Start(ctx, learnerID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	first := run.Assessment.Questions[0].Prompt
	if _, err := svc.Submit(ctx, run, answerFor(run.Current())); err != nil {
		t.Fatalf("submit: %v", err)
	}

	resumed, err := svc.Start(ctx, learnerID)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.Cursor() != 1 {
		t.Errorf("resumed cursor = %d, want 1", resumed.Cursor())
	}
	if resumed.Assessment.Questions[0].Prompt != first {
		t.Error("questions regenerated on resume")
	}
}

func TestRejectedInputNotConsumed(t *testing.T) {
	svc, learnerID := newTestService(t)
	ctx := context.Background()

	run, err := svc.Start(ctx, learnerID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// Find a numeric question to feed a unit-less answer.
	for run.Current().Format != problemgen.FormatNumeric {
		if _, err := svc.Submit(ctx, run, answerFor(run.Current())); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	before := run.Cursor()
	res, err := svc.Submit(ctx, run, "42")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct || run.Cursor() != before {
		t.Errorf("unit-less input graded or consumed: %+v cursor %d", res, run.Cursor())
	}
}

func TestPlacement(t *testing.T) {
	tests := []struct {
		score int
		want  problemgen.Difficulty
	}{
		{0, problemgen.Beginner},
		{40, problemgen.Beginner},
		{50, problemgen.Intermediate},
		{70, problemgen.Intermediate},
		{80, problemgen.Advanced},
		{100, problemgen.Advanced},
	}
	for _, tt := range tests {
		if got := Placement(tt.score); got != tt.want {
			t.Errorf("Placement(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
