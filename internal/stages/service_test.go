package stages

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store, int) {
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

	svc := NewService(s.Attempts(), problemgen.New(rand.NewSource(1)))
	return svc, s, l.ID
}

// answerFor produces the raw input that grades correct for q.
func answerFor(q problemgen.Question) string {
	if q.Format == problemgen.FormatMultipleChoice {
		return q.Correct
	}
	return fmt.Sprintf("%v cm²", q.Answer)
}

// playRun answers every question; correct answers for the first `right`
// questions, wrong ones for the rest.
func playRun(t *testing.T, svc *Service, run *Run, right int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < QuestionsPerRun; i++ {
		q := run.Current()
		raw := answerFor(q)
		if i >= right {
			if q.Format == problemgen.FormatMultipleChoice {
				raw = "not a shape"
			} else {
				raw = "999999999 cm²"
			}
		}
		if _, err := svc.Submit(ctx, run, raw); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	if len(defs) != Count {
		t.Fatalf("got %d stages, want %d", len(defs), Count)
	}
	for i, d := range defs {
		if d.Number != i+1 {
			t.Errorf("stage %d numbered %d", i+1, d.Number)
		}
	}
	if defs[0].Kind != problemgen.KindIdentify {
		t.Errorf("stage 1 kind = %s, want identify", defs[0].Kind)
	}
	if defs[9].Kind != problemgen.KindMixed {
		t.Errorf("stage 10 kind = %s, want mixed", defs[9].Kind)
	}

	if _, err := ByNumber(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ByNumber(0) = %v, want ErrOutOfRange", err)
	}
	if _, err := ByNumber(11); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ByNumber(11) = %v, want ErrOutOfRange", err)
	}
}

func TestFreshOverview(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	states, err := svc.Overview(context.Background(), learnerID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if states[0].Status != StatusUnlocked {
		t.Errorf("stage 1 = %s, want unlocked", states[0].Status)
	}
	for i := 1; i < Count; i++ {
		if states[i].Status != StatusLocked {
			t.Errorf("stage %d = %s, want locked", i+1, states[i].Status)
		}
	}
}

func TestStartLockedStage(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	_, err := svc.Start(context.Background(), learnerID, 2, problemgen.Beginner)
	if !errors.Is(err, ErrStageLocked) {
		t.Fatalf("start stage 2 fresh = %v, want ErrStageLocked", err)
	}
}

func TestPassUnlocksNext(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	ctx := context.Background()

	run, err := svc.Start(ctx, learnerID, 1, problemgen.Beginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	playRun(t, svc, run, QuestionsPerRun) // perfect run

	if !run.Done() || run.Attempt.Score != 100 || !run.Attempt.Passed {
		t.Fatalf("perfect run = score %d passed %v", run.Attempt.Score, run.Attempt.Passed)
	}

	status, err := svc.StatusOf(ctx, learnerID, 2)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != StatusUnlocked {
		t.Errorf("stage 2 after passing stage 1 = %s, want unlocked", status)
	}
	// Stage 3 still needs stage 2.
	if status, _ := svc.StatusOf(ctx, learnerID, 3); status != StatusLocked {
		t.Errorf("stage 3 = %s, want locked", status)
	}
}

func TestFailBlocksForever(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	ctx := context.Background()

	run, err := svc.Start(ctx, learnerID, 1, problemgen.Beginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	playRun(t, svc, run, 5) // 50 points, below PassScore

	if run.Attempt.Passed {
		t.Fatal("50-point run passed")
	}
	if status, _ := svc.StatusOf(ctx, learnerID, 1); status != StatusFailed {
		t.Errorf("failed stage status = %s", status)
	}
	if status, _ := svc.StatusOf(ctx, learnerID, 2); status != StatusLocked {
		t.Errorf("stage after failed stage = %s, want locked", status)
	}

	// No retry.
	if _, err := svc.Start(ctx, learnerID, 1, problemgen.Beginner); !errors.Is(err, ErrAlreadyAttempted) {
		t.Fatalf("retry of failed stage = %v, want ErrAlreadyAttempted", err)
	}
}

func TestExactPassBoundary(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	run, err := svc.Start(context.Background(), learnerID, 1, problemgen.Beginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	playRun(t, svc, run, 6) // exactly 60
	if run.Attempt.Score != 60 {
		t.Fatalf("score = %d, want 60", run.Attempt.Score)
	}
	if !run.Attempt.Passed {
		t.Error("score of exactly 60 did not pass")
	}
}

func TestRejectedInputDoesNotConsume(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	ctx := context.Background()

	// Stage 2 needs numeric answers; pass stage 1 first.
	run, _ := svc.Start(ctx, learnerID, 1, problemgen.Beginner)
	playRun(t, svc, run, QuestionsPerRun)

	run, err := svc.Start(ctx, learnerID, 2, problemgen.Beginner)
	if err != nil {
		t.Fatalf("start stage 2: %v", err)
	}
	before := run.Cursor()

	res, err := svc.Submit(ctx, run, "24")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Reason != grader.ReasonMissingUnit {
		t.Fatalf("reason = %s, want missing_unit", res.Reason)
	}
	if res.Message != grader.MissingUnitMessage {
		t.Errorf("message = %q", res.Message)
	}
	if run.Cursor() != before {
		t.Fatal("rejected input consumed the question")
	}

	// A graded wrong answer does consume.
	if _, err := svc.Submit(ctx, run, "999999999 cm²"); err != nil {
		t.Fatalf("submit wrong: %v", err)
	}
	if run.Cursor() != before+1 {
		t.Fatal("wrong answer did not consume the question")
	}
}

func TestResumeReplaysSameQuestions(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	ctx := context.Background()

	run, err := svc.Start(ctx, learnerID, 1, problemgen.Beginner)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	prompts := make([]string, QuestionsPerRun)
	for i, q := range run.Attempt.Questions {
		prompts[i] = q.Prompt
	}

	// Answer three, then "quit" and resume.
	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(ctx, run, answerFor(run.Current())); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	resumed, err := svc.Resume(ctx, learnerID, 1)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.Cursor() != 3 {
		t.Fatalf("resumed cursor = %d, want 3", resumed.Cursor())
	}
	for i, q := range resumed.Attempt.Questions {
		if q.Prompt != prompts[i] {
			t.Fatalf("question %d changed on resume: %q vs %q", i, q.Prompt, prompts[i])
		}
	}
	if got := resumed.Score(); got != 30 {
		t.Errorf("resumed score = %d, want 30", got)
	}

	// Start on an in-progress stage resumes rather than failing.
	again, err := svc.Start(ctx, learnerID, 1, problemgen.Beginner)
	if err != nil {
		t.Fatalf("start in-progress: %v", err)
	}
	if again.Attempt.ID != run.Attempt.ID {
		t.Error("start on in-progress stage opened a new attempt")
	}
}

func TestFullProgression(t *testing.T) {
	svc, _, learnerID := newTestService(t)
	ctx := context.Background()

	for stage := 1; stage <= Count; stage++ {
		run, err := svc.Start(ctx, learnerID, stage, problemgen.Beginner)
		if err != nil {
			t.Fatalf("start stage %d: %v", stage, err)
		}
		playRun(t, svc, run, QuestionsPerRun)
	}

	states, err := svc.Overview(ctx, learnerID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	for _, st := range states {
		if st.Status != StatusPassed {
			t.Errorf("stage %d = %s, want passed", st.Def.Number, st.Status)
		}
	}
}
