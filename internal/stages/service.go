package stages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/store"
)

// Service runs stage attempts against the store. The store's unique index
// enforces the one-attempt rule; the service enforces ordering on top.
type Service struct {
	attempts store.AttemptRepo
	gen      *problemgen.Generator
}

// NewService wires a stage service.
func NewService(attempts store.AttemptRepo, gen *problemgen.Generator) *Service {
	return &Service{attempts: attempts, gen: gen}
}

// StageState is one row of the learner's progression overview.
type StageState struct {
	Def     Definition
	Status  Status
	Attempt *store.Attempt // nil unless an attempt exists
}

// StatusOf computes a single stage's status for the learner.
func (s *Service) StatusOf(ctx context.Context, learnerID, stage int) (Status, error) {
	states, err := s.Overview(ctx, learnerID)
	if err != nil {
		return "", err
	}
	if stage < 1 || stage > Count {
		return "", ErrOutOfRange
	}
	return states[stage-1].Status, nil
}

// Overview computes the status of every stage in one pass. Stage 1 is
// always at least unlocked; stage n is locked until stage n-1 passed.
func (s *Service) Overview(ctx context.Context, learnerID int) ([]StageState, error) {
	attempts, err := s.attempts.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	byStage := make(map[int]*store.Attempt, len(attempts))
	for _, a := range attempts {
		byStage[a.Stage] = a
	}

	states := make([]StageState, Count)
	prevPassed := true // stage 1 has no predecessor
	for i, def := range definitions {
		st := StageState{Def: def, Attempt: byStage[def.Number]}
		switch {
		case st.Attempt == nil && prevPassed:
			st.Status = StatusUnlocked
		case st.Attempt == nil:
			st.Status = StatusLocked
		case !st.Attempt.Finished():
			st.Status = StatusInProgress
		case st.Attempt.Passed:
			st.Status = StatusPassed
		default:
			st.Status = StatusFailed
		}
		states[i] = st
		prevPassed = st.Status == StatusPassed
	}
	return states, nil
}

// Run is an open stage attempt bound to its definition.
type Run struct {
	Def     Definition
	Attempt *store.Attempt
}

// Cursor returns the index of the next unanswered question, 0-based.
// Persisted answers fill slots in order, so the cursor is their count.
func (r *Run) Cursor() int {
	return len(r.Attempt.Answers)
}

// Done reports whether every question has a recorded answer.
func (r *Run) Done() bool {
	return r.Cursor() >= len(r.Attempt.Questions)
}

// Current returns the question at the cursor.
func (r *Run) Current() problemgen.Question {
	return r.Attempt.Questions[r.Cursor()]
}

// Score regrades the recorded answers. Grading is pure, so this is the
// same score whether the run just happened or is being resumed.
func (r *Run) Score() int {
	score := 0
	for slot, raw := range r.Attempt.Answers {
		if slot < 1 || slot > len(r.Attempt.Questions) {
			continue
		}
		res := grader.Grade(r.Attempt.Questions[slot-1], raw)
		score += res.Points
	}
	return score
}

// Start opens the learner's single attempt at a stage. The question set
// is generated once here and pinned to the attempt.
func (s *Service) Start(ctx context.Context, learnerID, stage int, d problemgen.Difficulty) (*Run, error) {
	def, err := ByNumber(stage)
	if err != nil {
		return nil, err
	}
	if !d.Valid() {
		return nil, fmt.Errorf("stages: invalid difficulty %q", d)
	}

	status, err := s.StatusOf(ctx, learnerID, stage)
	if err != nil {
		return nil, err
	}
	switch status {
	case StatusLocked:
		return nil, ErrStageLocked
	case StatusPassed, StatusFailed:
		return nil, ErrAlreadyAttempted
	case StatusInProgress:
		return s.Resume(ctx, learnerID, stage)
	}

	questions, err := s.gen.GenerateRun(def.Kind, d, QuestionsPerRun)
	if err != nil {
		return nil, err
	}
	attempt, err := s.attempts.Create(ctx, store.CreateAttemptInput{
		LearnerID:  learnerID,
		Stage:      stage,
		SessionID:  uuid.NewString(),
		Difficulty: d,
		Questions:  questions,
	})
	if errors.Is(err, store.ErrDuplicateAttempt) {
		// Lost a start race; pick up whichever attempt won.
		return s.Resume(ctx, learnerID, stage)
	}
	if err != nil {
		return nil, err
	}
	return &Run{Def: def, Attempt: attempt}, nil
}

// Resume reloads an in-progress attempt with its pinned questions.
func (s *Service) Resume(ctx context.Context, learnerID, stage int) (*Run, error) {
	def, err := ByNumber(stage)
	if err != nil {
		return nil, err
	}
	attempt, err := s.attempts.Get(ctx, learnerID, stage)
	if err != nil {
		return nil, err
	}
	if attempt.Finished() {
		return nil, ErrAlreadyAttempted
	}
	return &Run{Def: def, Attempt: attempt}, nil
}

// Submit grades raw input against the current question. Rejected input
// (missing unit, unknown unit, not a number) does not consume the
// question; a graded answer is recorded and the cursor advances. When the
// last answer lands the attempt is finalized.
func (s *Service) Submit(ctx context.Context, run *Run, raw string) (grader.Result, error) {
	if run.Done() {
		return grader.Result{}, fmt.Errorf("stages: run already complete")
	}

	res := grader.Grade(run.Current(), raw)
	switch res.Reason {
	case grader.ReasonMissingUnit, grader.ReasonBadUnit, grader.ReasonNotANumber:
		return res, nil // re-prompt, question not consumed
	}

	slot := run.Cursor() + 1
	if err := s.attempts.SaveAnswer(ctx, run.Attempt.ID, slot, raw); err != nil {
		return grader.Result{}, err
	}
	run.Attempt.Answers[slot] = raw

	if run.Done() {
		score := run.Score()
		passed := score >= PassScore
		err := s.attempts.Finalize(ctx, run.Attempt.ID, score, passed)
		if err != nil && !errors.Is(err, store.ErrAlreadyFinished) {
			return grader.Result{}, err
		}
		run.Attempt.Score = score
		run.Attempt.Passed = passed
	}
	return res, nil
}
