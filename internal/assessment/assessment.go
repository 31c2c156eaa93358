// Package assessment implements the one-shot placement run taken before
// the stages. It mirrors a stage run but draws mixed questions and gates
// nothing; the score only informs the suggested starting tier.
package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/store"
)

// QuestionsPerRun is the fixed length of the pre-assessment.
const QuestionsPerRun = 10

// ErrAlreadyTaken is returned when starting a second pre-assessment.
var ErrAlreadyTaken = errors.New("assessment: already taken")

// Service runs the pre-assessment against the store.
type Service struct {
	assessments store.PreAssessmentRepo
	gen         *problemgen.Generator
}

// NewService wires an assessment service.
func NewService(assessments store.PreAssessmentRepo, gen *problemgen.Generator) *Service {
	return &Service{assessments: assessments, gen: gen}
}

// Run is an open or finished pre-assessment.
type Run struct {
	Assessment *store.Assessment
}

// Cursor returns the index of the next unanswered question, 0-based.
func (r *Run) Cursor() int {
	return len(r.Assessment.Answers)
}

// Done reports whether every question has a recorded answer.
func (r *Run) Done() bool {
	return r.Cursor() >= len(r.Assessment.Questions)
}

// Current returns the question at the cursor.
func (r *Run) Current() problemgen.Question {
	return r.Assessment.Questions[r.Cursor()]
}

// Score regrades the recorded answers.
func (r *Run) Score() int {
	score := 0
	for slot, raw := range r.Assessment.Answers {
		if slot < 1 || slot > len(r.Assessment.Questions) {
			continue
		}
		score += grader.Grade(r.Assessment.Questions[slot-1], raw).Points
	}
	return score
}

// Start opens the learner's pre-assessment, or resumes the in-progress
// one. Questions are mixed shapes at Beginner tier so the score reflects
// breadth, not dimension size.
func (s *Service) Start(ctx context.Context, learnerID int) (*Run, error) {
	existing, err := s.assessments.Get(ctx, learnerID)
	switch {
	case err == nil:
		if existing.Finished() {
			return nil, ErrAlreadyTaken
		}
		return &Run{Assessment: existing}, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	questions, err := s.gen.GenerateRun(problemgen.KindMixed, problemgen.Beginner, QuestionsPerRun)
	if err != nil {
		return nil, err
	}
	a, err := s.assessments.Create(ctx, store.CreateAssessmentInput{
		LearnerID: learnerID,
		SessionID: uuid.NewString(),
		Questions: questions,
	})
	if errors.Is(err, store.ErrDuplicateAssessment) {
		return s.Start(ctx, learnerID)
	}
	if err != nil {
		return nil, err
	}
	return &Run{Assessment: a}, nil
}

// Submit grades raw input against the current question, with the same
// re-prompt semantics as a stage run. Finalizes on the last answer.
func (s *Service) Submit(ctx context.Context, run *Run, raw string) (grader.Result, error) {
	if run.Done() {
		return grader.Result{}, fmt.Errorf("assessment: run already complete")
	}

	res := grader.Grade(run.Current(), raw)
	switch res.Reason {
	case grader.ReasonMissingUnit, grader.ReasonBadUnit, grader.ReasonNotANumber:
		return res, nil
	}

	slot := run.Cursor() + 1
	if err := s.assessments.SaveAnswer(ctx, run.Assessment.ID, slot, raw); err != nil {
		return grader.Result{}, err
	}
	run.Assessment.Answers[slot] = raw

	if run.Done() {
		score := run.Score()
		err := s.assessments.Finalize(ctx, run.Assessment.ID, score)
		if err != nil && !errors.Is(err, store.ErrAlreadyFinished) {
			return grader.Result{}, err
		}
		run.Assessment.Score = score
	}
	return res, nil
}

// Result returns the learner's finished assessment, or store.ErrNotFound.
func (s *Service) Result(ctx context.Context, learnerID int) (*store.Assessment, error) {
	a, err := s.assessments.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Placement suggests a starting tier from the assessment score.
func Placement(score int) problemgen.Difficulty {
	switch {
	case score >= 80:
		return problemgen.Advanced
	case score >= 50:
		return problemgen.Intermediate
	default:
		return problemgen.Beginner
	}
}
