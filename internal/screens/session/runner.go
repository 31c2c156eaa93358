package session

import (
	"context"

	"github.com/abhisek/shapewise/internal/assessment"
	"github.com/abhisek/shapewise/internal/grader"
	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/stages"
)

// Runner abstracts a stage run and a pre-assessment run behind one
// question-flow surface so a single screen drives both.
type Runner interface {
	Label() string
	Cursor() int
	Total() int
	Done() bool
	Current() problemgen.Question
	Submit(ctx context.Context, raw string) (grader.Result, error)
	Score() int
	// Questions and Answers expose the finished run for the results view.
	Questions() []problemgen.Question
	Answers() map[int]string
	// Passed returns (passed, true) for runs with a pass bar, (_, false)
	// for the pre-assessment.
	Passed() (bool, bool)
}

// StageRunner drives a stage attempt.
type StageRunner struct {
	Svc *stages.Service
	Run *stages.Run
}

func (r *StageRunner) Label() string {
	return r.Run.Def.Title
}

func (r *StageRunner) Cursor() int { return r.Run.Cursor() }
func (r *StageRunner) Total() int  { return len(r.Run.Attempt.Questions) }
func (r *StageRunner) Done() bool  { return r.Run.Done() }

func (r *StageRunner) Current() problemgen.Question { return r.Run.Current() }

func (r *StageRunner) Submit(ctx context.Context, raw string) (grader.Result, error) {
	return r.Svc.Submit(ctx, r.Run, raw)
}

func (r *StageRunner) Score() int { return r.Run.Score() }

func (r *StageRunner) Questions() []problemgen.Question { return r.Run.Attempt.Questions }
func (r *StageRunner) Answers() map[int]string          { return r.Run.Attempt.Answers }

func (r *StageRunner) Passed() (bool, bool) {
	return r.Run.Score() >= stages.PassScore, true
}

// AssessmentRunner drives the pre-assessment.
type AssessmentRunner struct {
	Svc *assessment.Service
	Run *assessment.Run
}

func (r *AssessmentRunner) Label() string { return "Pre-assessment" }

func (r *AssessmentRunner) Cursor() int { return r.Run.Cursor() }
func (r *AssessmentRunner) Total() int  { return len(r.Run.Assessment.Questions) }
func (r *AssessmentRunner) Done() bool  { return r.Run.Done() }

func (r *AssessmentRunner) Current() problemgen.Question { return r.Run.Current() }

func (r *AssessmentRunner) Submit(ctx context.Context, raw string) (grader.Result, error) {
	return r.Svc.Submit(ctx, r.Run, raw)
}

func (r *AssessmentRunner) Score() int { return r.Run.Score() }

func (r *AssessmentRunner) Questions() []problemgen.Question { return r.Run.Assessment.Questions }
func (r *AssessmentRunner) Answers() map[int]string          { return r.Run.Assessment.Answers }

func (r *AssessmentRunner) Passed() (bool, bool) { return false, false }
