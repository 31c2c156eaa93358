package store

import (
	"context"
	"strconv"
	"time"

	"github.com/abhisek/shapewise/ent/schema"
	"github.com/abhisek/shapewise/internal/problemgen"
)

// Learner is a student profile.
type Learner struct {
	ID             int
	Username       string
	FullName       string
	StudentID      string
	PreferredLevel problemgen.Difficulty
}

// Attempt is one run at a stage. FinishedAt is nil while in progress.
type Attempt struct {
	ID         int
	LearnerID  int
	Stage      int
	SessionID  string
	Difficulty problemgen.Difficulty
	Questions  []problemgen.Question
	// Answers holds the raw accepted answer per 1-based question slot.
	// Grading is pure, so a resumed run regrades these to rebuild score.
	Answers    map[int]string
	StartedAt  time.Time
	FinishedAt *time.Time
	Score      int
	Passed     bool
}

// Finished reports whether the attempt has been finalized.
func (a *Attempt) Finished() bool {
	return a.FinishedAt != nil
}

// Assessment is a learner's one pre-assessment run.
type Assessment struct {
	ID         int
	LearnerID  int
	SessionID  string
	Questions  []problemgen.Question
	Answers    map[int]string
	StartedAt  time.Time
	FinishedAt *time.Time
	Score      int
}

// Finished reports whether the assessment has been finalized.
func (a *Assessment) Finished() bool {
	return a.FinishedAt != nil
}

// LearnerRepo manages student profiles.
type LearnerRepo interface {
	// GetOrCreate looks a learner up by username, creating the profile on
	// first use.
	GetOrCreate(ctx context.Context, username string) (*Learner, error)

	// Get returns the learner with the given ID, or ErrNotFound.
	Get(ctx context.Context, id int) (*Learner, error)

	// Update persists profile fields other than the username.
	Update(ctx context.Context, l *Learner) error

	// List returns all learners ordered by username.
	List(ctx context.Context) ([]*Learner, error)
}

// CreateAttemptInput is everything needed to open a stage run.
type CreateAttemptInput struct {
	LearnerID  int
	Stage      int
	SessionID  string
	Difficulty problemgen.Difficulty
	Questions  []problemgen.Question
}

// AttemptRepo manages stage attempts. The unique (learner, stage) index
// is the source of truth for the one-attempt rule.
type AttemptRepo interface {
	// Create opens a run. Returns ErrDuplicateAttempt when an attempt for
	// this learner and stage already exists, finished or not.
	Create(ctx context.Context, in CreateAttemptInput) (*Attempt, error)

	// Get returns the attempt for (learner, stage), or ErrNotFound.
	Get(ctx context.Context, learnerID, stage int) (*Attempt, error)

	// ListByLearner returns all attempts of a learner ordered by stage.
	ListByLearner(ctx context.Context, learnerID int) ([]*Attempt, error)

	// SaveAnswer records the raw accepted answer for a question slot.
	// Overwrites nothing: a slot already answered is an error.
	SaveAnswer(ctx context.Context, attemptID, slot int, raw string) error

	// Finalize writes score and pass/fail exactly once. Returns
	// ErrAlreadyFinished if the attempt was finalized before.
	Finalize(ctx context.Context, attemptID, score int, passed bool) error

	// DeleteByLearner removes all attempts for a learner. Used by reset.
	DeleteByLearner(ctx context.Context, learnerID int) (int, error)
}

// CreateAssessmentInput opens a pre-assessment run.
type CreateAssessmentInput struct {
	LearnerID int
	SessionID string
	Questions []problemgen.Question
}

// PreAssessmentRepo manages the one-shot placement run.
type PreAssessmentRepo interface {
	// Create opens the run. Returns ErrDuplicateAssessment when the
	// learner already has one.
	Create(ctx context.Context, in CreateAssessmentInput) (*Assessment, error)

	// Get returns the learner's assessment, or ErrNotFound.
	Get(ctx context.Context, learnerID int) (*Assessment, error)

	// SaveAnswer records the raw accepted answer for a question slot.
	SaveAnswer(ctx context.Context, assessmentID, slot int, raw string) error

	// Finalize writes the score exactly once.
	Finalize(ctx context.Context, assessmentID, score int) error

	// Delete removes the learner's assessment. Used by reset.
	Delete(ctx context.Context, learnerID int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a recorded LLM API call.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one request purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo records and inspects operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent events, newest first.
	// limit <= 0 means no limit.
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates calls and token counts per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}

// toStored converts generated questions to their persisted form.
func toStored(qs []problemgen.Question) []schema.StoredQuestion {
	out := make([]schema.StoredQuestion, len(qs))
	for i, q := range qs {
		out[i] = schema.StoredQuestion{
			Prompt:     q.Prompt,
			Answer:     q.Answer,
			Kind:       string(q.Kind),
			Difficulty: string(q.Difficulty),
			Format:     string(q.Format),
			Choices:    q.Choices,
			Correct:    q.Correct,
		}
	}
	return out
}

func fromStored(qs []schema.StoredQuestion) []problemgen.Question {
	out := make([]problemgen.Question, len(qs))
	for i, q := range qs {
		out[i] = problemgen.Question{
			Prompt:     q.Prompt,
			Answer:     q.Answer,
			Kind:       problemgen.ShapeKind(q.Kind),
			Difficulty: problemgen.Difficulty(q.Difficulty),
			Format:     problemgen.AnswerFormat(q.Format),
			Choices:    q.Choices,
			Correct:    q.Correct,
		}
	}
	return out
}

// JSON object keys are strings; answer slots are ints in the domain.
func answersFromJSON(m map[string]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		slot, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[slot] = v
	}
	return out
}
