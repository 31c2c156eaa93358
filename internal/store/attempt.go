package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/shapewise/ent"
	"github.com/abhisek/shapewise/ent/stageattempt"
	"github.com/abhisek/shapewise/internal/problemgen"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Create(ctx context.Context, in CreateAttemptInput) (*Attempt, error) {
	row, err := r.client.StageAttempt.Create().
		SetLearnerID(in.LearnerID).
		SetStage(in.Stage).
		SetSessionID(in.SessionID).
		SetDifficulty(string(in.Difficulty)).
		SetQuestions(toStored(in.Questions)).
		SetAnswers(map[string]string{}).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, ErrDuplicateAttempt
	}
	if err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	return attemptFromRow(row), nil
}

func (r *attemptRepo) Get(ctx context.Context, learnerID, stage int) (*Attempt, error) {
	row, err := r.client.StageAttempt.Query().
		Where(
			stageattempt.LearnerIDEQ(learnerID),
			stageattempt.StageEQ(stage),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return attemptFromRow(row), nil
}

func (r *attemptRepo) ListByLearner(ctx context.Context, learnerID int) ([]*Attempt, error) {
	rows, err := r.client.StageAttempt.Query().
		Where(stageattempt.LearnerIDEQ(learnerID)).
		Order(ent.Asc(stageattempt.FieldStage)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	out := make([]*Attempt, len(rows))
	for i, row := range rows {
		out[i] = attemptFromRow(row)
	}
	return out, nil
}

func (r *attemptRepo) SaveAnswer(ctx context.Context, attemptID, slot int, raw string) error {
	row, err := r.client.StageAttempt.Get(ctx, attemptID)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get attempt: %w", err)
	}
	if row.FinishedAt != nil {
		return ErrAlreadyFinished
	}

	key := strconv.Itoa(slot)
	answers := row.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	if _, taken := answers[key]; taken {
		return fmt.Errorf("store: slot %d already answered", slot)
	}
	answers[key] = raw

	err = r.client.StageAttempt.UpdateOneID(attemptID).
		SetAnswers(answers).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (r *attemptRepo) Finalize(ctx context.Context, attemptID, score int, passed bool) error {
	// Conditional update: the FinishedAtIsNil predicate makes the first
	// finalize the only one that writes.
	n, err := r.client.StageAttempt.Update().
		Where(
			stageattempt.IDEQ(attemptID),
			stageattempt.FinishedAtIsNil(),
		).
		SetFinishedAt(time.Now()).
		SetScore(score).
		SetPassed(passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finalize attempt: %w", err)
	}
	if n == 0 {
		exists, err := r.client.StageAttempt.Query().
			Where(stageattempt.IDEQ(attemptID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("finalize attempt: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrAlreadyFinished
	}
	return nil
}

func (r *attemptRepo) DeleteByLearner(ctx context.Context, learnerID int) (int, error) {
	n, err := r.client.StageAttempt.Delete().
		Where(stageattempt.LearnerIDEQ(learnerID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete attempts: %w", err)
	}
	return n, nil
}

func attemptFromRow(row *ent.StageAttempt) *Attempt {
	return &Attempt{
		ID:         row.ID,
		LearnerID:  row.LearnerID,
		Stage:      row.Stage,
		SessionID:  row.SessionID,
		Difficulty: problemgen.Difficulty(row.Difficulty),
		Questions:  fromStored(row.Questions),
		Answers:    answersFromJSON(row.Answers),
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
		Score:      row.Score,
		Passed:     row.Passed,
	}
}
