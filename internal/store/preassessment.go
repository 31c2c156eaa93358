package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/shapewise/ent"
	"github.com/abhisek/shapewise/ent/preassessment"
)

type preAssessmentRepo struct {
	client *ent.Client
}

func (r *preAssessmentRepo) Create(ctx context.Context, in CreateAssessmentInput) (*Assessment, error) {
	row, err := r.client.PreAssessment.Create().
		SetLearnerID(in.LearnerID).
		SetSessionID(in.SessionID).
		SetQuestions(toStored(in.Questions)).
		SetAnswers(map[string]string{}).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, ErrDuplicateAssessment
	}
	if err != nil {
		return nil, fmt.Errorf("create pre-assessment: %w", err)
	}
	return assessmentFromRow(row), nil
}

func (r *preAssessmentRepo) Get(ctx context.Context, learnerID int) (*Assessment, error) {
	row, err := r.client.PreAssessment.Query().
		Where(preassessment.LearnerIDEQ(learnerID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pre-assessment: %w", err)
	}
	return assessmentFromRow(row), nil
}

func (r *preAssessmentRepo) SaveAnswer(ctx context.Context, assessmentID, slot int, raw string) error {
	row, err := r.client.PreAssessment.Get(ctx, assessmentID)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get pre-assessment: %w", err)
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

	err = r.client.PreAssessment.UpdateOneID(assessmentID).
		SetAnswers(answers).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (r *preAssessmentRepo) Finalize(ctx context.Context, assessmentID, score int) error {
	n, err := r.client.PreAssessment.Update().
		Where(
			preassessment.IDEQ(assessmentID),
			preassessment.FinishedAtIsNil(),
		).
		SetFinishedAt(time.Now()).
		SetScore(score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finalize pre-assessment: %w", err)
	}
	if n == 0 {
		exists, err := r.client.PreAssessment.Query().
			Where(preassessment.IDEQ(assessmentID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("finalize pre-assessment: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrAlreadyFinished
	}
	return nil
}

func (r *preAssessmentRepo) Delete(ctx context.Context, learnerID int) error {
	_, err := r.client.PreAssessment.Delete().
		Where(preassessment.LearnerIDEQ(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete pre-assessment: %w", err)
	}
	return nil
}

func assessmentFromRow(row *ent.PreAssessment) *Assessment {
	return &Assessment{
		ID:         row.ID,
		LearnerID:  row.LearnerID,
		SessionID:  row.SessionID,
		Questions:  fromStored(row.Questions),
		Answers:    answersFromJSON(row.Answers),
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
		Score:      row.Score,
	}
}
