package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/shapewise/ent"
	"github.com/abhisek/shapewise/ent/learner"
	"github.com/abhisek/shapewise/internal/problemgen"
)

type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) GetOrCreate(ctx context.Context, username string) (*Learner, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("store: empty username")
	}

	row, err := r.client.Learner.Query().
		Where(learner.UsernameEQ(username)).
		Only(ctx)
	if err == nil {
		return learnerFromRow(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query learner: %w", err)
	}

	row, err = r.client.Learner.Create().
		SetUsername(username).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Lost a create race; the other creator's row is authoritative.
		row, err = r.client.Learner.Query().
			Where(learner.UsernameEQ(username)).
			Only(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return learnerFromRow(row), nil
}

func (r *learnerRepo) Get(ctx context.Context, id int) (*Learner, error) {
	row, err := r.client.Learner.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return learnerFromRow(row), nil
}

func (r *learnerRepo) Update(ctx context.Context, l *Learner) error {
	err := r.client.Learner.UpdateOneID(l.ID).
		SetFullName(l.FullName).
		SetStudentID(l.StudentID).
		SetPreferredLevel(string(l.PreferredLevel)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update learner: %w", err)
	}
	return nil
}

func (r *learnerRepo) List(ctx context.Context) ([]*Learner, error) {
	rows, err := r.client.Learner.Query().
		Order(ent.Asc(learner.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}
	out := make([]*Learner, len(rows))
	for i, row := range rows {
		out[i] = learnerFromRow(row)
	}
	return out, nil
}

func learnerFromRow(row *ent.Learner) *Learner {
	return &Learner{
		ID:             row.ID,
		Username:       row.Username,
		FullName:       row.FullName,
		StudentID:      row.StudentID,
		PreferredLevel: problemgen.Difficulty(row.PreferredLevel),
	}
}
