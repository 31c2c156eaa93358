// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/shapewise/ent/preassessment"
	"github.com/abhisek/shapewise/ent/schema"
)

// PreAssessmentCreate is the builder for creating a PreAssessment entity.
type PreAssessmentCreate struct {
	config
	mutation *PreAssessmentMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *PreAssessmentCreate) SetLearnerID(v int) *PreAssessmentCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PreAssessmentCreate) SetSessionID(v string) *PreAssessmentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *PreAssessmentCreate) SetQuestions(v []schema.StoredQuestion) *PreAssessmentCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *PreAssessmentCreate) SetAnswers(v map[string]string) *PreAssessmentCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PreAssessmentCreate) SetStartedAt(v time.Time) *PreAssessmentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PreAssessmentCreate) SetNillableStartedAt(v *time.Time) *PreAssessmentCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *PreAssessmentCreate) SetFinishedAt(v time.Time) *PreAssessmentCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *PreAssessmentCreate) SetNillableFinishedAt(v *time.Time) *PreAssessmentCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *PreAssessmentCreate) SetScore(v int) *PreAssessmentCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *PreAssessmentCreate) SetNillableScore(v *int) *PreAssessmentCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// Mutation returns the PreAssessmentMutation object of the builder.
func (_c *PreAssessmentCreate) Mutation() *PreAssessmentMutation {
	return _c.mutation
}

// Save creates the PreAssessment in the database.
func (_c *PreAssessmentCreate) Save(ctx context.Context) (*PreAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreAssessmentCreate) SaveX(ctx context.Context) *PreAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreAssessmentCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := preassessment.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := preassessment.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreAssessmentCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PreAssessment.learner_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PreAssessment.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := preassessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PreAssessment.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "PreAssessment.questions"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PreAssessment.started_at"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PreAssessment.score"`)}
	}
	return nil
}

func (_c *PreAssessmentCreate) sqlSave(ctx context.Context) (*PreAssessment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PreAssessmentCreate) createSpec() (*PreAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &PreAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preassessment.Table, sqlgraph.NewFieldSpec(preassessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(preassessment.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(preassessment.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(preassessment.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(preassessment.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(preassessment.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(preassessment.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(preassessment.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	return _node, _spec
}

// PreAssessmentCreateBulk is the builder for creating many PreAssessment entities in bulk.
type PreAssessmentCreateBulk struct {
	config
	err      error
	builders []*PreAssessmentCreate
}

// Save creates the PreAssessment entities in the database.
func (_c *PreAssessmentCreateBulk) Save(ctx context.Context) ([]*PreAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PreAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreAssessmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PreAssessmentCreateBulk) SaveX(ctx context.Context) []*PreAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
