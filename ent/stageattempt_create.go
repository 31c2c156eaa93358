// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/shapewise/ent/schema"
	"github.com/abhisek/shapewise/ent/stageattempt"
)

// StageAttemptCreate is the builder for creating a StageAttempt entity.
type StageAttemptCreate struct {
	config
	mutation *StageAttemptMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *StageAttemptCreate) SetLearnerID(v int) *StageAttemptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *StageAttemptCreate) SetStage(v int) *StageAttemptCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StageAttemptCreate) SetSessionID(v string) *StageAttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *StageAttemptCreate) SetDifficulty(v string) *StageAttemptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *StageAttemptCreate) SetQuestions(v []schema.StoredQuestion) *StageAttemptCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *StageAttemptCreate) SetAnswers(v map[string]string) *StageAttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageAttemptCreate) SetStartedAt(v time.Time) *StageAttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageAttemptCreate) SetNillableStartedAt(v *time.Time) *StageAttemptCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *StageAttemptCreate) SetFinishedAt(v time.Time) *StageAttemptCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *StageAttemptCreate) SetNillableFinishedAt(v *time.Time) *StageAttemptCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *StageAttemptCreate) SetScore(v int) *StageAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *StageAttemptCreate) SetNillableScore(v *int) *StageAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *StageAttemptCreate) SetPassed(v bool) *StageAttemptCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *StageAttemptCreate) SetNillablePassed(v *bool) *StageAttemptCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// Mutation returns the StageAttemptMutation object of the builder.
func (_c *StageAttemptCreate) Mutation() *StageAttemptMutation {
	return _c.mutation
}

// Save creates the StageAttempt in the database.
func (_c *StageAttemptCreate) Save(ctx context.Context) (*StageAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageAttemptCreate) SaveX(ctx context.Context) *StageAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageAttemptCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := stageattempt.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := stageattempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := stageattempt.DefaultPassed
		_c.mutation.SetPassed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageAttemptCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "StageAttempt.learner_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "StageAttempt.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := stageattempt.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StageAttempt.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := stageattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "StageAttempt.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := stageattempt.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "StageAttempt.questions"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StageAttempt.started_at"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "StageAttempt.score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "StageAttempt.passed"`)}
	}
	return nil
}

func (_c *StageAttemptCreate) sqlSave(ctx context.Context) (*StageAttempt, error) {
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

func (_c *StageAttemptCreate) createSpec() (*StageAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &StageAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageattempt.Table, sqlgraph.NewFieldSpec(stageattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(stageattempt.FieldLearnerID, field.TypeInt, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(stageattempt.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(stageattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(stageattempt.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(stageattempt.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(stageattempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stageattempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(stageattempt.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(stageattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(stageattempt.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	return _node, _spec
}

// StageAttemptCreateBulk is the builder for creating many StageAttempt entities in bulk.
type StageAttemptCreateBulk struct {
	config
	err      error
	builders []*StageAttemptCreate
}

// Save creates the StageAttempt entities in the database.
func (_c *StageAttemptCreateBulk) Save(ctx context.Context) ([]*StageAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageAttemptMutation)
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
func (_c *StageAttemptCreateBulk) SaveX(ctx context.Context) []*StageAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
