// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/shapewise/ent/predicate"
	"github.com/abhisek/shapewise/ent/schema"
	"github.com/abhisek/shapewise/ent/stageattempt"
)

// StageAttemptUpdate is the builder for updating StageAttempt entities.
type StageAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *StageAttemptMutation
}

// Where appends a list predicates to the StageAttemptUpdate builder.
func (_u *StageAttemptUpdate) Where(ps ...predicate.StageAttempt) *StageAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *StageAttemptUpdate) SetLearnerID(v int) *StageAttemptUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillableLearnerID(v *int) *StageAttemptUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *StageAttemptUpdate) AddLearnerID(v int) *StageAttemptUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *StageAttemptUpdate) SetStage(v int) *StageAttemptUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillableStage(v *int) *StageAttemptUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *StageAttemptUpdate) AddStage(v int) *StageAttemptUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StageAttemptUpdate) SetSessionID(v string) *StageAttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillableSessionID(v *string) *StageAttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StageAttemptUpdate) SetDifficulty(v string) *StageAttemptUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillableDifficulty(v *string) *StageAttemptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *StageAttemptUpdate) SetQuestions(v []schema.StoredQuestion) *StageAttemptUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *StageAttemptUpdate) AppendQuestions(v []schema.StoredQuestion) *StageAttemptUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *StageAttemptUpdate) SetAnswers(v map[string]string) *StageAttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *StageAttemptUpdate) ClearAnswers() *StageAttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *StageAttemptUpdate) SetFinishedAt(v time.Time) *StageAttemptUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillableFinishedAt(v *time.Time) *StageAttemptUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *StageAttemptUpdate) ClearFinishedAt() *StageAttemptUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetScore sets the "score" field.
func (_u *StageAttemptUpdate) SetScore(v int) *StageAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillableScore(v *int) *StageAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StageAttemptUpdate) AddScore(v int) *StageAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *StageAttemptUpdate) SetPassed(v bool) *StageAttemptUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *StageAttemptUpdate) SetNillablePassed(v *bool) *StageAttemptUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the StageAttemptMutation object of the builder.
func (_u *StageAttemptUpdate) Mutation() *StageAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageAttemptUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := stageattempt.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stageattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := stageattempt.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *StageAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageattempt.Table, stageattempt.Columns, sqlgraph.NewFieldSpec(stageattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(stageattempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(stageattempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stageattempt.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(stageattempt.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stageattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(stageattempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(stageattempt.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stageattempt.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(stageattempt.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(stageattempt.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(stageattempt.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(stageattempt.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(stageattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(stageattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(stageattempt.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageAttemptUpdateOne is the builder for updating a single StageAttempt entity.
type StageAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageAttemptMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *StageAttemptUpdateOne) SetLearnerID(v int) *StageAttemptUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillableLearnerID(v *int) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *StageAttemptUpdateOne) AddLearnerID(v int) *StageAttemptUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *StageAttemptUpdateOne) SetStage(v int) *StageAttemptUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillableStage(v *int) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *StageAttemptUpdateOne) AddStage(v int) *StageAttemptUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StageAttemptUpdateOne) SetSessionID(v string) *StageAttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillableSessionID(v *string) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StageAttemptUpdateOne) SetDifficulty(v string) *StageAttemptUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillableDifficulty(v *string) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *StageAttemptUpdateOne) SetQuestions(v []schema.StoredQuestion) *StageAttemptUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *StageAttemptUpdateOne) AppendQuestions(v []schema.StoredQuestion) *StageAttemptUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *StageAttemptUpdateOne) SetAnswers(v map[string]string) *StageAttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *StageAttemptUpdateOne) ClearAnswers() *StageAttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *StageAttemptUpdateOne) SetFinishedAt(v time.Time) *StageAttemptUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillableFinishedAt(v *time.Time) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *StageAttemptUpdateOne) ClearFinishedAt() *StageAttemptUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetScore sets the "score" field.
func (_u *StageAttemptUpdateOne) SetScore(v int) *StageAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillableScore(v *int) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StageAttemptUpdateOne) AddScore(v int) *StageAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *StageAttemptUpdateOne) SetPassed(v bool) *StageAttemptUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *StageAttemptUpdateOne) SetNillablePassed(v *bool) *StageAttemptUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the StageAttemptMutation object of the builder.
func (_u *StageAttemptUpdateOne) Mutation() *StageAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageAttemptUpdate builder.
func (_u *StageAttemptUpdateOne) Where(ps ...predicate.StageAttempt) *StageAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageAttemptUpdateOne) Select(field string, fields ...string) *StageAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageAttempt entity.
func (_u *StageAttemptUpdateOne) Save(ctx context.Context) (*StageAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageAttemptUpdateOne) SaveX(ctx context.Context) *StageAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := stageattempt.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stageattempt.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := stageattempt.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "StageAttempt.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *StageAttemptUpdateOne) sqlSave(ctx context.Context) (_node *StageAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageattempt.Table, stageattempt.Columns, sqlgraph.NewFieldSpec(stageattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageattempt.FieldID)
		for _, f := range fields {
			if !stageattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(stageattempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(stageattempt.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stageattempt.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(stageattempt.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stageattempt.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(stageattempt.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(stageattempt.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stageattempt.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(stageattempt.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(stageattempt.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(stageattempt.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(stageattempt.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(stageattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(stageattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(stageattempt.FieldPassed, field.TypeBool, value)
	}
	_node = &StageAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
