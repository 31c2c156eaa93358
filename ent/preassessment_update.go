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
	"github.com/abhisek/shapewise/ent/preassessment"
	"github.com/abhisek/shapewise/ent/predicate"
	"github.com/abhisek/shapewise/ent/schema"
)

// PreAssessmentUpdate is the builder for updating PreAssessment entities.
type PreAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *PreAssessmentMutation
}

// Where appends a list predicates to the PreAssessmentUpdate builder.
func (_u *PreAssessmentUpdate) Where(ps ...predicate.PreAssessment) *PreAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PreAssessmentUpdate) SetLearnerID(v int) *PreAssessmentUpdate {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PreAssessmentUpdate) SetNillableLearnerID(v *int) *PreAssessmentUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *PreAssessmentUpdate) AddLearnerID(v int) *PreAssessmentUpdate {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PreAssessmentUpdate) SetSessionID(v string) *PreAssessmentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PreAssessmentUpdate) SetNillableSessionID(v *string) *PreAssessmentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PreAssessmentUpdate) SetQuestions(v []schema.StoredQuestion) *PreAssessmentUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PreAssessmentUpdate) AppendQuestions(v []schema.StoredQuestion) *PreAssessmentUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *PreAssessmentUpdate) SetAnswers(v map[string]string) *PreAssessmentUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *PreAssessmentUpdate) ClearAnswers() *PreAssessmentUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PreAssessmentUpdate) SetFinishedAt(v time.Time) *PreAssessmentUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PreAssessmentUpdate) SetNillableFinishedAt(v *time.Time) *PreAssessmentUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PreAssessmentUpdate) ClearFinishedAt() *PreAssessmentUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetScore sets the "score" field.
func (_u *PreAssessmentUpdate) SetScore(v int) *PreAssessmentUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PreAssessmentUpdate) SetNillableScore(v *int) *PreAssessmentUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PreAssessmentUpdate) AddScore(v int) *PreAssessmentUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the PreAssessmentMutation object of the builder.
func (_u *PreAssessmentUpdate) Mutation() *PreAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreAssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreAssessmentUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := preassessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PreAssessment.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PreAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preassessment.Table, preassessment.Columns, sqlgraph.NewFieldSpec(preassessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(preassessment.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(preassessment.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(preassessment.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(preassessment.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, preassessment.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(preassessment.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(preassessment.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(preassessment.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(preassessment.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(preassessment.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(preassessment.FieldScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreAssessmentUpdateOne is the builder for updating a single PreAssessment entity.
type PreAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreAssessmentMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *PreAssessmentUpdateOne) SetLearnerID(v int) *PreAssessmentUpdateOne {
	_u.mutation.ResetLearnerID()
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PreAssessmentUpdateOne) SetNillableLearnerID(v *int) *PreAssessmentUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// AddLearnerID adds value to the "learner_id" field.
func (_u *PreAssessmentUpdateOne) AddLearnerID(v int) *PreAssessmentUpdateOne {
	_u.mutation.AddLearnerID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PreAssessmentUpdateOne) SetSessionID(v string) *PreAssessmentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PreAssessmentUpdateOne) SetNillableSessionID(v *string) *PreAssessmentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PreAssessmentUpdateOne) SetQuestions(v []schema.StoredQuestion) *PreAssessmentUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PreAssessmentUpdateOne) AppendQuestions(v []schema.StoredQuestion) *PreAssessmentUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *PreAssessmentUpdateOne) SetAnswers(v map[string]string) *PreAssessmentUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *PreAssessmentUpdateOne) ClearAnswers() *PreAssessmentUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PreAssessmentUpdateOne) SetFinishedAt(v time.Time) *PreAssessmentUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PreAssessmentUpdateOne) SetNillableFinishedAt(v *time.Time) *PreAssessmentUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PreAssessmentUpdateOne) ClearFinishedAt() *PreAssessmentUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetScore sets the "score" field.
func (_u *PreAssessmentUpdateOne) SetScore(v int) *PreAssessmentUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PreAssessmentUpdateOne) SetNillableScore(v *int) *PreAssessmentUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PreAssessmentUpdateOne) AddScore(v int) *PreAssessmentUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the PreAssessmentMutation object of the builder.
func (_u *PreAssessmentUpdateOne) Mutation() *PreAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the PreAssessmentUpdate builder.
func (_u *PreAssessmentUpdateOne) Where(ps ...predicate.PreAssessment) *PreAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreAssessmentUpdateOne) Select(field string, fields ...string) *PreAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PreAssessment entity.
func (_u *PreAssessmentUpdateOne) Save(ctx context.Context) (*PreAssessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreAssessmentUpdateOne) SaveX(ctx context.Context) *PreAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := preassessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PreAssessment.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PreAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *PreAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preassessment.Table, preassessment.Columns, sqlgraph.NewFieldSpec(preassessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PreAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preassessment.FieldID)
		for _, f := range fields {
			if !preassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preassessment.FieldID {
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
		_spec.SetField(preassessment.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerID(); ok {
		_spec.AddField(preassessment.FieldLearnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(preassessment.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(preassessment.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, preassessment.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(preassessment.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(preassessment.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(preassessment.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(preassessment.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(preassessment.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(preassessment.FieldScore, field.TypeInt, value)
	}
	_node = &PreAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
