// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/maturiz/ent/interviewevent"
	"github.com/abhisek/maturiz/ent/predicate"
)

// InterviewEventUpdate is the builder for updating InterviewEvent entities.
type InterviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewEventMutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdate) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdate) SetSessionID(v string) *InterviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableSessionID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAxisID sets the "axis_id" field.
func (_u *InterviewEventUpdate) SetAxisID(v string) *InterviewEventUpdate {
	_u.mutation.SetAxisID(v)
	return _u
}

// SetNillableAxisID sets the "axis_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAxisID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetAxisID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *InterviewEventUpdate) SetAreaID(v string) *InterviewEventUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAreaID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *InterviewEventUpdate) SetLanguage(v string) *InterviewEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableLanguage(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *InterviewEventUpdate) SetTurns(v int) *InterviewEventUpdate {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableTurns(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *InterviewEventUpdate) AddTurns(v int) *InterviewEventUpdate {
	_u.mutation.AddTurns(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *InterviewEventUpdate) SetScore(v int) *InterviewEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableScore(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterviewEventUpdate) AddScore(v int) *InterviewEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *InterviewEventUpdate) SetReasoning(v string) *InterviewEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableReasoning(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *InterviewEventUpdate) SetOutcome(v string) *InterviewEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableOutcome(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdate) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AxisID(); ok {
		if err := interviewevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.axis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := interviewevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := interviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisID(); ok {
		_spec.SetField(interviewevent.FieldAxisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(interviewevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(interviewevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(interviewevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(interviewevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interviewevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interviewevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(interviewevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(interviewevent.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewEventUpdateOne is the builder for updating a single InterviewEvent entity.
type InterviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdateOne) SetSessionID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableSessionID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAxisID sets the "axis_id" field.
func (_u *InterviewEventUpdateOne) SetAxisID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetAxisID(v)
	return _u
}

// SetNillableAxisID sets the "axis_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAxisID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAxisID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *InterviewEventUpdateOne) SetAreaID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAreaID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *InterviewEventUpdateOne) SetLanguage(v string) *InterviewEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableLanguage(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *InterviewEventUpdateOne) SetTurns(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableTurns(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *InterviewEventUpdateOne) AddTurns(v int) *InterviewEventUpdateOne {
	_u.mutation.AddTurns(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *InterviewEventUpdateOne) SetScore(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableScore(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterviewEventUpdateOne) AddScore(v int) *InterviewEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *InterviewEventUpdateOne) SetReasoning(v string) *InterviewEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableReasoning(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *InterviewEventUpdateOne) SetOutcome(v string) *InterviewEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableOutcome(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdateOne) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdateOne) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewEventUpdateOne) Select(field string, fields ...string) *InterviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewEvent entity.
func (_u *InterviewEventUpdateOne) Save(ctx context.Context) (*InterviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) SaveX(ctx context.Context) *InterviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AxisID(); ok {
		if err := interviewevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.axis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := interviewevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := interviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewEventUpdateOne) sqlSave(ctx context.Context) (_node *InterviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewevent.FieldID)
		for _, f := range fields {
			if !interviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisID(); ok {
		_spec.SetField(interviewevent.FieldAxisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(interviewevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(interviewevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(interviewevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(interviewevent.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interviewevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interviewevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(interviewevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(interviewevent.FieldOutcome, field.TypeString, value)
	}
	_node = &InterviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
