// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/maturiz/ent/diagnosisevent"
	"github.com/abhisek/maturiz/ent/predicate"
)

// DiagnosisEventUpdate is the builder for updating DiagnosisEvent entities.
type DiagnosisEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdate) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdate) SetSessionID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSessionID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAxisID sets the "axis_id" field.
func (_u *DiagnosisEventUpdate) SetAxisID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetAxisID(v)
	return _u
}

// SetNillableAxisID sets the "axis_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableAxisID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetAxisID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *DiagnosisEventUpdate) SetAreaID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableAreaID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *DiagnosisEventUpdate) SetEvidence(v string) *DiagnosisEventUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableEvidence(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *DiagnosisEventUpdate) SetLevel(v int) *DiagnosisEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableLevel(v *int) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *DiagnosisEventUpdate) AddLevel(v int) *DiagnosisEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *DiagnosisEventUpdate) SetJustification(v string) *DiagnosisEventUpdate {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableJustification(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DiagnosisEventUpdate) SetOutcome(v string) *DiagnosisEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableOutcome(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdate) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AxisID(); ok {
		if err := diagnosisevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.axis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := diagnosisevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Evidence(); ok {
		if err := diagnosisevent.EvidenceValidator(v); err != nil {
			return &ValidationError{Name: "evidence", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.evidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := diagnosisevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisID(); ok {
		_spec.SetField(diagnosisevent.FieldAxisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(diagnosisevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(diagnosisevent.FieldEvidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(diagnosisevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(diagnosisevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(diagnosisevent.FieldJustification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(diagnosisevent.FieldOutcome, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisEventUpdateOne is the builder for updating a single DiagnosisEvent entity.
type DiagnosisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdateOne) SetSessionID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSessionID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAxisID sets the "axis_id" field.
func (_u *DiagnosisEventUpdateOne) SetAxisID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetAxisID(v)
	return _u
}

// SetNillableAxisID sets the "axis_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableAxisID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetAxisID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *DiagnosisEventUpdateOne) SetAreaID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableAreaID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *DiagnosisEventUpdateOne) SetEvidence(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableEvidence(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *DiagnosisEventUpdateOne) SetLevel(v int) *DiagnosisEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableLevel(v *int) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *DiagnosisEventUpdateOne) AddLevel(v int) *DiagnosisEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *DiagnosisEventUpdateOne) SetJustification(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableJustification(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DiagnosisEventUpdateOne) SetOutcome(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableOutcome(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdateOne) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdateOne) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisEventUpdateOne) Select(field string, fields ...string) *DiagnosisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisEvent entity.
func (_u *DiagnosisEventUpdateOne) Save(ctx context.Context) (*DiagnosisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) SaveX(ctx context.Context) *DiagnosisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AxisID(); ok {
		if err := diagnosisevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.axis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := diagnosisevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Evidence(); ok {
		if err := diagnosisevent.EvidenceValidator(v); err != nil {
			return &ValidationError{Name: "evidence", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.evidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := diagnosisevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisevent.FieldID)
		for _, f := range fields {
			if !diagnosisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisevent.FieldID {
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
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisID(); ok {
		_spec.SetField(diagnosisevent.FieldAxisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(diagnosisevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(diagnosisevent.FieldEvidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(diagnosisevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(diagnosisevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(diagnosisevent.FieldJustification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(diagnosisevent.FieldOutcome, field.TypeString, value)
	}
	_node = &DiagnosisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
