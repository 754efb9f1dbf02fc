// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/maturiz/ent/predicate"
	"github.com/abhisek/maturiz/ent/scoreevent"
)

// ScoreEventUpdate is the builder for updating ScoreEvent entities.
type ScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEventMutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdate) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdate) SetSessionID(v string) *ScoreEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableSessionID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAxisID sets the "axis_id" field.
func (_u *ScoreEventUpdate) SetAxisID(v string) *ScoreEventUpdate {
	_u.mutation.SetAxisID(v)
	return _u
}

// SetNillableAxisID sets the "axis_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableAxisID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetAxisID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ScoreEventUpdate) SetAreaID(v string) *ScoreEventUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableAreaID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *ScoreEventUpdate) SetRank(v int) *ScoreEventUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableRank(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *ScoreEventUpdate) AddRank(v int) *ScoreEventUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetSelected sets the "selected" field.
func (_u *ScoreEventUpdate) SetSelected(v bool) *ScoreEventUpdate {
	_u.mutation.SetSelected(v)
	return _u
}

// SetNillableSelected sets the "selected" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableSelected(v *bool) *ScoreEventUpdate {
	if v != nil {
		_u.SetSelected(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScoreEventUpdate) SetSource(v string) *ScoreEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableSource(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAxisPercent sets the "axis_percent" field.
func (_u *ScoreEventUpdate) SetAxisPercent(v int) *ScoreEventUpdate {
	_u.mutation.ResetAxisPercent()
	_u.mutation.SetAxisPercent(v)
	return _u
}

// SetNillableAxisPercent sets the "axis_percent" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableAxisPercent(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetAxisPercent(*v)
	}
	return _u
}

// AddAxisPercent adds value to the "axis_percent" field.
func (_u *ScoreEventUpdate) AddAxisPercent(v int) *ScoreEventUpdate {
	_u.mutation.AddAxisPercent(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdate) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AxisID(); ok {
		if err := scoreevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.axis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := scoreevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := scoreevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisID(); ok {
		_spec.SetField(scoreevent.FieldAxisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(scoreevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(scoreevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(scoreevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(scoreevent.FieldSelected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scoreevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisPercent(); ok {
		_spec.SetField(scoreevent.FieldAxisPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAxisPercent(); ok {
		_spec.AddField(scoreevent.FieldAxisPercent, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEventUpdateOne is the builder for updating a single ScoreEvent entity.
type ScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdateOne) SetSessionID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableSessionID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAxisID sets the "axis_id" field.
func (_u *ScoreEventUpdateOne) SetAxisID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetAxisID(v)
	return _u
}

// SetNillableAxisID sets the "axis_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableAxisID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetAxisID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ScoreEventUpdateOne) SetAreaID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableAreaID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *ScoreEventUpdateOne) SetRank(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableRank(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *ScoreEventUpdateOne) AddRank(v int) *ScoreEventUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetSelected sets the "selected" field.
func (_u *ScoreEventUpdateOne) SetSelected(v bool) *ScoreEventUpdateOne {
	_u.mutation.SetSelected(v)
	return _u
}

// SetNillableSelected sets the "selected" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableSelected(v *bool) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetSelected(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ScoreEventUpdateOne) SetSource(v string) *ScoreEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableSource(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAxisPercent sets the "axis_percent" field.
func (_u *ScoreEventUpdateOne) SetAxisPercent(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetAxisPercent()
	_u.mutation.SetAxisPercent(v)
	return _u
}

// SetNillableAxisPercent sets the "axis_percent" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableAxisPercent(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetAxisPercent(*v)
	}
	return _u
}

// AddAxisPercent adds value to the "axis_percent" field.
func (_u *ScoreEventUpdateOne) AddAxisPercent(v int) *ScoreEventUpdateOne {
	_u.mutation.AddAxisPercent(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdateOne) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdateOne) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEventUpdateOne) Select(field string, fields ...string) *ScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEvent entity.
func (_u *ScoreEventUpdateOne) Save(ctx context.Context) (*ScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) SaveX(ctx context.Context) *ScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AxisID(); ok {
		if err := scoreevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.axis_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := scoreevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := scoreevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreevent.FieldID)
		for _, f := range fields {
			if !scoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreevent.FieldID {
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
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisID(); ok {
		_spec.SetField(scoreevent.FieldAxisID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(scoreevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(scoreevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(scoreevent.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(scoreevent.FieldSelected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(scoreevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AxisPercent(); ok {
		_spec.SetField(scoreevent.FieldAxisPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAxisPercent(); ok {
		_spec.AddField(scoreevent.FieldAxisPercent, field.TypeInt, value)
	}
	_node = &ScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
