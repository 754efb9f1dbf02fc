// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/maturiz/ent/interviewevent"
)

// InterviewEventCreate is the builder for creating a InterviewEvent entity.
type InterviewEventCreate struct {
	config
	mutation *InterviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterviewEventCreate) SetSequence(v int64) *InterviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterviewEventCreate) SetTimestamp(v time.Time) *InterviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableTimestamp(v *time.Time) *InterviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewEventCreate) SetSessionID(v string) *InterviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAxisID sets the "axis_id" field.
func (_c *InterviewEventCreate) SetAxisID(v string) *InterviewEventCreate {
	_c.mutation.SetAxisID(v)
	return _c
}

// SetAreaID sets the "area_id" field.
func (_c *InterviewEventCreate) SetAreaID(v string) *InterviewEventCreate {
	_c.mutation.SetAreaID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *InterviewEventCreate) SetLanguage(v string) *InterviewEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableLanguage(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTurns sets the "turns" field.
func (_c *InterviewEventCreate) SetTurns(v int) *InterviewEventCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *InterviewEventCreate) SetScore(v int) *InterviewEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableScore(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *InterviewEventCreate) SetReasoning(v string) *InterviewEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableReasoning(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *InterviewEventCreate) SetOutcome(v string) *InterviewEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_c *InterviewEventCreate) Mutation() *InterviewEventMutation {
	return _c.mutation
}

// Save creates the InterviewEvent in the database.
func (_c *InterviewEventCreate) Save(ctx context.Context) (*InterviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewEventCreate) SaveX(ctx context.Context) *InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := interviewevent.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := interviewevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := interviewevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AxisID(); !ok {
		return &ValidationError{Name: "axis_id", err: errors.New(`ent: missing required field "InterviewEvent.axis_id"`)}
	}
	if v, ok := _c.mutation.AxisID(); ok {
		if err := interviewevent.AxisIDValidator(v); err != nil {
			return &ValidationError{Name: "axis_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.axis_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AreaID(); !ok {
		return &ValidationError{Name: "area_id", err: errors.New(`ent: missing required field "InterviewEvent.area_id"`)}
	}
	if v, ok := _c.mutation.AreaID(); ok {
		if err := interviewevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.area_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "InterviewEvent.language"`)}
	}
	if _, ok := _c.mutation.Turns(); !ok {
		return &ValidationError{Name: "turns", err: errors.New(`ent: missing required field "InterviewEvent.turns"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "InterviewEvent.score"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "InterviewEvent.reasoning"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "InterviewEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := interviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "InterviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_c *InterviewEventCreate) sqlSave(ctx context.Context) (*InterviewEvent, error) {
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

func (_c *InterviewEventCreate) createSpec() (*InterviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewevent.Table, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AxisID(); ok {
		_spec.SetField(interviewevent.FieldAxisID, field.TypeString, value)
		_node.AxisID = value
	}
	if value, ok := _c.mutation.AreaID(); ok {
		_spec.SetField(interviewevent.FieldAreaID, field.TypeString, value)
		_node.AreaID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(interviewevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(interviewevent.FieldTurns, field.TypeInt, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(interviewevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(interviewevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(interviewevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	return _node, _spec
}

// InterviewEventCreateBulk is the builder for creating many InterviewEvent entities in bulk.
type InterviewEventCreateBulk struct {
	config
	err      error
	builders []*InterviewEventCreate
}

// Save creates the InterviewEvent entities in the database.
func (_c *InterviewEventCreateBulk) Save(ctx context.Context) ([]*InterviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewEventMutation)
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
func (_c *InterviewEventCreateBulk) SaveX(ctx context.Context) []*InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
