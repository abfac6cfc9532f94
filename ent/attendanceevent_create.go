// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/attendanceevent"
)

// AttendanceEventCreate is the builder for creating a AttendanceEvent entity.
type AttendanceEventCreate struct {
	config
	mutation *AttendanceEventMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttendanceEventCreate) SetCreatedAt(v time.Time) *AttendanceEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttendanceEventCreate) SetNillableCreatedAt(v *time.Time) *AttendanceEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AttendanceEventCreate) SetUpdatedAt(v time.Time) *AttendanceEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AttendanceEventCreate) SetNillableUpdatedAt(v *time.Time) *AttendanceEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *AttendanceEventCreate) SetMemberID(v uuid.UUID) *AttendanceEventCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *AttendanceEventCreate) SetOccurredAt(v time.Time) *AttendanceEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetSessionType sets the "session_type" field.
func (_c *AttendanceEventCreate) SetSessionType(v string) *AttendanceEventCreate {
	_c.mutation.SetSessionType(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AttendanceEventCreate) SetDurationMinutes(v int) *AttendanceEventCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AttendanceEventCreate) SetID(v uuid.UUID) *AttendanceEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttendanceEventCreate) SetNillableID(v *uuid.UUID) *AttendanceEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AttendanceEventMutation object of the builder.
func (_c *AttendanceEventCreate) Mutation() *AttendanceEventMutation {
	return _c.mutation
}

// Save creates the AttendanceEvent in the database.
func (_c *AttendanceEventCreate) Save(ctx context.Context) (*AttendanceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttendanceEventCreate) SaveX(ctx context.Context) *AttendanceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttendanceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttendanceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttendanceEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attendanceevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := attendanceevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attendanceevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttendanceEventCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AttendanceEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AttendanceEvent.updated_at"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "AttendanceEvent.member_id"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "AttendanceEvent.occurred_at"`)}
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "AttendanceEvent.session_type"`)}
	}
	if v, ok := _c.mutation.SessionType(); ok {
		if err := attendanceevent.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.session_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "AttendanceEvent.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := attendanceevent.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.duration_minutes": %w`, err)}
		}
	}
	return nil
}

func (_c *AttendanceEventCreate) sqlSave(ctx context.Context) (*AttendanceEvent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttendanceEventCreate) createSpec() (*AttendanceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttendanceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attendanceevent.Table, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attendanceevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(attendanceevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(attendanceevent.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(attendanceevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.SessionType(); ok {
		_spec.SetField(attendanceevent.FieldSessionType, field.TypeString, value)
		_node.SessionType = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(attendanceevent.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	return _node, _spec
}

// AttendanceEventCreateBulk is the builder for creating many AttendanceEvent entities in bulk.
type AttendanceEventCreateBulk struct {
	config
	err      error
	builders []*AttendanceEventCreate
}

// Save creates the AttendanceEvent entities in the database.
func (_c *AttendanceEventCreateBulk) Save(ctx context.Context) ([]*AttendanceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttendanceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttendanceEventMutation)
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
func (_c *AttendanceEventCreateBulk) SaveX(ctx context.Context) []*AttendanceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttendanceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttendanceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
