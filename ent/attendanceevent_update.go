// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gymops/memberpulse/ent/attendanceevent"
	"github.com/gymops/memberpulse/ent/predicate"
)

// AttendanceEventUpdate is the builder for updating AttendanceEvent entities.
type AttendanceEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttendanceEventMutation
}

// Where appends a list predicates to the AttendanceEventUpdate builder.
func (_u *AttendanceEventUpdate) Where(ps ...predicate.AttendanceEvent) *AttendanceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttendanceEventUpdate) SetUpdatedAt(v time.Time) *AttendanceEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AttendanceEventMutation object of the builder.
func (_u *AttendanceEventUpdate) Mutation() *AttendanceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttendanceEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttendanceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttendanceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttendanceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttendanceEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attendanceevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AttendanceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attendanceevent.Table, attendanceevent.Columns, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attendanceevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attendanceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttendanceEventUpdateOne is the builder for updating a single AttendanceEvent entity.
type AttendanceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttendanceEventMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttendanceEventUpdateOne) SetUpdatedAt(v time.Time) *AttendanceEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AttendanceEventMutation object of the builder.
func (_u *AttendanceEventUpdateOne) Mutation() *AttendanceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttendanceEventUpdate builder.
func (_u *AttendanceEventUpdateOne) Where(ps ...predicate.AttendanceEvent) *AttendanceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttendanceEventUpdateOne) Select(field string, fields ...string) *AttendanceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttendanceEvent entity.
func (_u *AttendanceEventUpdateOne) Save(ctx context.Context) (*AttendanceEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttendanceEventUpdateOne) SaveX(ctx context.Context) *AttendanceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttendanceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttendanceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttendanceEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attendanceevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AttendanceEventUpdateOne) sqlSave(ctx context.Context) (_node *AttendanceEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(attendanceevent.Table, attendanceevent.Columns, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttendanceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attendanceevent.FieldID)
		for _, f := range fields {
			if !attendanceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attendanceevent.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attendanceevent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AttendanceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attendanceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
