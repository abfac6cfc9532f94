// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gymops/memberpulse/ent/attendanceevent"
	"github.com/gymops/memberpulse/ent/predicate"
)

// AttendanceEventDelete is the builder for deleting a AttendanceEvent entity.
type AttendanceEventDelete struct {
	config
	hooks    []Hook
	mutation *AttendanceEventMutation
}

// Where appends a list predicates to the AttendanceEventDelete builder.
func (_d *AttendanceEventDelete) Where(ps ...predicate.AttendanceEvent) *AttendanceEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AttendanceEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AttendanceEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AttendanceEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(attendanceevent.Table, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AttendanceEventDeleteOne is the builder for deleting a single AttendanceEvent entity.
type AttendanceEventDeleteOne struct {
	_d *AttendanceEventDelete
}

// Where appends a list predicates to the AttendanceEventDelete builder.
func (_d *AttendanceEventDeleteOne) Where(ps ...predicate.AttendanceEvent) *AttendanceEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AttendanceEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{attendanceevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AttendanceEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
