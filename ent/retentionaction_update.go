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
	"github.com/gymops/memberpulse/ent/predicate"
	"github.com/gymops/memberpulse/ent/retentionaction"
)

// RetentionActionUpdate is the builder for updating RetentionAction entities.
type RetentionActionUpdate struct {
	config
	hooks    []Hook
	mutation *RetentionActionMutation
}

// Where appends a list predicates to the RetentionActionUpdate builder.
func (_u *RetentionActionUpdate) Where(ps ...predicate.RetentionAction) *RetentionActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RetentionActionUpdate) SetUpdatedAt(v time.Time) *RetentionActionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetType sets the "type" field.
func (_u *RetentionActionUpdate) SetType(v retentionaction.Type) *RetentionActionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *RetentionActionUpdate) SetNillableType(v *retentionaction.Type) *RetentionActionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RetentionActionUpdate) SetDescription(v string) *RetentionActionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RetentionActionUpdate) SetNillableDescription(v *string) *RetentionActionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RetentionActionUpdate) SetStatus(v retentionaction.Status) *RetentionActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RetentionActionUpdate) SetNillableStatus(v *retentionaction.Status) *RetentionActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RetentionActionUpdate) SetPriority(v int) *RetentionActionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RetentionActionUpdate) SetNillablePriority(v *int) *RetentionActionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RetentionActionUpdate) AddPriority(v int) *RetentionActionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RetentionActionUpdate) SetCreatedBy(v string) *RetentionActionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RetentionActionUpdate) SetNillableCreatedBy(v *string) *RetentionActionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RetentionActionUpdate) SetCompletedAt(v time.Time) *RetentionActionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RetentionActionUpdate) SetNillableCompletedAt(v *time.Time) *RetentionActionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RetentionActionUpdate) ClearCompletedAt() *RetentionActionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RetentionActionMutation object of the builder.
func (_u *RetentionActionUpdate) Mutation() *RetentionActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RetentionActionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetentionActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RetentionActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetentionActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RetentionActionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := retentionaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RetentionActionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := retentionaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := retentionaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := retentionaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := retentionaction.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *RetentionActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(retentionaction.Table, retentionaction.Columns, sqlgraph.NewFieldSpec(retentionaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(retentionaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessmentIDCleared() {
		_spec.ClearField(retentionaction.FieldAssessmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(retentionaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(retentionaction.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(retentionaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(retentionaction.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(retentionaction.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(retentionaction.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(retentionaction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(retentionaction.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retentionaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RetentionActionUpdateOne is the builder for updating a single RetentionAction entity.
type RetentionActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RetentionActionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RetentionActionUpdateOne) SetUpdatedAt(v time.Time) *RetentionActionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetType sets the "type" field.
func (_u *RetentionActionUpdateOne) SetType(v retentionaction.Type) *RetentionActionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *RetentionActionUpdateOne) SetNillableType(v *retentionaction.Type) *RetentionActionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RetentionActionUpdateOne) SetDescription(v string) *RetentionActionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RetentionActionUpdateOne) SetNillableDescription(v *string) *RetentionActionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RetentionActionUpdateOne) SetStatus(v retentionaction.Status) *RetentionActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RetentionActionUpdateOne) SetNillableStatus(v *retentionaction.Status) *RetentionActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RetentionActionUpdateOne) SetPriority(v int) *RetentionActionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RetentionActionUpdateOne) SetNillablePriority(v *int) *RetentionActionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RetentionActionUpdateOne) AddPriority(v int) *RetentionActionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RetentionActionUpdateOne) SetCreatedBy(v string) *RetentionActionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RetentionActionUpdateOne) SetNillableCreatedBy(v *string) *RetentionActionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RetentionActionUpdateOne) SetCompletedAt(v time.Time) *RetentionActionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RetentionActionUpdateOne) SetNillableCompletedAt(v *time.Time) *RetentionActionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RetentionActionUpdateOne) ClearCompletedAt() *RetentionActionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RetentionActionMutation object of the builder.
func (_u *RetentionActionUpdateOne) Mutation() *RetentionActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RetentionActionUpdate builder.
func (_u *RetentionActionUpdateOne) Where(ps ...predicate.RetentionAction) *RetentionActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RetentionActionUpdateOne) Select(field string, fields ...string) *RetentionActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RetentionAction entity.
func (_u *RetentionActionUpdateOne) Save(ctx context.Context) (*RetentionAction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetentionActionUpdateOne) SaveX(ctx context.Context) *RetentionAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RetentionActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetentionActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RetentionActionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := retentionaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RetentionActionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := retentionaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := retentionaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := retentionaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := retentionaction.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *RetentionActionUpdateOne) sqlSave(ctx context.Context) (_node *RetentionAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(retentionaction.Table, retentionaction.Columns, sqlgraph.NewFieldSpec(retentionaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RetentionAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, retentionaction.FieldID)
		for _, f := range fields {
			if !retentionaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != retentionaction.FieldID {
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
		_spec.SetField(retentionaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessmentIDCleared() {
		_spec.ClearField(retentionaction.FieldAssessmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(retentionaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(retentionaction.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(retentionaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(retentionaction.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(retentionaction.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(retentionaction.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(retentionaction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(retentionaction.FieldCompletedAt, field.TypeTime)
	}
	_node = &RetentionAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retentionaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
