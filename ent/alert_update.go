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
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/alert"
	"github.com/gymops/memberpulse/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertUpdate) SetUpdatedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *AlertUpdate) SetMemberID(v uuid.UUID) *AlertUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableMemberID(v *uuid.UUID) *AlertUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *AlertUpdate) ClearMemberID() *AlertUpdate {
	_u.mutation.ClearMemberID()
	return _u
}

// SetCondition sets the "condition" field.
func (_u *AlertUpdate) SetCondition(v alert.Condition) *AlertUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableCondition(v *alert.Condition) *AlertUpdate {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdate) SetSeverity(v alert.Severity) *AlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeverity(v *alert.Severity) *AlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AlertUpdate) SetMessage(v string) *AlertUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableMessage(v *string) *AlertUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdate) SetStatus(v alert.Status) *AlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStatus(v *alert.Status) *AlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOpenKey sets the "open_key" field.
func (_u *AlertUpdate) SetOpenKey(v string) *AlertUpdate {
	_u.mutation.SetOpenKey(v)
	return _u
}

// SetNillableOpenKey sets the "open_key" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableOpenKey(v *string) *AlertUpdate {
	if v != nil {
		_u.SetOpenKey(*v)
	}
	return _u
}

// ClearOpenKey clears the value of the "open_key" field.
func (_u *AlertUpdate) ClearOpenKey() *AlertUpdate {
	_u.mutation.ClearOpenKey()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *AlertUpdate) SetResolvedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableResolvedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *AlertUpdate) ClearResolvedAt() *AlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Condition(); ok {
		if err := alert.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Alert.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := alert.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Alert.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(alert.FieldMemberID, field.TypeUUID, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(alert.FieldMemberID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(alert.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(alert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpenKey(); ok {
		_spec.SetField(alert.FieldOpenKey, field.TypeString, value)
	}
	if _u.mutation.OpenKeyCleared() {
		_spec.ClearField(alert.FieldOpenKey, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(alert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(alert.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertUpdateOne) SetUpdatedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *AlertUpdateOne) SetMemberID(v uuid.UUID) *AlertUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableMemberID(v *uuid.UUID) *AlertUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *AlertUpdateOne) ClearMemberID() *AlertUpdateOne {
	_u.mutation.ClearMemberID()
	return _u
}

// SetCondition sets the "condition" field.
func (_u *AlertUpdateOne) SetCondition(v alert.Condition) *AlertUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableCondition(v *alert.Condition) *AlertUpdateOne {
	if v != nil {
		_u.SetCondition(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdateOne) SetSeverity(v alert.Severity) *AlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeverity(v *alert.Severity) *AlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AlertUpdateOne) SetMessage(v string) *AlertUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableMessage(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdateOne) SetStatus(v alert.Status) *AlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStatus(v *alert.Status) *AlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOpenKey sets the "open_key" field.
func (_u *AlertUpdateOne) SetOpenKey(v string) *AlertUpdateOne {
	_u.mutation.SetOpenKey(v)
	return _u
}

// SetNillableOpenKey sets the "open_key" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableOpenKey(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetOpenKey(*v)
	}
	return _u
}

// ClearOpenKey clears the value of the "open_key" field.
func (_u *AlertUpdateOne) ClearOpenKey() *AlertUpdateOne {
	_u.mutation.ClearOpenKey()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *AlertUpdateOne) SetResolvedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableResolvedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *AlertUpdateOne) ClearResolvedAt() *AlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Condition(); ok {
		if err := alert.ConditionValidator(v); err != nil {
			return &ValidationError{Name: "condition", err: fmt.Errorf(`ent: validator failed for field "Alert.condition": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := alert.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Alert.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(alert.FieldMemberID, field.TypeUUID, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(alert.FieldMemberID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(alert.FieldCondition, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(alert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpenKey(); ok {
		_spec.SetField(alert.FieldOpenKey, field.TypeString, value)
	}
	if _u.mutation.OpenKeyCleared() {
		_spec.ClearField(alert.FieldOpenKey, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(alert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(alert.FieldResolvedAt, field.TypeTime)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
