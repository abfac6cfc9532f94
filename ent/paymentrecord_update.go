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
	"github.com/gymops/memberpulse/ent/paymentrecord"
	"github.com/gymops/memberpulse/ent/predicate"
)

// PaymentRecordUpdate is the builder for updating PaymentRecord entities.
type PaymentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdate) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRecordUpdate) SetUpdatedAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *PaymentRecordUpdate) SetAmountCents(v int64) *PaymentRecordUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableAmountCents(v *int64) *PaymentRecordUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *PaymentRecordUpdate) AddAmountCents(v int64) *PaymentRecordUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PaymentRecordUpdate) SetCurrency(v string) *PaymentRecordUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableCurrency(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PaymentRecordUpdate) SetDueDate(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableDueDate(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetPaidDate sets the "paid_date" field.
func (_u *PaymentRecordUpdate) SetPaidDate(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetPaidDate(v)
	return _u
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillablePaidDate(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetPaidDate(*v)
	}
	return _u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (_u *PaymentRecordUpdate) ClearPaidDate() *PaymentRecordUpdate {
	_u.mutation.ClearPaidDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentRecordUpdate) SetStatus(v paymentrecord.Status) *PaymentRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableStatus(v *paymentrecord.Status) *PaymentRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdate) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdate) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := paymentrecord.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(paymentrecord.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(paymentrecord.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(paymentrecord.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(paymentrecord.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PaidDate(); ok {
		_spec.SetField(paymentrecord.FieldPaidDate, field.TypeTime, value)
	}
	if _u.mutation.PaidDateCleared() {
		_spec.ClearField(paymentrecord.FieldPaidDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentrecord.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentRecordUpdateOne is the builder for updating a single PaymentRecord entity.
type PaymentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRecordUpdateOne) SetUpdatedAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *PaymentRecordUpdateOne) SetAmountCents(v int64) *PaymentRecordUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableAmountCents(v *int64) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *PaymentRecordUpdateOne) AddAmountCents(v int64) *PaymentRecordUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PaymentRecordUpdateOne) SetCurrency(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableCurrency(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PaymentRecordUpdateOne) SetDueDate(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableDueDate(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetPaidDate sets the "paid_date" field.
func (_u *PaymentRecordUpdateOne) SetPaidDate(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetPaidDate(v)
	return _u
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillablePaidDate(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetPaidDate(*v)
	}
	return _u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (_u *PaymentRecordUpdateOne) ClearPaidDate() *PaymentRecordUpdateOne {
	_u.mutation.ClearPaidDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentRecordUpdateOne) SetStatus(v paymentrecord.Status) *PaymentRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableStatus(v *paymentrecord.Status) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdateOne) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdateOne) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentRecordUpdateOne) Select(field string, fields ...string) *PaymentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentRecord entity.
func (_u *PaymentRecordUpdateOne) Save(ctx context.Context) (*PaymentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) SaveX(ctx context.Context) *PaymentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := paymentrecord.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentRecordUpdateOne) sqlSave(ctx context.Context) (_node *PaymentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentrecord.FieldID)
		for _, f := range fields {
			if !paymentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentrecord.FieldID {
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
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(paymentrecord.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(paymentrecord.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(paymentrecord.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(paymentrecord.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PaidDate(); ok {
		_spec.SetField(paymentrecord.FieldPaidDate, field.TypeTime, value)
	}
	if _u.mutation.PaidDateCleared() {
		_spec.ClearField(paymentrecord.FieldPaidDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentrecord.FieldStatus, field.TypeEnum, value)
	}
	_node = &PaymentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
