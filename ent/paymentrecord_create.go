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
	"github.com/gymops/memberpulse/ent/paymentrecord"
)

// PaymentRecordCreate is the builder for creating a PaymentRecord entity.
type PaymentRecordCreate struct {
	config
	mutation *PaymentRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentRecordCreate) SetCreatedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableCreatedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentRecordCreate) SetUpdatedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableUpdatedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *PaymentRecordCreate) SetMemberID(v uuid.UUID) *PaymentRecordCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *PaymentRecordCreate) SetAmountCents(v int64) *PaymentRecordCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *PaymentRecordCreate) SetCurrency(v string) *PaymentRecordCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableCurrency(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *PaymentRecordCreate) SetDueDate(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetPaidDate sets the "paid_date" field.
func (_c *PaymentRecordCreate) SetPaidDate(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetPaidDate(v)
	return _c
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillablePaidDate(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetPaidDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PaymentRecordCreate) SetStatus(v paymentrecord.Status) *PaymentRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableStatus(v *paymentrecord.Status) *PaymentRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentRecordCreate) SetID(v uuid.UUID) *PaymentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableID(v *uuid.UUID) *PaymentRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_c *PaymentRecordCreate) Mutation() *PaymentRecordMutation {
	return _c.mutation
}

// Save creates the PaymentRecord in the database.
func (_c *PaymentRecordCreate) Save(ctx context.Context) (*PaymentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentRecordCreate) SaveX(ctx context.Context) *PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paymentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := paymentrecord.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := paymentrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paymentrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaymentRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "PaymentRecord.member_id"`)}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`ent: missing required field "PaymentRecord.amount_cents"`)}
	}
	if v, ok := _c.mutation.AmountCents(); ok {
		if err := paymentrecord.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.amount_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "PaymentRecord.currency"`)}
	}
	if _, ok := _c.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "PaymentRecord.due_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PaymentRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := paymentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_c *PaymentRecordCreate) sqlSave(ctx context.Context) (*PaymentRecord, error) {
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

func (_c *PaymentRecordCreate) createSpec() (*PaymentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentrecord.Table, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(paymentrecord.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(paymentrecord.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(paymentrecord.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(paymentrecord.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.PaidDate(); ok {
		_spec.SetField(paymentrecord.FieldPaidDate, field.TypeTime, value)
		_node.PaidDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(paymentrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// PaymentRecordCreateBulk is the builder for creating many PaymentRecord entities in bulk.
type PaymentRecordCreateBulk struct {
	config
	err      error
	builders []*PaymentRecordCreate
}

// Save creates the PaymentRecord entities in the database.
func (_c *PaymentRecordCreateBulk) Save(ctx context.Context) ([]*PaymentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentRecordMutation)
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
func (_c *PaymentRecordCreateBulk) SaveX(ctx context.Context) []*PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
