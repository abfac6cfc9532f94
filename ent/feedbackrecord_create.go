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
	"github.com/gymops/memberpulse/ent/feedbackrecord"
)

// FeedbackRecordCreate is the builder for creating a FeedbackRecord entity.
type FeedbackRecordCreate struct {
	config
	mutation *FeedbackRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackRecordCreate) SetCreatedAt(v time.Time) *FeedbackRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackRecordCreate) SetNillableCreatedAt(v *time.Time) *FeedbackRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FeedbackRecordCreate) SetUpdatedAt(v time.Time) *FeedbackRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FeedbackRecordCreate) SetNillableUpdatedAt(v *time.Time) *FeedbackRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *FeedbackRecordCreate) SetMemberID(v uuid.UUID) *FeedbackRecordCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *FeedbackRecordCreate) SetRating(v int) *FeedbackRecordCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *FeedbackRecordCreate) SetComment(v string) *FeedbackRecordCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *FeedbackRecordCreate) SetNillableComment(v *string) *FeedbackRecordCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *FeedbackRecordCreate) SetSubmittedAt(v time.Time) *FeedbackRecordCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackRecordCreate) SetID(v uuid.UUID) *FeedbackRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FeedbackRecordCreate) SetNillableID(v *uuid.UUID) *FeedbackRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FeedbackRecordMutation object of the builder.
func (_c *FeedbackRecordCreate) Mutation() *FeedbackRecordMutation {
	return _c.mutation
}

// Save creates the FeedbackRecord in the database.
func (_c *FeedbackRecordCreate) Save(ctx context.Context) (*FeedbackRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackRecordCreate) SaveX(ctx context.Context) *FeedbackRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbackrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := feedbackrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := feedbackrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FeedbackRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "FeedbackRecord.member_id"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "FeedbackRecord.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := feedbackrecord.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackRecord.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "FeedbackRecord.submitted_at"`)}
	}
	return nil
}

func (_c *FeedbackRecordCreate) sqlSave(ctx context.Context) (*FeedbackRecord, error) {
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

func (_c *FeedbackRecordCreate) createSpec() (*FeedbackRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackrecord.Table, sqlgraph.NewFieldSpec(feedbackrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(feedbackrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(feedbackrecord.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(feedbackrecord.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(feedbackrecord.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(feedbackrecord.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	return _node, _spec
}

// FeedbackRecordCreateBulk is the builder for creating many FeedbackRecord entities in bulk.
type FeedbackRecordCreateBulk struct {
	config
	err      error
	builders []*FeedbackRecordCreate
}

// Save creates the FeedbackRecord entities in the database.
func (_c *FeedbackRecordCreateBulk) Save(ctx context.Context) ([]*FeedbackRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackRecordMutation)
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
func (_c *FeedbackRecordCreateBulk) SaveX(ctx context.Context) []*FeedbackRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
