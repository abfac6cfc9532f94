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
	"github.com/gymops/memberpulse/ent/retentionaction"
)

// RetentionActionCreate is the builder for creating a RetentionAction entity.
type RetentionActionCreate struct {
	config
	mutation *RetentionActionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RetentionActionCreate) SetCreatedAt(v time.Time) *RetentionActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RetentionActionCreate) SetNillableCreatedAt(v *time.Time) *RetentionActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RetentionActionCreate) SetUpdatedAt(v time.Time) *RetentionActionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RetentionActionCreate) SetNillableUpdatedAt(v *time.Time) *RetentionActionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *RetentionActionCreate) SetMemberID(v uuid.UUID) *RetentionActionCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *RetentionActionCreate) SetAssessmentID(v uuid.UUID) *RetentionActionCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_c *RetentionActionCreate) SetNillableAssessmentID(v *uuid.UUID) *RetentionActionCreate {
	if v != nil {
		_c.SetAssessmentID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *RetentionActionCreate) SetType(v retentionaction.Type) *RetentionActionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RetentionActionCreate) SetDescription(v string) *RetentionActionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RetentionActionCreate) SetStatus(v retentionaction.Status) *RetentionActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RetentionActionCreate) SetNillableStatus(v *retentionaction.Status) *RetentionActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RetentionActionCreate) SetPriority(v int) *RetentionActionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *RetentionActionCreate) SetCreatedBy(v string) *RetentionActionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RetentionActionCreate) SetCompletedAt(v time.Time) *RetentionActionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RetentionActionCreate) SetNillableCompletedAt(v *time.Time) *RetentionActionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RetentionActionCreate) SetID(v uuid.UUID) *RetentionActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RetentionActionCreate) SetNillableID(v *uuid.UUID) *RetentionActionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RetentionActionMutation object of the builder.
func (_c *RetentionActionCreate) Mutation() *RetentionActionMutation {
	return _c.mutation
}

// Save creates the RetentionAction in the database.
func (_c *RetentionActionCreate) Save(ctx context.Context) (*RetentionAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RetentionActionCreate) SaveX(ctx context.Context) *RetentionAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RetentionActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RetentionActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RetentionActionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := retentionaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := retentionaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := retentionaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := retentionaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RetentionActionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RetentionAction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RetentionAction.updated_at"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "RetentionAction.member_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "RetentionAction.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := retentionaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "RetentionAction.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := retentionaction.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RetentionAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := retentionaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "RetentionAction.priority"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "RetentionAction.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := retentionaction.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "RetentionAction.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *RetentionActionCreate) sqlSave(ctx context.Context) (*RetentionAction, error) {
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

func (_c *RetentionActionCreate) createSpec() (*RetentionAction, *sqlgraph.CreateSpec) {
	var (
		_node = &RetentionAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(retentionaction.Table, sqlgraph.NewFieldSpec(retentionaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(retentionaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(retentionaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(retentionaction.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(retentionaction.FieldAssessmentID, field.TypeUUID, value)
		_node.AssessmentID = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(retentionaction.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(retentionaction.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(retentionaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(retentionaction.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(retentionaction.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(retentionaction.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// RetentionActionCreateBulk is the builder for creating many RetentionAction entities in bulk.
type RetentionActionCreateBulk struct {
	config
	err      error
	builders []*RetentionActionCreate
}

// Save creates the RetentionAction entities in the database.
func (_c *RetentionActionCreateBulk) Save(ctx context.Context) ([]*RetentionAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RetentionAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RetentionActionMutation)
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
func (_c *RetentionActionCreateBulk) SaveX(ctx context.Context) []*RetentionAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RetentionActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RetentionActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
