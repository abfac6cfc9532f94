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
	"github.com/gymops/memberpulse/ent/riskassessment"
	"github.com/gymops/memberpulse/internal/types"
)

// RiskAssessmentCreate is the builder for creating a RiskAssessment entity.
type RiskAssessmentCreate struct {
	config
	mutation *RiskAssessmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RiskAssessmentCreate) SetCreatedAt(v time.Time) *RiskAssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RiskAssessmentCreate) SetNillableCreatedAt(v *time.Time) *RiskAssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RiskAssessmentCreate) SetUpdatedAt(v time.Time) *RiskAssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RiskAssessmentCreate) SetNillableUpdatedAt(v *time.Time) *RiskAssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *RiskAssessmentCreate) SetMemberID(v uuid.UUID) *RiskAssessmentCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetPredictedAt sets the "predicted_at" field.
func (_c *RiskAssessmentCreate) SetPredictedAt(v time.Time) *RiskAssessmentCreate {
	_c.mutation.SetPredictedAt(v)
	return _c
}

// SetChurnProbability sets the "churn_probability" field.
func (_c *RiskAssessmentCreate) SetChurnProbability(v float64) *RiskAssessmentCreate {
	_c.mutation.SetChurnProbability(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RiskAssessmentCreate) SetConfidence(v float64) *RiskAssessmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *RiskAssessmentCreate) SetTier(v riskassessment.Tier) *RiskAssessmentCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetFactors sets the "factors" field.
func (_c *RiskAssessmentCreate) SetFactors(v []types.RiskFactor) *RiskAssessmentCreate {
	_c.mutation.SetFactors(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RiskAssessmentCreate) SetID(v uuid.UUID) *RiskAssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RiskAssessmentCreate) SetNillableID(v *uuid.UUID) *RiskAssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RiskAssessmentMutation object of the builder.
func (_c *RiskAssessmentCreate) Mutation() *RiskAssessmentMutation {
	return _c.mutation
}

// Save creates the RiskAssessment in the database.
func (_c *RiskAssessmentCreate) Save(ctx context.Context) (*RiskAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskAssessmentCreate) SaveX(ctx context.Context) *RiskAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskAssessmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := riskassessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := riskassessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := riskassessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskAssessmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RiskAssessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RiskAssessment.updated_at"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "RiskAssessment.member_id"`)}
	}
	if _, ok := _c.mutation.PredictedAt(); !ok {
		return &ValidationError{Name: "predicted_at", err: errors.New(`ent: missing required field "RiskAssessment.predicted_at"`)}
	}
	if _, ok := _c.mutation.ChurnProbability(); !ok {
		return &ValidationError{Name: "churn_probability", err: errors.New(`ent: missing required field "RiskAssessment.churn_probability"`)}
	}
	if v, ok := _c.mutation.ChurnProbability(); ok {
		if err := riskassessment.ChurnProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "churn_probability", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.churn_probability": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "RiskAssessment.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := riskassessment.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "RiskAssessment.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := riskassessment.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Factors(); !ok {
		return &ValidationError{Name: "factors", err: errors.New(`ent: missing required field "RiskAssessment.factors"`)}
	}
	return nil
}

func (_c *RiskAssessmentCreate) sqlSave(ctx context.Context) (*RiskAssessment, error) {
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

func (_c *RiskAssessmentCreate) createSpec() (*RiskAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &RiskAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(riskassessment.Table, sqlgraph.NewFieldSpec(riskassessment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(riskassessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(riskassessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(riskassessment.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.PredictedAt(); ok {
		_spec.SetField(riskassessment.FieldPredictedAt, field.TypeTime, value)
		_node.PredictedAt = value
	}
	if value, ok := _c.mutation.ChurnProbability(); ok {
		_spec.SetField(riskassessment.FieldChurnProbability, field.TypeFloat64, value)
		_node.ChurnProbability = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(riskassessment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(riskassessment.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Factors(); ok {
		_spec.SetField(riskassessment.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	return _node, _spec
}

// RiskAssessmentCreateBulk is the builder for creating many RiskAssessment entities in bulk.
type RiskAssessmentCreateBulk struct {
	config
	err      error
	builders []*RiskAssessmentCreate
}

// Save creates the RiskAssessment entities in the database.
func (_c *RiskAssessmentCreateBulk) Save(ctx context.Context) ([]*RiskAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RiskAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskAssessmentMutation)
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
func (_c *RiskAssessmentCreateBulk) SaveX(ctx context.Context) []*RiskAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
