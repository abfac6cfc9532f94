// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gymops/memberpulse/ent/predicate"
	"github.com/gymops/memberpulse/ent/riskassessment"
	"github.com/gymops/memberpulse/internal/types"
)

// RiskAssessmentUpdate is the builder for updating RiskAssessment entities.
type RiskAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *RiskAssessmentMutation
}

// Where appends a list predicates to the RiskAssessmentUpdate builder.
func (_u *RiskAssessmentUpdate) Where(ps ...predicate.RiskAssessment) *RiskAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RiskAssessmentUpdate) SetUpdatedAt(v time.Time) *RiskAssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChurnProbability sets the "churn_probability" field.
func (_u *RiskAssessmentUpdate) SetChurnProbability(v float64) *RiskAssessmentUpdate {
	_u.mutation.ResetChurnProbability()
	_u.mutation.SetChurnProbability(v)
	return _u
}

// SetNillableChurnProbability sets the "churn_probability" field if the given value is not nil.
func (_u *RiskAssessmentUpdate) SetNillableChurnProbability(v *float64) *RiskAssessmentUpdate {
	if v != nil {
		_u.SetChurnProbability(*v)
	}
	return _u
}

// AddChurnProbability adds value to the "churn_probability" field.
func (_u *RiskAssessmentUpdate) AddChurnProbability(v float64) *RiskAssessmentUpdate {
	_u.mutation.AddChurnProbability(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RiskAssessmentUpdate) SetConfidence(v float64) *RiskAssessmentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RiskAssessmentUpdate) SetNillableConfidence(v *float64) *RiskAssessmentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RiskAssessmentUpdate) AddConfidence(v float64) *RiskAssessmentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *RiskAssessmentUpdate) SetTier(v riskassessment.Tier) *RiskAssessmentUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *RiskAssessmentUpdate) SetNillableTier(v *riskassessment.Tier) *RiskAssessmentUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *RiskAssessmentUpdate) SetFactors(v []types.RiskFactor) *RiskAssessmentUpdate {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *RiskAssessmentUpdate) AppendFactors(v []types.RiskFactor) *RiskAssessmentUpdate {
	_u.mutation.AppendFactors(v)
	return _u
}

// Mutation returns the RiskAssessmentMutation object of the builder.
func (_u *RiskAssessmentUpdate) Mutation() *RiskAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskAssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RiskAssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := riskassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskAssessmentUpdate) check() error {
	if v, ok := _u.mutation.ChurnProbability(); ok {
		if err := riskassessment.ChurnProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "churn_probability", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.churn_probability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := riskassessment.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := riskassessment.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskassessment.Table, riskassessment.Columns, sqlgraph.NewFieldSpec(riskassessment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(riskassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChurnProbability(); ok {
		_spec.SetField(riskassessment.FieldChurnProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChurnProbability(); ok {
		_spec.AddField(riskassessment.FieldChurnProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(riskassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(riskassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(riskassessment.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(riskassessment.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskassessment.FieldFactors, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskAssessmentUpdateOne is the builder for updating a single RiskAssessment entity.
type RiskAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskAssessmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RiskAssessmentUpdateOne) SetUpdatedAt(v time.Time) *RiskAssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChurnProbability sets the "churn_probability" field.
func (_u *RiskAssessmentUpdateOne) SetChurnProbability(v float64) *RiskAssessmentUpdateOne {
	_u.mutation.ResetChurnProbability()
	_u.mutation.SetChurnProbability(v)
	return _u
}

// SetNillableChurnProbability sets the "churn_probability" field if the given value is not nil.
func (_u *RiskAssessmentUpdateOne) SetNillableChurnProbability(v *float64) *RiskAssessmentUpdateOne {
	if v != nil {
		_u.SetChurnProbability(*v)
	}
	return _u
}

// AddChurnProbability adds value to the "churn_probability" field.
func (_u *RiskAssessmentUpdateOne) AddChurnProbability(v float64) *RiskAssessmentUpdateOne {
	_u.mutation.AddChurnProbability(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RiskAssessmentUpdateOne) SetConfidence(v float64) *RiskAssessmentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RiskAssessmentUpdateOne) SetNillableConfidence(v *float64) *RiskAssessmentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RiskAssessmentUpdateOne) AddConfidence(v float64) *RiskAssessmentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *RiskAssessmentUpdateOne) SetTier(v riskassessment.Tier) *RiskAssessmentUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *RiskAssessmentUpdateOne) SetNillableTier(v *riskassessment.Tier) *RiskAssessmentUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *RiskAssessmentUpdateOne) SetFactors(v []types.RiskFactor) *RiskAssessmentUpdateOne {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *RiskAssessmentUpdateOne) AppendFactors(v []types.RiskFactor) *RiskAssessmentUpdateOne {
	_u.mutation.AppendFactors(v)
	return _u
}

// Mutation returns the RiskAssessmentMutation object of the builder.
func (_u *RiskAssessmentUpdateOne) Mutation() *RiskAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the RiskAssessmentUpdate builder.
func (_u *RiskAssessmentUpdateOne) Where(ps ...predicate.RiskAssessment) *RiskAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskAssessmentUpdateOne) Select(field string, fields ...string) *RiskAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RiskAssessment entity.
func (_u *RiskAssessmentUpdateOne) Save(ctx context.Context) (*RiskAssessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskAssessmentUpdateOne) SaveX(ctx context.Context) *RiskAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RiskAssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := riskassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.ChurnProbability(); ok {
		if err := riskassessment.ChurnProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "churn_probability", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.churn_probability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := riskassessment.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := riskassessment.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "RiskAssessment.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *RiskAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskassessment.Table, riskassessment.Columns, sqlgraph.NewFieldSpec(riskassessment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RiskAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, riskassessment.FieldID)
		for _, f := range fields {
			if !riskassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != riskassessment.FieldID {
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
		_spec.SetField(riskassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChurnProbability(); ok {
		_spec.SetField(riskassessment.FieldChurnProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChurnProbability(); ok {
		_spec.AddField(riskassessment.FieldChurnProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(riskassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(riskassessment.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(riskassessment.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(riskassessment.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskassessment.FieldFactors, value)
		})
	}
	_node = &RiskAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
