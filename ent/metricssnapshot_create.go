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
	"github.com/gymops/memberpulse/ent/metricssnapshot"
)

// MetricsSnapshotCreate is the builder for creating a MetricsSnapshot entity.
type MetricsSnapshotCreate struct {
	config
	mutation *MetricsSnapshotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MetricsSnapshotCreate) SetCreatedAt(v time.Time) *MetricsSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableCreatedAt(v *time.Time) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MetricsSnapshotCreate) SetUpdatedAt(v time.Time) *MetricsSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *MetricsSnapshotCreate) SetEvaluatedAt(v time.Time) *MetricsSnapshotCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *MetricsSnapshotCreate) SetAccuracy(v float64) *MetricsSnapshotCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetPrecision sets the "precision" field.
func (_c *MetricsSnapshotCreate) SetPrecision(v float64) *MetricsSnapshotCreate {
	_c.mutation.SetPrecision(v)
	return _c
}

// SetRecall sets the "recall" field.
func (_c *MetricsSnapshotCreate) SetRecall(v float64) *MetricsSnapshotCreate {
	_c.mutation.SetRecall(v)
	return _c
}

// SetF1 sets the "f1" field.
func (_c *MetricsSnapshotCreate) SetF1(v float64) *MetricsSnapshotCreate {
	_c.mutation.SetF1(v)
	return _c
}

// SetFeatureImportance sets the "feature_importance" field.
func (_c *MetricsSnapshotCreate) SetFeatureImportance(v map[string]float64) *MetricsSnapshotCreate {
	_c.mutation.SetFeatureImportance(v)
	return _c
}

// SetTotalEvaluated sets the "total_evaluated" field.
func (_c *MetricsSnapshotCreate) SetTotalEvaluated(v int) *MetricsSnapshotCreate {
	_c.mutation.SetTotalEvaluated(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MetricsSnapshotCreate) SetID(v uuid.UUID) *MetricsSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MetricsSnapshotCreate) SetNillableID(v *uuid.UUID) *MetricsSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MetricsSnapshotMutation object of the builder.
func (_c *MetricsSnapshotCreate) Mutation() *MetricsSnapshotMutation {
	return _c.mutation
}

// Save creates the MetricsSnapshot in the database.
func (_c *MetricsSnapshotCreate) Save(ctx context.Context) (*MetricsSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricsSnapshotCreate) SaveX(ctx context.Context) *MetricsSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetricsSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := metricssnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := metricssnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := metricssnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricsSnapshotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MetricsSnapshot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MetricsSnapshot.updated_at"`)}
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		return &ValidationError{Name: "evaluated_at", err: errors.New(`ent: missing required field "MetricsSnapshot.evaluated_at"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "MetricsSnapshot.accuracy"`)}
	}
	if v, ok := _c.mutation.Accuracy(); ok {
		if err := metricssnapshot.AccuracyValidator(v); err != nil {
			return &ValidationError{Name: "accuracy", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.accuracy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Precision(); !ok {
		return &ValidationError{Name: "precision", err: errors.New(`ent: missing required field "MetricsSnapshot.precision"`)}
	}
	if v, ok := _c.mutation.Precision(); ok {
		if err := metricssnapshot.PrecisionValidator(v); err != nil {
			return &ValidationError{Name: "precision", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.precision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recall(); !ok {
		return &ValidationError{Name: "recall", err: errors.New(`ent: missing required field "MetricsSnapshot.recall"`)}
	}
	if v, ok := _c.mutation.Recall(); ok {
		if err := metricssnapshot.RecallValidator(v); err != nil {
			return &ValidationError{Name: "recall", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.recall": %w`, err)}
		}
	}
	if _, ok := _c.mutation.F1(); !ok {
		return &ValidationError{Name: "f1", err: errors.New(`ent: missing required field "MetricsSnapshot.f1"`)}
	}
	if v, ok := _c.mutation.F1(); ok {
		if err := metricssnapshot.F1Validator(v); err != nil {
			return &ValidationError{Name: "f1", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.f1": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureImportance(); !ok {
		return &ValidationError{Name: "feature_importance", err: errors.New(`ent: missing required field "MetricsSnapshot.feature_importance"`)}
	}
	if _, ok := _c.mutation.TotalEvaluated(); !ok {
		return &ValidationError{Name: "total_evaluated", err: errors.New(`ent: missing required field "MetricsSnapshot.total_evaluated"`)}
	}
	if v, ok := _c.mutation.TotalEvaluated(); ok {
		if err := metricssnapshot.TotalEvaluatedValidator(v); err != nil {
			return &ValidationError{Name: "total_evaluated", err: fmt.Errorf(`ent: validator failed for field "MetricsSnapshot.total_evaluated": %w`, err)}
		}
	}
	return nil
}

func (_c *MetricsSnapshotCreate) sqlSave(ctx context.Context) (*MetricsSnapshot, error) {
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

func (_c *MetricsSnapshotCreate) createSpec() (*MetricsSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &MetricsSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metricssnapshot.Table, sqlgraph.NewFieldSpec(metricssnapshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(metricssnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(metricssnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(metricssnapshot.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(metricssnapshot.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.Precision(); ok {
		_spec.SetField(metricssnapshot.FieldPrecision, field.TypeFloat64, value)
		_node.Precision = value
	}
	if value, ok := _c.mutation.Recall(); ok {
		_spec.SetField(metricssnapshot.FieldRecall, field.TypeFloat64, value)
		_node.Recall = value
	}
	if value, ok := _c.mutation.F1(); ok {
		_spec.SetField(metricssnapshot.FieldF1, field.TypeFloat64, value)
		_node.F1 = value
	}
	if value, ok := _c.mutation.FeatureImportance(); ok {
		_spec.SetField(metricssnapshot.FieldFeatureImportance, field.TypeJSON, value)
		_node.FeatureImportance = value
	}
	if value, ok := _c.mutation.TotalEvaluated(); ok {
		_spec.SetField(metricssnapshot.FieldTotalEvaluated, field.TypeInt, value)
		_node.TotalEvaluated = value
	}
	return _node, _spec
}

// MetricsSnapshotCreateBulk is the builder for creating many MetricsSnapshot entities in bulk.
type MetricsSnapshotCreateBulk struct {
	config
	err      error
	builders []*MetricsSnapshotCreate
}

// Save creates the MetricsSnapshot entities in the database.
func (_c *MetricsSnapshotCreateBulk) Save(ctx context.Context) ([]*MetricsSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetricsSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricsSnapshotMutation)
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
func (_c *MetricsSnapshotCreateBulk) SaveX(ctx context.Context) []*MetricsSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
