// Code generated by ent, DO NOT EDIT.

package metricssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldEvaluatedAt, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldAccuracy, v))
}

// Precision applies equality check predicate on the "precision" field. It's identical to PrecisionEQ.
func Precision(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldPrecision, v))
}

// Recall applies equality check predicate on the "recall" field. It's identical to RecallEQ.
func Recall(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldRecall, v))
}

// F1 applies equality check predicate on the "f1" field. It's identical to F1EQ.
func F1(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldF1, v))
}

// TotalEvaluated applies equality check predicate on the "total_evaluated" field. It's identical to TotalEvaluatedEQ.
func TotalEvaluated(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldTotalEvaluated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldEvaluatedAt, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldAccuracy, v))
}

// PrecisionEQ applies the EQ predicate on the "precision" field.
func PrecisionEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldPrecision, v))
}

// PrecisionNEQ applies the NEQ predicate on the "precision" field.
func PrecisionNEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldPrecision, v))
}

// PrecisionIn applies the In predicate on the "precision" field.
func PrecisionIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldPrecision, vs...))
}

// PrecisionNotIn applies the NotIn predicate on the "precision" field.
func PrecisionNotIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldPrecision, vs...))
}

// PrecisionGT applies the GT predicate on the "precision" field.
func PrecisionGT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldPrecision, v))
}

// PrecisionGTE applies the GTE predicate on the "precision" field.
func PrecisionGTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldPrecision, v))
}

// PrecisionLT applies the LT predicate on the "precision" field.
func PrecisionLT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldPrecision, v))
}

// PrecisionLTE applies the LTE predicate on the "precision" field.
func PrecisionLTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldPrecision, v))
}

// RecallEQ applies the EQ predicate on the "recall" field.
func RecallEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldRecall, v))
}

// RecallNEQ applies the NEQ predicate on the "recall" field.
func RecallNEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldRecall, v))
}

// RecallIn applies the In predicate on the "recall" field.
func RecallIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldRecall, vs...))
}

// RecallNotIn applies the NotIn predicate on the "recall" field.
func RecallNotIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldRecall, vs...))
}

// RecallGT applies the GT predicate on the "recall" field.
func RecallGT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldRecall, v))
}

// RecallGTE applies the GTE predicate on the "recall" field.
func RecallGTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldRecall, v))
}

// RecallLT applies the LT predicate on the "recall" field.
func RecallLT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldRecall, v))
}

// RecallLTE applies the LTE predicate on the "recall" field.
func RecallLTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldRecall, v))
}

// F1EQ applies the EQ predicate on the "f1" field.
func F1EQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldF1, v))
}

// F1NEQ applies the NEQ predicate on the "f1" field.
func F1NEQ(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldF1, v))
}

// F1In applies the In predicate on the "f1" field.
func F1In(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldF1, vs...))
}

// F1NotIn applies the NotIn predicate on the "f1" field.
func F1NotIn(vs ...float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldF1, vs...))
}

// F1GT applies the GT predicate on the "f1" field.
func F1GT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldF1, v))
}

// F1GTE applies the GTE predicate on the "f1" field.
func F1GTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldF1, v))
}

// F1LT applies the LT predicate on the "f1" field.
func F1LT(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldF1, v))
}

// F1LTE applies the LTE predicate on the "f1" field.
func F1LTE(v float64) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldF1, v))
}

// TotalEvaluatedEQ applies the EQ predicate on the "total_evaluated" field.
func TotalEvaluatedEQ(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldEQ(FieldTotalEvaluated, v))
}

// TotalEvaluatedNEQ applies the NEQ predicate on the "total_evaluated" field.
func TotalEvaluatedNEQ(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNEQ(FieldTotalEvaluated, v))
}

// TotalEvaluatedIn applies the In predicate on the "total_evaluated" field.
func TotalEvaluatedIn(vs ...int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldIn(FieldTotalEvaluated, vs...))
}

// TotalEvaluatedNotIn applies the NotIn predicate on the "total_evaluated" field.
func TotalEvaluatedNotIn(vs ...int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldNotIn(FieldTotalEvaluated, vs...))
}

// TotalEvaluatedGT applies the GT predicate on the "total_evaluated" field.
func TotalEvaluatedGT(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGT(FieldTotalEvaluated, v))
}

// TotalEvaluatedGTE applies the GTE predicate on the "total_evaluated" field.
func TotalEvaluatedGTE(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldGTE(FieldTotalEvaluated, v))
}

// TotalEvaluatedLT applies the LT predicate on the "total_evaluated" field.
func TotalEvaluatedLT(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLT(FieldTotalEvaluated, v))
}

// TotalEvaluatedLTE applies the LTE predicate on the "total_evaluated" field.
func TotalEvaluatedLTE(v int) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.FieldLTE(FieldTotalEvaluated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetricsSnapshot) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetricsSnapshot) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetricsSnapshot) predicate.MetricsSnapshot {
	return predicate.MetricsSnapshot(sql.NotPredicates(p))
}
