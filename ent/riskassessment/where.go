// Code generated by ent, DO NOT EDIT.

package riskassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldMemberID, v))
}

// PredictedAt applies equality check predicate on the "predicted_at" field. It's identical to PredictedAtEQ.
func PredictedAt(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldPredictedAt, v))
}

// ChurnProbability applies equality check predicate on the "churn_probability" field. It's identical to ChurnProbabilityEQ.
func ChurnProbability(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldChurnProbability, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v uuid.UUID) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldMemberID, v))
}

// PredictedAtEQ applies the EQ predicate on the "predicted_at" field.
func PredictedAtEQ(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldPredictedAt, v))
}

// PredictedAtNEQ applies the NEQ predicate on the "predicted_at" field.
func PredictedAtNEQ(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldPredictedAt, v))
}

// PredictedAtIn applies the In predicate on the "predicted_at" field.
func PredictedAtIn(vs ...time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldPredictedAt, vs...))
}

// PredictedAtNotIn applies the NotIn predicate on the "predicted_at" field.
func PredictedAtNotIn(vs ...time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldPredictedAt, vs...))
}

// PredictedAtGT applies the GT predicate on the "predicted_at" field.
func PredictedAtGT(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldPredictedAt, v))
}

// PredictedAtGTE applies the GTE predicate on the "predicted_at" field.
func PredictedAtGTE(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldPredictedAt, v))
}

// PredictedAtLT applies the LT predicate on the "predicted_at" field.
func PredictedAtLT(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldPredictedAt, v))
}

// PredictedAtLTE applies the LTE predicate on the "predicted_at" field.
func PredictedAtLTE(v time.Time) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldPredictedAt, v))
}

// ChurnProbabilityEQ applies the EQ predicate on the "churn_probability" field.
func ChurnProbabilityEQ(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldChurnProbability, v))
}

// ChurnProbabilityNEQ applies the NEQ predicate on the "churn_probability" field.
func ChurnProbabilityNEQ(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldChurnProbability, v))
}

// ChurnProbabilityIn applies the In predicate on the "churn_probability" field.
func ChurnProbabilityIn(vs ...float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldChurnProbability, vs...))
}

// ChurnProbabilityNotIn applies the NotIn predicate on the "churn_probability" field.
func ChurnProbabilityNotIn(vs ...float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldChurnProbability, vs...))
}

// ChurnProbabilityGT applies the GT predicate on the "churn_probability" field.
func ChurnProbabilityGT(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldChurnProbability, v))
}

// ChurnProbabilityGTE applies the GTE predicate on the "churn_probability" field.
func ChurnProbabilityGTE(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldChurnProbability, v))
}

// ChurnProbabilityLT applies the LT predicate on the "churn_probability" field.
func ChurnProbabilityLT(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldChurnProbability, v))
}

// ChurnProbabilityLTE applies the LTE predicate on the "churn_probability" field.
func ChurnProbabilityLTE(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldChurnProbability, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldLTE(FieldConfidence, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.FieldNotIn(FieldTier, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RiskAssessment) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RiskAssessment) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RiskAssessment) predicate.RiskAssessment {
	return predicate.RiskAssessment(sql.NotPredicates(p))
}
