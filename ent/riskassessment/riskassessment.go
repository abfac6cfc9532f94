// Code generated by ent, DO NOT EDIT.

package riskassessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the riskassessment type in the database.
	Label = "risk_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldPredictedAt holds the string denoting the predicted_at field in the database.
	FieldPredictedAt = "predicted_at"
	// FieldChurnProbability holds the string denoting the churn_probability field in the database.
	FieldChurnProbability = "churn_probability"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldFactors holds the string denoting the factors field in the database.
	FieldFactors = "factors"
	// Table holds the table name of the riskassessment in the database.
	Table = "risk_assessments"
)

// Columns holds all SQL columns for riskassessment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMemberID,
	FieldPredictedAt,
	FieldChurnProbability,
	FieldConfidence,
	FieldTier,
	FieldFactors,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ChurnProbabilityValidator is a validator for the "churn_probability" field. It is called by the builders before save.
	ChurnProbabilityValidator func(float64) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return nil
	default:
		return fmt.Errorf("riskassessment: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the RiskAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByPredictedAt orders the results by the predicted_at field.
func ByPredictedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedAt, opts...).ToFunc()
}

// ByChurnProbability orders the results by the churn_probability field.
func ByChurnProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChurnProbability, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}
