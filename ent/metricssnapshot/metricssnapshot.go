// Code generated by ent, DO NOT EDIT.

package metricssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the metricssnapshot type in the database.
	Label = "metrics_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldPrecision holds the string denoting the precision field in the database.
	FieldPrecision = "precision"
	// FieldRecall holds the string denoting the recall field in the database.
	FieldRecall = "recall"
	// FieldF1 holds the string denoting the f1 field in the database.
	FieldF1 = "f1"
	// FieldFeatureImportance holds the string denoting the feature_importance field in the database.
	FieldFeatureImportance = "feature_importance"
	// FieldTotalEvaluated holds the string denoting the total_evaluated field in the database.
	FieldTotalEvaluated = "total_evaluated"
	// Table holds the table name of the metricssnapshot in the database.
	Table = "metrics_snapshots"
)

// Columns holds all SQL columns for metricssnapshot fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEvaluatedAt,
	FieldAccuracy,
	FieldPrecision,
	FieldRecall,
	FieldF1,
	FieldFeatureImportance,
	FieldTotalEvaluated,
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
	// AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	AccuracyValidator func(float64) error
	// PrecisionValidator is a validator for the "precision" field. It is called by the builders before save.
	PrecisionValidator func(float64) error
	// RecallValidator is a validator for the "recall" field. It is called by the builders before save.
	RecallValidator func(float64) error
	// F1Validator is a validator for the "f1" field. It is called by the builders before save.
	F1Validator func(float64) error
	// TotalEvaluatedValidator is a validator for the "total_evaluated" field. It is called by the builders before save.
	TotalEvaluatedValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MetricsSnapshot queries.
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

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByPrecision orders the results by the precision field.
func ByPrecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrecision, opts...).ToFunc()
}

// ByRecall orders the results by the recall field.
func ByRecall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecall, opts...).ToFunc()
}

// ByF1 orders the results by the f1 field.
func ByF1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldF1, opts...).ToFunc()
}

// ByTotalEvaluated orders the results by the total_evaluated field.
func ByTotalEvaluated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEvaluated, opts...).ToFunc()
}
