// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/metricssnapshot"
)

// MetricsSnapshot is the model entity for the MetricsSnapshot schema.
type MetricsSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// When the record was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the record was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt time.Time `json:"evaluated_at,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// Precision holds the value of the "precision" field.
	Precision float64 `json:"precision,omitempty"`
	// Recall holds the value of the "recall" field.
	Recall float64 `json:"recall,omitempty"`
	// F1 holds the value of the "f1" field.
	F1 float64 `json:"f1,omitempty"`
	// FeatureImportance holds the value of the "feature_importance" field.
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
	// TotalEvaluated holds the value of the "total_evaluated" field.
	TotalEvaluated int `json:"total_evaluated,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetricsSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metricssnapshot.FieldFeatureImportance:
			values[i] = new([]byte)
		case metricssnapshot.FieldAccuracy, metricssnapshot.FieldPrecision, metricssnapshot.FieldRecall, metricssnapshot.FieldF1:
			values[i] = new(sql.NullFloat64)
		case metricssnapshot.FieldTotalEvaluated:
			values[i] = new(sql.NullInt64)
		case metricssnapshot.FieldCreatedAt, metricssnapshot.FieldUpdatedAt, metricssnapshot.FieldEvaluatedAt:
			values[i] = new(sql.NullTime)
		case metricssnapshot.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetricsSnapshot fields.
func (_m *MetricsSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metricssnapshot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case metricssnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case metricssnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case metricssnapshot.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = value.Time
			}
		case metricssnapshot.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case metricssnapshot.FieldPrecision:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field precision", values[i])
			} else if value.Valid {
				_m.Precision = value.Float64
			}
		case metricssnapshot.FieldRecall:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recall", values[i])
			} else if value.Valid {
				_m.Recall = value.Float64
			}
		case metricssnapshot.FieldF1:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field f1", values[i])
			} else if value.Valid {
				_m.F1 = value.Float64
			}
		case metricssnapshot.FieldFeatureImportance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feature_importance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeatureImportance); err != nil {
					return fmt.Errorf("unmarshal field feature_importance: %w", err)
				}
			}
		case metricssnapshot.FieldTotalEvaluated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_evaluated", values[i])
			} else if value.Valid {
				_m.TotalEvaluated = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MetricsSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *MetricsSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MetricsSnapshot.
// Note that you need to call MetricsSnapshot.Unwrap() before calling this method if this MetricsSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetricsSnapshot) Update() *MetricsSnapshotUpdateOne {
	return NewMetricsSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetricsSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetricsSnapshot) Unwrap() *MetricsSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetricsSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetricsSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("MetricsSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("evaluated_at=")
	builder.WriteString(_m.EvaluatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("precision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Precision))
	builder.WriteString(", ")
	builder.WriteString("recall=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recall))
	builder.WriteString(", ")
	builder.WriteString("f1=")
	builder.WriteString(fmt.Sprintf("%v", _m.F1))
	builder.WriteString(", ")
	builder.WriteString("feature_importance=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureImportance))
	builder.WriteString(", ")
	builder.WriteString("total_evaluated=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEvaluated))
	builder.WriteByte(')')
	return builder.String()
}

// MetricsSnapshots is a parsable slice of MetricsSnapshot.
type MetricsSnapshots []*MetricsSnapshot
