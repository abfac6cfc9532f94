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
	"github.com/gymops/memberpulse/ent/riskassessment"
	"github.com/gymops/memberpulse/internal/types"
)

// RiskAssessment is the model entity for the RiskAssessment schema.
type RiskAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// When the record was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the record was last updated
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// MemberID holds the value of the "member_id" field.
	MemberID uuid.UUID `json:"member_id,omitempty"`
	// PredictedAt holds the value of the "predicted_at" field.
	PredictedAt time.Time `json:"predicted_at,omitempty"`
	// ChurnProbability holds the value of the "churn_probability" field.
	ChurnProbability float64 `json:"churn_probability,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier riskassessment.Tier `json:"tier,omitempty"`
	// Factors holds the value of the "factors" field.
	Factors      []types.RiskFactor `json:"factors,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RiskAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case riskassessment.FieldFactors:
			values[i] = new([]byte)
		case riskassessment.FieldChurnProbability, riskassessment.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case riskassessment.FieldTier:
			values[i] = new(sql.NullString)
		case riskassessment.FieldCreatedAt, riskassessment.FieldUpdatedAt, riskassessment.FieldPredictedAt:
			values[i] = new(sql.NullTime)
		case riskassessment.FieldID, riskassessment.FieldMemberID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RiskAssessment fields.
func (_m *RiskAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case riskassessment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case riskassessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case riskassessment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case riskassessment.FieldMemberID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value != nil {
				_m.MemberID = *value
			}
		case riskassessment.FieldPredictedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_at", values[i])
			} else if value.Valid {
				_m.PredictedAt = value.Time
			}
		case riskassessment.FieldChurnProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field churn_probability", values[i])
			} else if value.Valid {
				_m.ChurnProbability = value.Float64
			}
		case riskassessment.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case riskassessment.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = riskassessment.Tier(value.String)
			}
		case riskassessment.FieldFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Factors); err != nil {
					return fmt.Errorf("unmarshal field factors: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RiskAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *RiskAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RiskAssessment.
// Note that you need to call RiskAssessment.Unwrap() before calling this method if this RiskAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RiskAssessment) Update() *RiskAssessmentUpdateOne {
	return NewRiskAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RiskAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RiskAssessment) Unwrap() *RiskAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RiskAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RiskAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("RiskAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("member_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberID))
	builder.WriteString(", ")
	builder.WriteString("predicted_at=")
	builder.WriteString(_m.PredictedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("churn_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChurnProbability))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Factors))
	builder.WriteByte(')')
	return builder.String()
}

// RiskAssessments is a parsable slice of RiskAssessment.
type RiskAssessments []*RiskAssessment
