package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

// RiskAssessment is one churn prediction for one member, produced by the
// external scoring service and persisted by the engine. The factor list is
// stored as a JSON column; factors have no identity of their own.
type RiskAssessment struct {
	ent.Schema
}

// Mixin of the RiskAssessment.
func (RiskAssessment) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the RiskAssessment.
func (RiskAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("member_id", uuid.UUID{}).
			Immutable(),
		field.Time("predicted_at").
			Immutable(),
		field.Float("churn_probability").
			Min(0).Max(1),
		field.Float("confidence").
			Min(0).Max(1),
		field.Enum("tier").
			Values("low", "medium", "high"),
		field.JSON("factors", []types.RiskFactor{}),
	}
}

// Indexes of the RiskAssessment.
func (RiskAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "predicted_at"),
		index.Fields("predicted_at"),
	}
}
