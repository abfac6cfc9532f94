package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MetricsSnapshot is one append-only model-evaluation result.
type MetricsSnapshot struct {
	ent.Schema
}

// Mixin of the MetricsSnapshot.
func (MetricsSnapshot) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the MetricsSnapshot.
func (MetricsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Time("evaluated_at").
			Immutable(),
		field.Float("accuracy").
			Min(0).Max(1).
			Immutable(),
		field.Float("precision").
			Min(0).Max(1).
			Immutable(),
		field.Float("recall").
			Min(0).Max(1).
			Immutable(),
		field.Float("f1").
			Min(0).Max(1).
			Immutable(),
		field.JSON("feature_importance", map[string]float64{}).
			Immutable(),
		field.Int("total_evaluated").
			NonNegative().
			Immutable(),
	}
}

// Indexes of the MetricsSnapshot.
func (MetricsSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluated_at"),
	}
}
