package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Alert is an operational alert raised by the alert generator or manually.
// member_id is empty for population-level alerts.
//
// open_key is the conditional-write guard for idempotent generation: while
// an alert is pending it holds "<member>:<condition>" under a unique index,
// so a second pending alert for the same ongoing condition cannot be
// inserted even by a concurrent generator run. It is cleared when the alert
// leaves pending.
type Alert struct {
	ent.Schema
}

// Mixin of the Alert.
func (Alert) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("member_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Enum("condition").
			Values("inactivity", "payment_overdue", "manual"),
		field.Enum("severity").
			Values("low", "medium", "high"),
		field.String("message").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "resolved", "dismissed").
			Default("pending"),
		field.String("open_key").
			Optional().
			Nillable().
			Unique(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("member_id", "condition"),
	}
}
