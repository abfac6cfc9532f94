package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AttendanceEvent is one gym visit. Append-only; events are never updated
// or deleted once written.
type AttendanceEvent struct {
	ent.Schema
}

// Mixin of the AttendanceEvent.
func (AttendanceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the AttendanceEvent.
func (AttendanceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("member_id", uuid.UUID{}).
			Immutable(),
		field.Time("occurred_at").
			Immutable(),
		field.String("session_type").
			NotEmpty().
			Immutable(),
		field.Int("duration_minutes").
			NonNegative().
			Immutable(),
	}
}

// Indexes of the AttendanceEvent.
func (AttendanceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "occurred_at"),
	}
}
