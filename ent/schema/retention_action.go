package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RetentionAction is a planned or executed intervention for a member.
// Transitions: pending→in_progress→completed, any non-terminal→cancelled.
type RetentionAction struct {
	ent.Schema
}

// Mixin of the RetentionAction.
func (RetentionAction) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the RetentionAction.
func (RetentionAction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("member_id", uuid.UUID{}).
			Immutable(),
		field.UUID("assessment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("Assessment this action was derived from, if any"),
		field.Enum("type").
			Values("message", "discount", "call", "free_class", "other"),
		field.String("description").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "cancelled").
			Default("pending"),
		field.Int("priority").
			Comment("Lower = more urgent"),
		field.String("created_by").
			NotEmpty(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set only when status becomes completed"),
	}
}

// Indexes of the RetentionAction.
func (RetentionAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "status"),
	}
}
