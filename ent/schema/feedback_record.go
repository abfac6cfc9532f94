package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// FeedbackRecord is one member rating with an optional comment. Immutable.
type FeedbackRecord struct {
	ent.Schema
}

// Mixin of the FeedbackRecord.
func (FeedbackRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the FeedbackRecord.
func (FeedbackRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("member_id", uuid.UUID{}).
			Immutable(),
		field.Int("rating").
			Range(1, 5).
			Immutable(),
		field.String("comment").
			Optional().
			Immutable(),
		field.Time("submitted_at").
			Immutable(),
	}
}

// Indexes of the FeedbackRecord.
func (FeedbackRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "submitted_at"),
	}
}
