package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PaymentRecord is a billing line owned by payment processing. The retention
// engine reads it and applies exactly one transition: pending→overdue during
// alert generation.
// Invariant: paid_date is set iff status == paid.
type PaymentRecord struct {
	ent.Schema
}

// Mixin of the PaymentRecord.
func (PaymentRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

// Fields of the PaymentRecord.
func (PaymentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("member_id", uuid.UUID{}).
			Immutable(),
		field.Int64("amount_cents").
			NonNegative(),
		field.String("currency").
			Default("USD"),
		field.Time("due_date"),
		field.Time("paid_date").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "paid", "overdue").
			Default("pending"),
	}
}

// Indexes of the PaymentRecord.
func (PaymentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "due_date"),
		index.Fields("status", "due_date"),
	}
}
