// Code generated by ent, DO NOT EDIT.

package paymentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldMemberID, v))
}

// AmountCents applies equality check predicate on the "amount_cents" field. It's identical to AmountCentsEQ.
func AmountCents(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldAmountCents, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCurrency, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldDueDate, v))
}

// PaidDate applies equality check predicate on the "paid_date" field. It's identical to PaidDateEQ.
func PaidDate(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPaidDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v uuid.UUID) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldMemberID, v))
}

// AmountCentsEQ applies the EQ predicate on the "amount_cents" field.
func AmountCentsEQ(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldAmountCents, v))
}

// AmountCentsNEQ applies the NEQ predicate on the "amount_cents" field.
func AmountCentsNEQ(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldAmountCents, v))
}

// AmountCentsIn applies the In predicate on the "amount_cents" field.
func AmountCentsIn(vs ...int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldAmountCents, vs...))
}

// AmountCentsNotIn applies the NotIn predicate on the "amount_cents" field.
func AmountCentsNotIn(vs ...int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldAmountCents, vs...))
}

// AmountCentsGT applies the GT predicate on the "amount_cents" field.
func AmountCentsGT(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldAmountCents, v))
}

// AmountCentsGTE applies the GTE predicate on the "amount_cents" field.
func AmountCentsGTE(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldAmountCents, v))
}

// AmountCentsLT applies the LT predicate on the "amount_cents" field.
func AmountCentsLT(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldAmountCents, v))
}

// AmountCentsLTE applies the LTE predicate on the "amount_cents" field.
func AmountCentsLTE(v int64) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldAmountCents, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldContainsFold(FieldCurrency, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldDueDate, v))
}

// PaidDateEQ applies the EQ predicate on the "paid_date" field.
func PaidDateEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldPaidDate, v))
}

// PaidDateNEQ applies the NEQ predicate on the "paid_date" field.
func PaidDateNEQ(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldPaidDate, v))
}

// PaidDateIn applies the In predicate on the "paid_date" field.
func PaidDateIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldPaidDate, vs...))
}

// PaidDateNotIn applies the NotIn predicate on the "paid_date" field.
func PaidDateNotIn(vs ...time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldPaidDate, vs...))
}

// PaidDateGT applies the GT predicate on the "paid_date" field.
func PaidDateGT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGT(FieldPaidDate, v))
}

// PaidDateGTE applies the GTE predicate on the "paid_date" field.
func PaidDateGTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldGTE(FieldPaidDate, v))
}

// PaidDateLT applies the LT predicate on the "paid_date" field.
func PaidDateLT(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLT(FieldPaidDate, v))
}

// PaidDateLTE applies the LTE predicate on the "paid_date" field.
func PaidDateLTE(v time.Time) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldLTE(FieldPaidDate, v))
}

// PaidDateIsNil applies the IsNil predicate on the "paid_date" field.
func PaidDateIsNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIsNull(FieldPaidDate))
}

// PaidDateNotNil applies the NotNil predicate on the "paid_date" field.
func PaidDateNotNil() predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotNull(FieldPaidDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentRecord) predicate.PaymentRecord {
	return predicate.PaymentRecord(sql.NotPredicates(p))
}
