// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/alert"
	"github.com/gymops/memberpulse/ent/attendanceevent"
	"github.com/gymops/memberpulse/ent/feedbackrecord"
	"github.com/gymops/memberpulse/ent/member"
	"github.com/gymops/memberpulse/ent/metricssnapshot"
	"github.com/gymops/memberpulse/ent/paymentrecord"
	"github.com/gymops/memberpulse/ent/predicate"
	"github.com/gymops/memberpulse/ent/retentionaction"
	"github.com/gymops/memberpulse/ent/riskassessment"
	"github.com/gymops/memberpulse/internal/types"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert           = "Alert"
	TypeAttendanceEvent = "AttendanceEvent"
	TypeFeedbackRecord  = "FeedbackRecord"
	TypeMember          = "Member"
	TypeMetricsSnapshot = "MetricsSnapshot"
	TypePaymentRecord   = "PaymentRecord"
	TypeRetentionAction = "RetentionAction"
	TypeRiskAssessment  = "RiskAssessment"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	member_id     *uuid.UUID
	condition     *alert.Condition
	severity      *alert.Severity
	message       *string
	status        *alert.Status
	open_key      *string
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Alert, error)
	predicates    []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id uuid.UUID) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlertMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlertMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlertMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMemberID sets the "member_id" field.
func (m *AlertMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *AlertMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldMemberID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ClearMemberID clears the value of the "member_id" field.
func (m *AlertMutation) ClearMemberID() {
	m.member_id = nil
	m.clearedFields[alert.FieldMemberID] = struct{}{}
}

// MemberIDCleared returns if the "member_id" field was cleared in this mutation.
func (m *AlertMutation) MemberIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldMemberID]
	return ok
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *AlertMutation) ResetMemberID() {
	m.member_id = nil
	delete(m.clearedFields, alert.FieldMemberID)
}

// SetCondition sets the "condition" field.
func (m *AlertMutation) SetCondition(a alert.Condition) {
	m.condition = &a
}

// Condition returns the value of the "condition" field in the mutation.
func (m *AlertMutation) Condition() (r alert.Condition, exists bool) {
	v := m.condition
	if v == nil {
		return
	}
	return *v, true
}

// OldCondition returns the old "condition" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCondition(ctx context.Context) (v alert.Condition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCondition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCondition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCondition: %w", err)
	}
	return oldValue.Condition, nil
}

// ResetCondition resets all changes to the "condition" field.
func (m *AlertMutation) ResetCondition() {
	m.condition = nil
}

// SetSeverity sets the "severity" field.
func (m *AlertMutation) SetSeverity(a alert.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertMutation) Severity() (r alert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeverity(ctx context.Context) (v alert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetMessage sets the "message" field.
func (m *AlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AlertMutation) ResetMessage() {
	m.message = nil
}

// SetStatus sets the "status" field.
func (m *AlertMutation) SetStatus(a alert.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertMutation) Status() (r alert.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStatus(ctx context.Context) (v alert.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertMutation) ResetStatus() {
	m.status = nil
}

// SetOpenKey sets the "open_key" field.
func (m *AlertMutation) SetOpenKey(s string) {
	m.open_key = &s
}

// OpenKey returns the value of the "open_key" field in the mutation.
func (m *AlertMutation) OpenKey() (r string, exists bool) {
	v := m.open_key
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenKey returns the old "open_key" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldOpenKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenKey: %w", err)
	}
	return oldValue.OpenKey, nil
}

// ClearOpenKey clears the value of the "open_key" field.
func (m *AlertMutation) ClearOpenKey() {
	m.open_key = nil
	m.clearedFields[alert.FieldOpenKey] = struct{}{}
}

// OpenKeyCleared returns if the "open_key" field was cleared in this mutation.
func (m *AlertMutation) OpenKeyCleared() bool {
	_, ok := m.clearedFields[alert.FieldOpenKey]
	return ok
}

// ResetOpenKey resets all changes to the "open_key" field.
func (m *AlertMutation) ResetOpenKey() {
	m.open_key = nil
	delete(m.clearedFields, alert.FieldOpenKey)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *AlertMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *AlertMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *AlertMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[alert.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *AlertMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *AlertMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, alert.FieldResolvedAt)
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, alert.FieldUpdatedAt)
	}
	if m.member_id != nil {
		fields = append(fields, alert.FieldMemberID)
	}
	if m.condition != nil {
		fields = append(fields, alert.FieldCondition)
	}
	if m.severity != nil {
		fields = append(fields, alert.FieldSeverity)
	}
	if m.message != nil {
		fields = append(fields, alert.FieldMessage)
	}
	if m.status != nil {
		fields = append(fields, alert.FieldStatus)
	}
	if m.open_key != nil {
		fields = append(fields, alert.FieldOpenKey)
	}
	if m.resolved_at != nil {
		fields = append(fields, alert.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	case alert.FieldUpdatedAt:
		return m.UpdatedAt()
	case alert.FieldMemberID:
		return m.MemberID()
	case alert.FieldCondition:
		return m.Condition()
	case alert.FieldSeverity:
		return m.Severity()
	case alert.FieldMessage:
		return m.Message()
	case alert.FieldStatus:
		return m.Status()
	case alert.FieldOpenKey:
		return m.OpenKey()
	case alert.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alert.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case alert.FieldMemberID:
		return m.OldMemberID(ctx)
	case alert.FieldCondition:
		return m.OldCondition(ctx)
	case alert.FieldSeverity:
		return m.OldSeverity(ctx)
	case alert.FieldMessage:
		return m.OldMessage(ctx)
	case alert.FieldStatus:
		return m.OldStatus(ctx)
	case alert.FieldOpenKey:
		return m.OldOpenKey(ctx)
	case alert.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alert.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case alert.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case alert.FieldCondition:
		v, ok := value.(alert.Condition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCondition(v)
		return nil
	case alert.FieldSeverity:
		v, ok := value.(alert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case alert.FieldStatus:
		v, ok := value.(alert.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alert.FieldOpenKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenKey(v)
		return nil
	case alert.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldMemberID) {
		fields = append(fields, alert.FieldMemberID)
	}
	if m.FieldCleared(alert.FieldOpenKey) {
		fields = append(fields, alert.FieldOpenKey)
	}
	if m.FieldCleared(alert.FieldResolvedAt) {
		fields = append(fields, alert.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldMemberID:
		m.ClearMemberID()
		return nil
	case alert.FieldOpenKey:
		m.ClearOpenKey()
		return nil
	case alert.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alert.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case alert.FieldMemberID:
		m.ResetMemberID()
		return nil
	case alert.FieldCondition:
		m.ResetCondition()
		return nil
	case alert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alert.FieldMessage:
		m.ResetMessage()
		return nil
	case alert.FieldStatus:
		m.ResetStatus()
		return nil
	case alert.FieldOpenKey:
		m.ResetOpenKey()
		return nil
	case alert.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Alert edge %s", name)
}

// AttendanceEventMutation represents an operation that mutates the AttendanceEvent nodes in the graph.
type AttendanceEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	member_id           *uuid.UUID
	occurred_at         *time.Time
	session_type        *string
	duration_minutes    *int
	addduration_minutes *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AttendanceEvent, error)
	predicates          []predicate.AttendanceEvent
}

var _ ent.Mutation = (*AttendanceEventMutation)(nil)

// attendanceeventOption allows management of the mutation configuration using functional options.
type attendanceeventOption func(*AttendanceEventMutation)

// newAttendanceEventMutation creates new mutation for the AttendanceEvent entity.
func newAttendanceEventMutation(c config, op Op, opts ...attendanceeventOption) *AttendanceEventMutation {
	m := &AttendanceEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttendanceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttendanceEventID sets the ID field of the mutation.
func withAttendanceEventID(id uuid.UUID) attendanceeventOption {
	return func(m *AttendanceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttendanceEvent
		)
		m.oldValue = func(ctx context.Context) (*AttendanceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttendanceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttendanceEvent sets the old AttendanceEvent of the mutation.
func withAttendanceEvent(node *AttendanceEvent) attendanceeventOption {
	return func(m *AttendanceEventMutation) {
		m.oldValue = func(context.Context) (*AttendanceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttendanceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttendanceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AttendanceEvent entities.
func (m *AttendanceEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttendanceEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttendanceEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttendanceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AttendanceEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttendanceEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttendanceEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AttendanceEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AttendanceEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AttendanceEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMemberID sets the "member_id" field.
func (m *AttendanceEventMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *AttendanceEventMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *AttendanceEventMutation) ResetMemberID() {
	m.member_id = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *AttendanceEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *AttendanceEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *AttendanceEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetSessionType sets the "session_type" field.
func (m *AttendanceEventMutation) SetSessionType(s string) {
	m.session_type = &s
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *AttendanceEventMutation) SessionType() (r string, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldSessionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *AttendanceEventMutation) ResetSessionType() {
	m.session_type = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *AttendanceEventMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *AttendanceEventMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *AttendanceEventMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *AttendanceEventMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *AttendanceEventMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// Where appends a list predicates to the AttendanceEventMutation builder.
func (m *AttendanceEventMutation) Where(ps ...predicate.AttendanceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttendanceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttendanceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttendanceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttendanceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttendanceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttendanceEvent).
func (m *AttendanceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttendanceEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, attendanceevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, attendanceevent.FieldUpdatedAt)
	}
	if m.member_id != nil {
		fields = append(fields, attendanceevent.FieldMemberID)
	}
	if m.occurred_at != nil {
		fields = append(fields, attendanceevent.FieldOccurredAt)
	}
	if m.session_type != nil {
		fields = append(fields, attendanceevent.FieldSessionType)
	}
	if m.duration_minutes != nil {
		fields = append(fields, attendanceevent.FieldDurationMinutes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttendanceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attendanceevent.FieldCreatedAt:
		return m.CreatedAt()
	case attendanceevent.FieldUpdatedAt:
		return m.UpdatedAt()
	case attendanceevent.FieldMemberID:
		return m.MemberID()
	case attendanceevent.FieldOccurredAt:
		return m.OccurredAt()
	case attendanceevent.FieldSessionType:
		return m.SessionType()
	case attendanceevent.FieldDurationMinutes:
		return m.DurationMinutes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttendanceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attendanceevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attendanceevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case attendanceevent.FieldMemberID:
		return m.OldMemberID(ctx)
	case attendanceevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case attendanceevent.FieldSessionType:
		return m.OldSessionType(ctx)
	case attendanceevent.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	}
	return nil, fmt.Errorf("unknown AttendanceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttendanceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attendanceevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attendanceevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case attendanceevent.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case attendanceevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case attendanceevent.FieldSessionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case attendanceevent.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown AttendanceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttendanceEventMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, attendanceevent.FieldDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttendanceEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attendanceevent.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttendanceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attendanceevent.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown AttendanceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttendanceEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttendanceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttendanceEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttendanceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttendanceEventMutation) ResetField(name string) error {
	switch name {
	case attendanceevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attendanceevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case attendanceevent.FieldMemberID:
		m.ResetMemberID()
		return nil
	case attendanceevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case attendanceevent.FieldSessionType:
		m.ResetSessionType()
		return nil
	case attendanceevent.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	}
	return fmt.Errorf("unknown AttendanceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttendanceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttendanceEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttendanceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttendanceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttendanceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttendanceEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttendanceEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttendanceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttendanceEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttendanceEvent edge %s", name)
}

// FeedbackRecordMutation represents an operation that mutates the FeedbackRecord nodes in the graph.
type FeedbackRecordMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	member_id     *uuid.UUID
	rating        *int
	addrating     *int
	comment       *string
	submitted_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeedbackRecord, error)
	predicates    []predicate.FeedbackRecord
}

var _ ent.Mutation = (*FeedbackRecordMutation)(nil)

// feedbackrecordOption allows management of the mutation configuration using functional options.
type feedbackrecordOption func(*FeedbackRecordMutation)

// newFeedbackRecordMutation creates new mutation for the FeedbackRecord entity.
func newFeedbackRecordMutation(c config, op Op, opts ...feedbackrecordOption) *FeedbackRecordMutation {
	m := &FeedbackRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackRecordID sets the ID field of the mutation.
func withFeedbackRecordID(id uuid.UUID) feedbackrecordOption {
	return func(m *FeedbackRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackRecord
		)
		m.oldValue = func(ctx context.Context) (*FeedbackRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackRecord sets the old FeedbackRecord of the mutation.
func withFeedbackRecord(node *FeedbackRecord) feedbackrecordOption {
	return func(m *FeedbackRecordMutation) {
		m.oldValue = func(context.Context) (*FeedbackRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackRecord entities.
func (m *FeedbackRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackRecord entity.
// If the FeedbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeedbackRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeedbackRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FeedbackRecord entity.
// If the FeedbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeedbackRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMemberID sets the "member_id" field.
func (m *FeedbackRecordMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *FeedbackRecordMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the FeedbackRecord entity.
// If the FeedbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackRecordMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *FeedbackRecordMutation) ResetMemberID() {
	m.member_id = nil
}

// SetRating sets the "rating" field.
func (m *FeedbackRecordMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *FeedbackRecordMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the FeedbackRecord entity.
// If the FeedbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackRecordMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *FeedbackRecordMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *FeedbackRecordMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *FeedbackRecordMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetComment sets the "comment" field.
func (m *FeedbackRecordMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *FeedbackRecordMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the FeedbackRecord entity.
// If the FeedbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackRecordMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *FeedbackRecordMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[feedbackrecord.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *FeedbackRecordMutation) CommentCleared() bool {
	_, ok := m.clearedFields[feedbackrecord.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *FeedbackRecordMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, feedbackrecord.FieldComment)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *FeedbackRecordMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *FeedbackRecordMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the FeedbackRecord entity.
// If the FeedbackRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackRecordMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *FeedbackRecordMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// Where appends a list predicates to the FeedbackRecordMutation builder.
func (m *FeedbackRecordMutation) Where(ps ...predicate.FeedbackRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackRecord).
func (m *FeedbackRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, feedbackrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, feedbackrecord.FieldUpdatedAt)
	}
	if m.member_id != nil {
		fields = append(fields, feedbackrecord.FieldMemberID)
	}
	if m.rating != nil {
		fields = append(fields, feedbackrecord.FieldRating)
	}
	if m.comment != nil {
		fields = append(fields, feedbackrecord.FieldComment)
	}
	if m.submitted_at != nil {
		fields = append(fields, feedbackrecord.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackrecord.FieldCreatedAt:
		return m.CreatedAt()
	case feedbackrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case feedbackrecord.FieldMemberID:
		return m.MemberID()
	case feedbackrecord.FieldRating:
		return m.Rating()
	case feedbackrecord.FieldComment:
		return m.Comment()
	case feedbackrecord.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feedbackrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case feedbackrecord.FieldMemberID:
		return m.OldMemberID(ctx)
	case feedbackrecord.FieldRating:
		return m.OldRating(ctx)
	case feedbackrecord.FieldComment:
		return m.OldComment(ctx)
	case feedbackrecord.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feedbackrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case feedbackrecord.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case feedbackrecord.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case feedbackrecord.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case feedbackrecord.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackRecordMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, feedbackrecord.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbackrecord.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbackrecord.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbackrecord.FieldComment) {
		fields = append(fields, feedbackrecord.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackRecordMutation) ClearField(name string) error {
	switch name {
	case feedbackrecord.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown FeedbackRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackRecordMutation) ResetField(name string) error {
	switch name {
	case feedbackrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feedbackrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case feedbackrecord.FieldMemberID:
		m.ResetMemberID()
		return nil
	case feedbackrecord.FieldRating:
		m.ResetRating()
		return nil
	case feedbackrecord.FieldComment:
		m.ResetComment()
		return nil
	case feedbackrecord.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedbackRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedbackRecord edge %s", name)
}

// MemberMutation represents an operation that mutates the Member nodes in the graph.
type MemberMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	status        *member.Status
	enrolled_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Member, error)
	predicates    []predicate.Member
}

var _ ent.Mutation = (*MemberMutation)(nil)

// memberOption allows management of the mutation configuration using functional options.
type memberOption func(*MemberMutation)

// newMemberMutation creates new mutation for the Member entity.
func newMemberMutation(c config, op Op, opts ...memberOption) *MemberMutation {
	m := &MemberMutation{
		config:        c,
		op:            op,
		typ:           TypeMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemberID sets the ID field of the mutation.
func withMemberID(id uuid.UUID) memberOption {
	return func(m *MemberMutation) {
		var (
			err   error
			once  sync.Once
			value *Member
		)
		m.oldValue = func(ctx context.Context) (*Member, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Member.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMember sets the old Member of the mutation.
func withMember(node *Member) memberOption {
	return func(m *MemberMutation) {
		m.oldValue = func(context.Context) (*Member, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Member entities.
func (m *MemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Member.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MemberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *MemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MemberMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *MemberMutation) SetStatus(value member.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MemberMutation) Status() (r member.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldStatus(ctx context.Context) (v member.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MemberMutation) ResetStatus() {
	m.status = nil
}

// SetEnrolledAt sets the "enrolled_at" field.
func (m *MemberMutation) SetEnrolledAt(t time.Time) {
	m.enrolled_at = &t
}

// EnrolledAt returns the value of the "enrolled_at" field in the mutation.
func (m *MemberMutation) EnrolledAt() (r time.Time, exists bool) {
	v := m.enrolled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrolledAt returns the old "enrolled_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldEnrolledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrolledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrolledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrolledAt: %w", err)
	}
	return oldValue.EnrolledAt, nil
}

// ResetEnrolledAt resets all changes to the "enrolled_at" field.
func (m *MemberMutation) ResetEnrolledAt() {
	m.enrolled_at = nil
}

// Where appends a list predicates to the MemberMutation builder.
func (m *MemberMutation) Where(ps ...predicate.Member) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Member, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Member).
func (m *MemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, member.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, member.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, member.FieldName)
	}
	if m.status != nil {
		fields = append(fields, member.FieldStatus)
	}
	if m.enrolled_at != nil {
		fields = append(fields, member.FieldEnrolledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case member.FieldCreatedAt:
		return m.CreatedAt()
	case member.FieldUpdatedAt:
		return m.UpdatedAt()
	case member.FieldName:
		return m.Name()
	case member.FieldStatus:
		return m.Status()
	case member.FieldEnrolledAt:
		return m.EnrolledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case member.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case member.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case member.FieldName:
		return m.OldName(ctx)
	case member.FieldStatus:
		return m.OldStatus(ctx)
	case member.FieldEnrolledAt:
		return m.OldEnrolledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Member field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case member.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case member.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case member.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case member.FieldStatus:
		v, ok := value.(member.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case member.FieldEnrolledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrolledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Member numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Member nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemberMutation) ResetField(name string) error {
	switch name {
	case member.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case member.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case member.FieldName:
		m.ResetName()
		return nil
	case member.FieldStatus:
		m.ResetStatus()
		return nil
	case member.FieldEnrolledAt:
		m.ResetEnrolledAt()
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Member unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Member edge %s", name)
}

// MetricsSnapshotMutation represents an operation that mutates the MetricsSnapshot nodes in the graph.
type MetricsSnapshotMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	evaluated_at       *time.Time
	accuracy           *float64
	addaccuracy        *float64
	precision          *float64
	addprecision       *float64
	recall             *float64
	addrecall          *float64
	f1                 *float64
	addf1              *float64
	feature_importance *map[string]float64
	total_evaluated    *int
	addtotal_evaluated *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*MetricsSnapshot, error)
	predicates         []predicate.MetricsSnapshot
}

var _ ent.Mutation = (*MetricsSnapshotMutation)(nil)

// metricssnapshotOption allows management of the mutation configuration using functional options.
type metricssnapshotOption func(*MetricsSnapshotMutation)

// newMetricsSnapshotMutation creates new mutation for the MetricsSnapshot entity.
func newMetricsSnapshotMutation(c config, op Op, opts ...metricssnapshotOption) *MetricsSnapshotMutation {
	m := &MetricsSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeMetricsSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricsSnapshotID sets the ID field of the mutation.
func withMetricsSnapshotID(id uuid.UUID) metricssnapshotOption {
	return func(m *MetricsSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *MetricsSnapshot
		)
		m.oldValue = func(ctx context.Context) (*MetricsSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetricsSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetricsSnapshot sets the old MetricsSnapshot of the mutation.
func withMetricsSnapshot(node *MetricsSnapshot) metricssnapshotOption {
	return func(m *MetricsSnapshotMutation) {
		m.oldValue = func(context.Context) (*MetricsSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricsSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricsSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MetricsSnapshot entities.
func (m *MetricsSnapshotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricsSnapshotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricsSnapshotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetricsSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MetricsSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MetricsSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MetricsSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MetricsSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MetricsSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MetricsSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *MetricsSnapshotMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *MetricsSnapshotMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldEvaluatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *MetricsSnapshotMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *MetricsSnapshotMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *MetricsSnapshotMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *MetricsSnapshotMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *MetricsSnapshotMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *MetricsSnapshotMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetPrecision sets the "precision" field.
func (m *MetricsSnapshotMutation) SetPrecision(f float64) {
	m.precision = &f
	m.addprecision = nil
}

// Precision returns the value of the "precision" field in the mutation.
func (m *MetricsSnapshotMutation) Precision() (r float64, exists bool) {
	v := m.precision
	if v == nil {
		return
	}
	return *v, true
}

// OldPrecision returns the old "precision" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldPrecision(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrecision: %w", err)
	}
	return oldValue.Precision, nil
}

// AddPrecision adds f to the "precision" field.
func (m *MetricsSnapshotMutation) AddPrecision(f float64) {
	if m.addprecision != nil {
		*m.addprecision += f
	} else {
		m.addprecision = &f
	}
}

// AddedPrecision returns the value that was added to the "precision" field in this mutation.
func (m *MetricsSnapshotMutation) AddedPrecision() (r float64, exists bool) {
	v := m.addprecision
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrecision resets all changes to the "precision" field.
func (m *MetricsSnapshotMutation) ResetPrecision() {
	m.precision = nil
	m.addprecision = nil
}

// SetRecall sets the "recall" field.
func (m *MetricsSnapshotMutation) SetRecall(f float64) {
	m.recall = &f
	m.addrecall = nil
}

// Recall returns the value of the "recall" field in the mutation.
func (m *MetricsSnapshotMutation) Recall() (r float64, exists bool) {
	v := m.recall
	if v == nil {
		return
	}
	return *v, true
}

// OldRecall returns the old "recall" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldRecall(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecall: %w", err)
	}
	return oldValue.Recall, nil
}

// AddRecall adds f to the "recall" field.
func (m *MetricsSnapshotMutation) AddRecall(f float64) {
	if m.addrecall != nil {
		*m.addrecall += f
	} else {
		m.addrecall = &f
	}
}

// AddedRecall returns the value that was added to the "recall" field in this mutation.
func (m *MetricsSnapshotMutation) AddedRecall() (r float64, exists bool) {
	v := m.addrecall
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecall resets all changes to the "recall" field.
func (m *MetricsSnapshotMutation) ResetRecall() {
	m.recall = nil
	m.addrecall = nil
}

// SetF1 sets the "f1" field.
func (m *MetricsSnapshotMutation) SetF1(f float64) {
	m.f1 = &f
	m.addf1 = nil
}

// F1 returns the value of the "f1" field in the mutation.
func (m *MetricsSnapshotMutation) F1() (r float64, exists bool) {
	v := m.f1
	if v == nil {
		return
	}
	return *v, true
}

// OldF1 returns the old "f1" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldF1(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldF1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldF1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldF1: %w", err)
	}
	return oldValue.F1, nil
}

// AddF1 adds f to the "f1" field.
func (m *MetricsSnapshotMutation) AddF1(f float64) {
	if m.addf1 != nil {
		*m.addf1 += f
	} else {
		m.addf1 = &f
	}
}

// AddedF1 returns the value that was added to the "f1" field in this mutation.
func (m *MetricsSnapshotMutation) AddedF1() (r float64, exists bool) {
	v := m.addf1
	if v == nil {
		return
	}
	return *v, true
}

// ResetF1 resets all changes to the "f1" field.
func (m *MetricsSnapshotMutation) ResetF1() {
	m.f1 = nil
	m.addf1 = nil
}

// SetFeatureImportance sets the "feature_importance" field.
func (m *MetricsSnapshotMutation) SetFeatureImportance(value map[string]float64) {
	m.feature_importance = &value
}

// FeatureImportance returns the value of the "feature_importance" field in the mutation.
func (m *MetricsSnapshotMutation) FeatureImportance() (r map[string]float64, exists bool) {
	v := m.feature_importance
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureImportance returns the old "feature_importance" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldFeatureImportance(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureImportance: %w", err)
	}
	return oldValue.FeatureImportance, nil
}

// ResetFeatureImportance resets all changes to the "feature_importance" field.
func (m *MetricsSnapshotMutation) ResetFeatureImportance() {
	m.feature_importance = nil
}

// SetTotalEvaluated sets the "total_evaluated" field.
func (m *MetricsSnapshotMutation) SetTotalEvaluated(i int) {
	m.total_evaluated = &i
	m.addtotal_evaluated = nil
}

// TotalEvaluated returns the value of the "total_evaluated" field in the mutation.
func (m *MetricsSnapshotMutation) TotalEvaluated() (r int, exists bool) {
	v := m.total_evaluated
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEvaluated returns the old "total_evaluated" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldTotalEvaluated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEvaluated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEvaluated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEvaluated: %w", err)
	}
	return oldValue.TotalEvaluated, nil
}

// AddTotalEvaluated adds i to the "total_evaluated" field.
func (m *MetricsSnapshotMutation) AddTotalEvaluated(i int) {
	if m.addtotal_evaluated != nil {
		*m.addtotal_evaluated += i
	} else {
		m.addtotal_evaluated = &i
	}
}

// AddedTotalEvaluated returns the value that was added to the "total_evaluated" field in this mutation.
func (m *MetricsSnapshotMutation) AddedTotalEvaluated() (r int, exists bool) {
	v := m.addtotal_evaluated
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEvaluated resets all changes to the "total_evaluated" field.
func (m *MetricsSnapshotMutation) ResetTotalEvaluated() {
	m.total_evaluated = nil
	m.addtotal_evaluated = nil
}

// Where appends a list predicates to the MetricsSnapshotMutation builder.
func (m *MetricsSnapshotMutation) Where(ps ...predicate.MetricsSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricsSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricsSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetricsSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricsSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricsSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetricsSnapshot).
func (m *MetricsSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricsSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, metricssnapshot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, metricssnapshot.FieldUpdatedAt)
	}
	if m.evaluated_at != nil {
		fields = append(fields, metricssnapshot.FieldEvaluatedAt)
	}
	if m.accuracy != nil {
		fields = append(fields, metricssnapshot.FieldAccuracy)
	}
	if m.precision != nil {
		fields = append(fields, metricssnapshot.FieldPrecision)
	}
	if m.recall != nil {
		fields = append(fields, metricssnapshot.FieldRecall)
	}
	if m.f1 != nil {
		fields = append(fields, metricssnapshot.FieldF1)
	}
	if m.feature_importance != nil {
		fields = append(fields, metricssnapshot.FieldFeatureImportance)
	}
	if m.total_evaluated != nil {
		fields = append(fields, metricssnapshot.FieldTotalEvaluated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricsSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metricssnapshot.FieldCreatedAt:
		return m.CreatedAt()
	case metricssnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	case metricssnapshot.FieldEvaluatedAt:
		return m.EvaluatedAt()
	case metricssnapshot.FieldAccuracy:
		return m.Accuracy()
	case metricssnapshot.FieldPrecision:
		return m.Precision()
	case metricssnapshot.FieldRecall:
		return m.Recall()
	case metricssnapshot.FieldF1:
		return m.F1()
	case metricssnapshot.FieldFeatureImportance:
		return m.FeatureImportance()
	case metricssnapshot.FieldTotalEvaluated:
		return m.TotalEvaluated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricsSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metricssnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case metricssnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case metricssnapshot.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	case metricssnapshot.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case metricssnapshot.FieldPrecision:
		return m.OldPrecision(ctx)
	case metricssnapshot.FieldRecall:
		return m.OldRecall(ctx)
	case metricssnapshot.FieldF1:
		return m.OldF1(ctx)
	case metricssnapshot.FieldFeatureImportance:
		return m.OldFeatureImportance(ctx)
	case metricssnapshot.FieldTotalEvaluated:
		return m.OldTotalEvaluated(ctx)
	}
	return nil, fmt.Errorf("unknown MetricsSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metricssnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case metricssnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case metricssnapshot.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	case metricssnapshot.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case metricssnapshot.FieldPrecision:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrecision(v)
		return nil
	case metricssnapshot.FieldRecall:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecall(v)
		return nil
	case metricssnapshot.FieldF1:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetF1(v)
		return nil
	case metricssnapshot.FieldFeatureImportance:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureImportance(v)
		return nil
	case metricssnapshot.FieldTotalEvaluated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEvaluated(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricsSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addaccuracy != nil {
		fields = append(fields, metricssnapshot.FieldAccuracy)
	}
	if m.addprecision != nil {
		fields = append(fields, metricssnapshot.FieldPrecision)
	}
	if m.addrecall != nil {
		fields = append(fields, metricssnapshot.FieldRecall)
	}
	if m.addf1 != nil {
		fields = append(fields, metricssnapshot.FieldF1)
	}
	if m.addtotal_evaluated != nil {
		fields = append(fields, metricssnapshot.FieldTotalEvaluated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricsSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metricssnapshot.FieldAccuracy:
		return m.AddedAccuracy()
	case metricssnapshot.FieldPrecision:
		return m.AddedPrecision()
	case metricssnapshot.FieldRecall:
		return m.AddedRecall()
	case metricssnapshot.FieldF1:
		return m.AddedF1()
	case metricssnapshot.FieldTotalEvaluated:
		return m.AddedTotalEvaluated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metricssnapshot.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case metricssnapshot.FieldPrecision:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrecision(v)
		return nil
	case metricssnapshot.FieldRecall:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecall(v)
		return nil
	case metricssnapshot.FieldF1:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddF1(v)
		return nil
	case metricssnapshot.FieldTotalEvaluated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEvaluated(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricsSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricsSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricsSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MetricsSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricsSnapshotMutation) ResetField(name string) error {
	switch name {
	case metricssnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case metricssnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case metricssnapshot.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	case metricssnapshot.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case metricssnapshot.FieldPrecision:
		m.ResetPrecision()
		return nil
	case metricssnapshot.FieldRecall:
		m.ResetRecall()
		return nil
	case metricssnapshot.FieldF1:
		m.ResetF1()
		return nil
	case metricssnapshot.FieldFeatureImportance:
		m.ResetFeatureImportance()
		return nil
	case metricssnapshot.FieldTotalEvaluated:
		m.ResetTotalEvaluated()
		return nil
	}
	return fmt.Errorf("unknown MetricsSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricsSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricsSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricsSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricsSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricsSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricsSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricsSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MetricsSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricsSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MetricsSnapshot edge %s", name)
}

// PaymentRecordMutation represents an operation that mutates the PaymentRecord nodes in the graph.
type PaymentRecordMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	member_id       *uuid.UUID
	amount_cents    *int64
	addamount_cents *int64
	currency        *string
	due_date        *time.Time
	paid_date       *time.Time
	status          *paymentrecord.Status
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PaymentRecord, error)
	predicates      []predicate.PaymentRecord
}

var _ ent.Mutation = (*PaymentRecordMutation)(nil)

// paymentrecordOption allows management of the mutation configuration using functional options.
type paymentrecordOption func(*PaymentRecordMutation)

// newPaymentRecordMutation creates new mutation for the PaymentRecord entity.
func newPaymentRecordMutation(c config, op Op, opts ...paymentrecordOption) *PaymentRecordMutation {
	m := &PaymentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentRecordID sets the ID field of the mutation.
func withPaymentRecordID(id uuid.UUID) paymentrecordOption {
	return func(m *PaymentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentRecord
		)
		m.oldValue = func(ctx context.Context) (*PaymentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentRecord sets the old PaymentRecord of the mutation.
func withPaymentRecord(node *PaymentRecord) paymentrecordOption {
	return func(m *PaymentRecordMutation) {
		m.oldValue = func(context.Context) (*PaymentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentRecord entities.
func (m *PaymentRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMemberID sets the "member_id" field.
func (m *PaymentRecordMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *PaymentRecordMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *PaymentRecordMutation) ResetMemberID() {
	m.member_id = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *PaymentRecordMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *PaymentRecordMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *PaymentRecordMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *PaymentRecordMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *PaymentRecordMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetCurrency sets the "currency" field.
func (m *PaymentRecordMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *PaymentRecordMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *PaymentRecordMutation) ResetCurrency() {
	m.currency = nil
}

// SetDueDate sets the "due_date" field.
func (m *PaymentRecordMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *PaymentRecordMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *PaymentRecordMutation) ResetDueDate() {
	m.due_date = nil
}

// SetPaidDate sets the "paid_date" field.
func (m *PaymentRecordMutation) SetPaidDate(t time.Time) {
	m.paid_date = &t
}

// PaidDate returns the value of the "paid_date" field in the mutation.
func (m *PaymentRecordMutation) PaidDate() (r time.Time, exists bool) {
	v := m.paid_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidDate returns the old "paid_date" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldPaidDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidDate: %w", err)
	}
	return oldValue.PaidDate, nil
}

// ClearPaidDate clears the value of the "paid_date" field.
func (m *PaymentRecordMutation) ClearPaidDate() {
	m.paid_date = nil
	m.clearedFields[paymentrecord.FieldPaidDate] = struct{}{}
}

// PaidDateCleared returns if the "paid_date" field was cleared in this mutation.
func (m *PaymentRecordMutation) PaidDateCleared() bool {
	_, ok := m.clearedFields[paymentrecord.FieldPaidDate]
	return ok
}

// ResetPaidDate resets all changes to the "paid_date" field.
func (m *PaymentRecordMutation) ResetPaidDate() {
	m.paid_date = nil
	delete(m.clearedFields, paymentrecord.FieldPaidDate)
}

// SetStatus sets the "status" field.
func (m *PaymentRecordMutation) SetStatus(pa paymentrecord.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentRecordMutation) Status() (r paymentrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PaymentRecord entity.
// If the PaymentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentRecordMutation) OldStatus(ctx context.Context) (v paymentrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentRecordMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the PaymentRecordMutation builder.
func (m *PaymentRecordMutation) Where(ps ...predicate.PaymentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentRecord).
func (m *PaymentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, paymentrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paymentrecord.FieldUpdatedAt)
	}
	if m.member_id != nil {
		fields = append(fields, paymentrecord.FieldMemberID)
	}
	if m.amount_cents != nil {
		fields = append(fields, paymentrecord.FieldAmountCents)
	}
	if m.currency != nil {
		fields = append(fields, paymentrecord.FieldCurrency)
	}
	if m.due_date != nil {
		fields = append(fields, paymentrecord.FieldDueDate)
	}
	if m.paid_date != nil {
		fields = append(fields, paymentrecord.FieldPaidDate)
	}
	if m.status != nil {
		fields = append(fields, paymentrecord.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentrecord.FieldCreatedAt:
		return m.CreatedAt()
	case paymentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case paymentrecord.FieldMemberID:
		return m.MemberID()
	case paymentrecord.FieldAmountCents:
		return m.AmountCents()
	case paymentrecord.FieldCurrency:
		return m.Currency()
	case paymentrecord.FieldDueDate:
		return m.DueDate()
	case paymentrecord.FieldPaidDate:
		return m.PaidDate()
	case paymentrecord.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paymentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case paymentrecord.FieldMemberID:
		return m.OldMemberID(ctx)
	case paymentrecord.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case paymentrecord.FieldCurrency:
		return m.OldCurrency(ctx)
	case paymentrecord.FieldDueDate:
		return m.OldDueDate(ctx)
	case paymentrecord.FieldPaidDate:
		return m.OldPaidDate(ctx)
	case paymentrecord.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paymentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case paymentrecord.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case paymentrecord.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case paymentrecord.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case paymentrecord.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case paymentrecord.FieldPaidDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidDate(v)
		return nil
	case paymentrecord.FieldStatus:
		v, ok := value.(paymentrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentRecordMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, paymentrecord.FieldAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentrecord.FieldAmountCents:
		return m.AddedAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentrecord.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentrecord.FieldPaidDate) {
		fields = append(fields, paymentrecord.FieldPaidDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentRecordMutation) ClearField(name string) error {
	switch name {
	case paymentrecord.FieldPaidDate:
		m.ClearPaidDate()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentRecordMutation) ResetField(name string) error {
	switch name {
	case paymentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paymentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case paymentrecord.FieldMemberID:
		m.ResetMemberID()
		return nil
	case paymentrecord.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case paymentrecord.FieldCurrency:
		m.ResetCurrency()
		return nil
	case paymentrecord.FieldDueDate:
		m.ResetDueDate()
		return nil
	case paymentrecord.FieldPaidDate:
		m.ResetPaidDate()
		return nil
	case paymentrecord.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown PaymentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PaymentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PaymentRecord edge %s", name)
}

// RetentionActionMutation represents an operation that mutates the RetentionAction nodes in the graph.
type RetentionActionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	member_id     *uuid.UUID
	assessment_id *uuid.UUID
	_type         *retentionaction.Type
	description   *string
	status        *retentionaction.Status
	priority      *int
	addpriority   *int
	created_by    *string
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RetentionAction, error)
	predicates    []predicate.RetentionAction
}

var _ ent.Mutation = (*RetentionActionMutation)(nil)

// retentionactionOption allows management of the mutation configuration using functional options.
type retentionactionOption func(*RetentionActionMutation)

// newRetentionActionMutation creates new mutation for the RetentionAction entity.
func newRetentionActionMutation(c config, op Op, opts ...retentionactionOption) *RetentionActionMutation {
	m := &RetentionActionMutation{
		config:        c,
		op:            op,
		typ:           TypeRetentionAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRetentionActionID sets the ID field of the mutation.
func withRetentionActionID(id uuid.UUID) retentionactionOption {
	return func(m *RetentionActionMutation) {
		var (
			err   error
			once  sync.Once
			value *RetentionAction
		)
		m.oldValue = func(ctx context.Context) (*RetentionAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RetentionAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRetentionAction sets the old RetentionAction of the mutation.
func withRetentionAction(node *RetentionAction) retentionactionOption {
	return func(m *RetentionActionMutation) {
		m.oldValue = func(context.Context) (*RetentionAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RetentionActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RetentionActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RetentionAction entities.
func (m *RetentionActionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RetentionActionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RetentionActionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RetentionAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RetentionActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RetentionActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RetentionActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RetentionActionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RetentionActionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RetentionActionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMemberID sets the "member_id" field.
func (m *RetentionActionMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *RetentionActionMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *RetentionActionMutation) ResetMemberID() {
	m.member_id = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *RetentionActionMutation) SetAssessmentID(u uuid.UUID) {
	m.assessment_id = &u
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *RetentionActionMutation) AssessmentID() (r uuid.UUID, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldAssessmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ClearAssessmentID clears the value of the "assessment_id" field.
func (m *RetentionActionMutation) ClearAssessmentID() {
	m.assessment_id = nil
	m.clearedFields[retentionaction.FieldAssessmentID] = struct{}{}
}

// AssessmentIDCleared returns if the "assessment_id" field was cleared in this mutation.
func (m *RetentionActionMutation) AssessmentIDCleared() bool {
	_, ok := m.clearedFields[retentionaction.FieldAssessmentID]
	return ok
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *RetentionActionMutation) ResetAssessmentID() {
	m.assessment_id = nil
	delete(m.clearedFields, retentionaction.FieldAssessmentID)
}

// SetType sets the "type" field.
func (m *RetentionActionMutation) SetType(r retentionaction.Type) {
	m._type = &r
}

// GetType returns the value of the "type" field in the mutation.
func (m *RetentionActionMutation) GetType() (r retentionaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldType(ctx context.Context) (v retentionaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *RetentionActionMutation) ResetType() {
	m._type = nil
}

// SetDescription sets the "description" field.
func (m *RetentionActionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RetentionActionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RetentionActionMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *RetentionActionMutation) SetStatus(r retentionaction.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RetentionActionMutation) Status() (r retentionaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldStatus(ctx context.Context) (v retentionaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RetentionActionMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *RetentionActionMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RetentionActionMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *RetentionActionMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *RetentionActionMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *RetentionActionMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RetentionActionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RetentionActionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RetentionActionMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RetentionActionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RetentionActionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RetentionAction entity.
// If the RetentionAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetentionActionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RetentionActionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[retentionaction.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RetentionActionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[retentionaction.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RetentionActionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, retentionaction.FieldCompletedAt)
}

// Where appends a list predicates to the RetentionActionMutation builder.
func (m *RetentionActionMutation) Where(ps ...predicate.RetentionAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RetentionActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RetentionActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RetentionAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RetentionActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RetentionActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RetentionAction).
func (m *RetentionActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RetentionActionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, retentionaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, retentionaction.FieldUpdatedAt)
	}
	if m.member_id != nil {
		fields = append(fields, retentionaction.FieldMemberID)
	}
	if m.assessment_id != nil {
		fields = append(fields, retentionaction.FieldAssessmentID)
	}
	if m._type != nil {
		fields = append(fields, retentionaction.FieldType)
	}
	if m.description != nil {
		fields = append(fields, retentionaction.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, retentionaction.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, retentionaction.FieldPriority)
	}
	if m.created_by != nil {
		fields = append(fields, retentionaction.FieldCreatedBy)
	}
	if m.completed_at != nil {
		fields = append(fields, retentionaction.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RetentionActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case retentionaction.FieldCreatedAt:
		return m.CreatedAt()
	case retentionaction.FieldUpdatedAt:
		return m.UpdatedAt()
	case retentionaction.FieldMemberID:
		return m.MemberID()
	case retentionaction.FieldAssessmentID:
		return m.AssessmentID()
	case retentionaction.FieldType:
		return m.GetType()
	case retentionaction.FieldDescription:
		return m.Description()
	case retentionaction.FieldStatus:
		return m.Status()
	case retentionaction.FieldPriority:
		return m.Priority()
	case retentionaction.FieldCreatedBy:
		return m.CreatedBy()
	case retentionaction.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RetentionActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case retentionaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case retentionaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case retentionaction.FieldMemberID:
		return m.OldMemberID(ctx)
	case retentionaction.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case retentionaction.FieldType:
		return m.OldType(ctx)
	case retentionaction.FieldDescription:
		return m.OldDescription(ctx)
	case retentionaction.FieldStatus:
		return m.OldStatus(ctx)
	case retentionaction.FieldPriority:
		return m.OldPriority(ctx)
	case retentionaction.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case retentionaction.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RetentionAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RetentionActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case retentionaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case retentionaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case retentionaction.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case retentionaction.FieldAssessmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case retentionaction.FieldType:
		v, ok := value.(retentionaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case retentionaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case retentionaction.FieldStatus:
		v, ok := value.(retentionaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case retentionaction.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case retentionaction.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case retentionaction.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RetentionAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RetentionActionMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, retentionaction.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RetentionActionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case retentionaction.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RetentionActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case retentionaction.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown RetentionAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RetentionActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(retentionaction.FieldAssessmentID) {
		fields = append(fields, retentionaction.FieldAssessmentID)
	}
	if m.FieldCleared(retentionaction.FieldCompletedAt) {
		fields = append(fields, retentionaction.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RetentionActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RetentionActionMutation) ClearField(name string) error {
	switch name {
	case retentionaction.FieldAssessmentID:
		m.ClearAssessmentID()
		return nil
	case retentionaction.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RetentionAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RetentionActionMutation) ResetField(name string) error {
	switch name {
	case retentionaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case retentionaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case retentionaction.FieldMemberID:
		m.ResetMemberID()
		return nil
	case retentionaction.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case retentionaction.FieldType:
		m.ResetType()
		return nil
	case retentionaction.FieldDescription:
		m.ResetDescription()
		return nil
	case retentionaction.FieldStatus:
		m.ResetStatus()
		return nil
	case retentionaction.FieldPriority:
		m.ResetPriority()
		return nil
	case retentionaction.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case retentionaction.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RetentionAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RetentionActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RetentionActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RetentionActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RetentionActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RetentionActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RetentionActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RetentionActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RetentionAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RetentionActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RetentionAction edge %s", name)
}

// RiskAssessmentMutation represents an operation that mutates the RiskAssessment nodes in the graph.
type RiskAssessmentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	member_id            *uuid.UUID
	predicted_at         *time.Time
	churn_probability    *float64
	addchurn_probability *float64
	confidence           *float64
	addconfidence        *float64
	tier                 *riskassessment.Tier
	factors              *[]types.RiskFactor
	appendfactors        []types.RiskFactor
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*RiskAssessment, error)
	predicates           []predicate.RiskAssessment
}

var _ ent.Mutation = (*RiskAssessmentMutation)(nil)

// riskassessmentOption allows management of the mutation configuration using functional options.
type riskassessmentOption func(*RiskAssessmentMutation)

// newRiskAssessmentMutation creates new mutation for the RiskAssessment entity.
func newRiskAssessmentMutation(c config, op Op, opts ...riskassessmentOption) *RiskAssessmentMutation {
	m := &RiskAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeRiskAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRiskAssessmentID sets the ID field of the mutation.
func withRiskAssessmentID(id uuid.UUID) riskassessmentOption {
	return func(m *RiskAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *RiskAssessment
		)
		m.oldValue = func(ctx context.Context) (*RiskAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RiskAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRiskAssessment sets the old RiskAssessment of the mutation.
func withRiskAssessment(node *RiskAssessment) riskassessmentOption {
	return func(m *RiskAssessmentMutation) {
		m.oldValue = func(context.Context) (*RiskAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RiskAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RiskAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RiskAssessment entities.
func (m *RiskAssessmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RiskAssessmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RiskAssessmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RiskAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RiskAssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RiskAssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RiskAssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RiskAssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RiskAssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RiskAssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMemberID sets the "member_id" field.
func (m *RiskAssessmentMutation) SetMemberID(u uuid.UUID) {
	m.member_id = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *RiskAssessmentMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *RiskAssessmentMutation) ResetMemberID() {
	m.member_id = nil
}

// SetPredictedAt sets the "predicted_at" field.
func (m *RiskAssessmentMutation) SetPredictedAt(t time.Time) {
	m.predicted_at = &t
}

// PredictedAt returns the value of the "predicted_at" field in the mutation.
func (m *RiskAssessmentMutation) PredictedAt() (r time.Time, exists bool) {
	v := m.predicted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedAt returns the old "predicted_at" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldPredictedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedAt: %w", err)
	}
	return oldValue.PredictedAt, nil
}

// ResetPredictedAt resets all changes to the "predicted_at" field.
func (m *RiskAssessmentMutation) ResetPredictedAt() {
	m.predicted_at = nil
}

// SetChurnProbability sets the "churn_probability" field.
func (m *RiskAssessmentMutation) SetChurnProbability(f float64) {
	m.churn_probability = &f
	m.addchurn_probability = nil
}

// ChurnProbability returns the value of the "churn_probability" field in the mutation.
func (m *RiskAssessmentMutation) ChurnProbability() (r float64, exists bool) {
	v := m.churn_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldChurnProbability returns the old "churn_probability" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldChurnProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChurnProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChurnProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChurnProbability: %w", err)
	}
	return oldValue.ChurnProbability, nil
}

// AddChurnProbability adds f to the "churn_probability" field.
func (m *RiskAssessmentMutation) AddChurnProbability(f float64) {
	if m.addchurn_probability != nil {
		*m.addchurn_probability += f
	} else {
		m.addchurn_probability = &f
	}
}

// AddedChurnProbability returns the value that was added to the "churn_probability" field in this mutation.
func (m *RiskAssessmentMutation) AddedChurnProbability() (r float64, exists bool) {
	v := m.addchurn_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetChurnProbability resets all changes to the "churn_probability" field.
func (m *RiskAssessmentMutation) ResetChurnProbability() {
	m.churn_probability = nil
	m.addchurn_probability = nil
}

// SetConfidence sets the "confidence" field.
func (m *RiskAssessmentMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RiskAssessmentMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RiskAssessmentMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RiskAssessmentMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RiskAssessmentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTier sets the "tier" field.
func (m *RiskAssessmentMutation) SetTier(r riskassessment.Tier) {
	m.tier = &r
}

// Tier returns the value of the "tier" field in the mutation.
func (m *RiskAssessmentMutation) Tier() (r riskassessment.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldTier(ctx context.Context) (v riskassessment.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *RiskAssessmentMutation) ResetTier() {
	m.tier = nil
}

// SetFactors sets the "factors" field.
func (m *RiskAssessmentMutation) SetFactors(tf []types.RiskFactor) {
	m.factors = &tf
	m.appendfactors = nil
}

// Factors returns the value of the "factors" field in the mutation.
func (m *RiskAssessmentMutation) Factors() (r []types.RiskFactor, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the RiskAssessment entity.
// If the RiskAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskAssessmentMutation) OldFactors(ctx context.Context) (v []types.RiskFactor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// AppendFactors adds tf to the "factors" field.
func (m *RiskAssessmentMutation) AppendFactors(tf []types.RiskFactor) {
	m.appendfactors = append(m.appendfactors, tf...)
}

// AppendedFactors returns the list of values that were appended to the "factors" field in this mutation.
func (m *RiskAssessmentMutation) AppendedFactors() ([]types.RiskFactor, bool) {
	if len(m.appendfactors) == 0 {
		return nil, false
	}
	return m.appendfactors, true
}

// ResetFactors resets all changes to the "factors" field.
func (m *RiskAssessmentMutation) ResetFactors() {
	m.factors = nil
	m.appendfactors = nil
}

// Where appends a list predicates to the RiskAssessmentMutation builder.
func (m *RiskAssessmentMutation) Where(ps ...predicate.RiskAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RiskAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RiskAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RiskAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RiskAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RiskAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RiskAssessment).
func (m *RiskAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RiskAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, riskassessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, riskassessment.FieldUpdatedAt)
	}
	if m.member_id != nil {
		fields = append(fields, riskassessment.FieldMemberID)
	}
	if m.predicted_at != nil {
		fields = append(fields, riskassessment.FieldPredictedAt)
	}
	if m.churn_probability != nil {
		fields = append(fields, riskassessment.FieldChurnProbability)
	}
	if m.confidence != nil {
		fields = append(fields, riskassessment.FieldConfidence)
	}
	if m.tier != nil {
		fields = append(fields, riskassessment.FieldTier)
	}
	if m.factors != nil {
		fields = append(fields, riskassessment.FieldFactors)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RiskAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case riskassessment.FieldCreatedAt:
		return m.CreatedAt()
	case riskassessment.FieldUpdatedAt:
		return m.UpdatedAt()
	case riskassessment.FieldMemberID:
		return m.MemberID()
	case riskassessment.FieldPredictedAt:
		return m.PredictedAt()
	case riskassessment.FieldChurnProbability:
		return m.ChurnProbability()
	case riskassessment.FieldConfidence:
		return m.Confidence()
	case riskassessment.FieldTier:
		return m.Tier()
	case riskassessment.FieldFactors:
		return m.Factors()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RiskAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case riskassessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case riskassessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case riskassessment.FieldMemberID:
		return m.OldMemberID(ctx)
	case riskassessment.FieldPredictedAt:
		return m.OldPredictedAt(ctx)
	case riskassessment.FieldChurnProbability:
		return m.OldChurnProbability(ctx)
	case riskassessment.FieldConfidence:
		return m.OldConfidence(ctx)
	case riskassessment.FieldTier:
		return m.OldTier(ctx)
	case riskassessment.FieldFactors:
		return m.OldFactors(ctx)
	}
	return nil, fmt.Errorf("unknown RiskAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case riskassessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case riskassessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case riskassessment.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case riskassessment.FieldPredictedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedAt(v)
		return nil
	case riskassessment.FieldChurnProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChurnProbability(v)
		return nil
	case riskassessment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case riskassessment.FieldTier:
		v, ok := value.(riskassessment.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case riskassessment.FieldFactors:
		v, ok := value.([]types.RiskFactor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	}
	return fmt.Errorf("unknown RiskAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RiskAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addchurn_probability != nil {
		fields = append(fields, riskassessment.FieldChurnProbability)
	}
	if m.addconfidence != nil {
		fields = append(fields, riskassessment.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RiskAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case riskassessment.FieldChurnProbability:
		return m.AddedChurnProbability()
	case riskassessment.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case riskassessment.FieldChurnProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChurnProbability(v)
		return nil
	case riskassessment.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown RiskAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RiskAssessmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RiskAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RiskAssessmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RiskAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RiskAssessmentMutation) ResetField(name string) error {
	switch name {
	case riskassessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case riskassessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case riskassessment.FieldMemberID:
		m.ResetMemberID()
		return nil
	case riskassessment.FieldPredictedAt:
		m.ResetPredictedAt()
		return nil
	case riskassessment.FieldChurnProbability:
		m.ResetChurnProbability()
		return nil
	case riskassessment.FieldConfidence:
		m.ResetConfidence()
		return nil
	case riskassessment.FieldTier:
		m.ResetTier()
		return nil
	case riskassessment.FieldFactors:
		m.ResetFactors()
		return nil
	}
	return fmt.Errorf("unknown RiskAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RiskAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RiskAssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RiskAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RiskAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RiskAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RiskAssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RiskAssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RiskAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RiskAssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RiskAssessment edge %s", name)
}
