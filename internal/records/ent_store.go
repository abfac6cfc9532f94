package records

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/ent"
	"github.com/gymops/memberpulse/ent/alert"
	"github.com/gymops/memberpulse/ent/attendanceevent"
	"github.com/gymops/memberpulse/ent/feedbackrecord"
	"github.com/gymops/memberpulse/ent/member"
	"github.com/gymops/memberpulse/ent/metricssnapshot"
	"github.com/gymops/memberpulse/ent/paymentrecord"
	"github.com/gymops/memberpulse/ent/retentionaction"
	"github.com/gymops/memberpulse/ent/riskassessment"
	"github.com/gymops/memberpulse/internal/types"
)

// EntStore implements Store and Seeder on the Ent client. Ent errors are
// translated to the package error types at this boundary so everything above
// it can branch on kind without importing ent.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a new EntStore.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

var _ Store = (*EntStore)(nil)
var _ Seeder = (*EntStore)(nil)

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

func (s *EntStore) GetMember(ctx context.Context, id uuid.UUID) (types.Member, error) {
	m, err := s.client.Member.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.Member{}, &NotFoundError{Entity: "member", ID: id.String()}
		}
		return types.Member{}, err
	}
	return toMember(m), nil
}

func (s *EntStore) ListMembers(ctx context.Context, status types.MemberStatus) ([]types.Member, error) {
	q := s.client.Member.Query().Order(ent.Asc(member.FieldName))
	if status != "" {
		q = q.Where(member.StatusEQ(member.Status(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Member, len(rows))
	for i, m := range rows {
		out[i] = toMember(m)
	}
	return out, nil
}

func (s *EntStore) requireMember(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}
	exists, err := s.client.Member.Query().Where(member.IDEQ(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "member", ID: id.String()}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Signal readers
// ---------------------------------------------------------------------------

func (s *EntStore) ListAttendance(ctx context.Context, memberID uuid.UUID, w Window) ([]types.AttendanceEvent, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}
	q := s.client.AttendanceEvent.Query().Order(ent.Desc(attendanceevent.FieldOccurredAt))
	if memberID != uuid.Nil {
		q = q.Where(attendanceevent.MemberIDEQ(memberID))
	}
	if !w.Since.IsZero() {
		q = q.Where(attendanceevent.OccurredAtGTE(w.Since))
	}
	if !w.Until.IsZero() {
		q = q.Where(attendanceevent.OccurredAtLTE(w.Until))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.AttendanceEvent, len(rows))
	for i, e := range rows {
		out[i] = toAttendance(e)
	}
	return out, nil
}

func (s *EntStore) LatestAttendance(ctx context.Context, memberID uuid.UUID) (*types.AttendanceEvent, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}
	e, err := s.client.AttendanceEvent.Query().
		Where(attendanceevent.MemberIDEQ(memberID)).
		Order(ent.Desc(attendanceevent.FieldOccurredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	ae := toAttendance(e)
	return &ae, nil
}

func (s *EntStore) ListPayments(ctx context.Context, memberID uuid.UUID, w Window) ([]types.PaymentRecord, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}
	q := s.client.PaymentRecord.Query().Order(ent.Desc(paymentrecord.FieldDueDate))
	if memberID != uuid.Nil {
		q = q.Where(paymentrecord.MemberIDEQ(memberID))
	}
	if !w.Since.IsZero() {
		q = q.Where(paymentrecord.DueDateGTE(w.Since))
	}
	if !w.Until.IsZero() {
		q = q.Where(paymentrecord.DueDateLTE(w.Until))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.PaymentRecord, len(rows))
	for i, p := range rows {
		out[i] = toPayment(p)
	}
	return out, nil
}

func (s *EntStore) ListFeedback(ctx context.Context, memberID uuid.UUID, w Window) ([]types.FeedbackRecord, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return nil, err
	}
	q := s.client.FeedbackRecord.Query().Order(ent.Desc(feedbackrecord.FieldSubmittedAt))
	if memberID != uuid.Nil {
		q = q.Where(feedbackrecord.MemberIDEQ(memberID))
	}
	if !w.Since.IsZero() {
		q = q.Where(feedbackrecord.SubmittedAtGTE(w.Since))
	}
	if !w.Until.IsZero() {
		q = q.Where(feedbackrecord.SubmittedAtLTE(w.Until))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.FeedbackRecord, len(rows))
	for i, f := range rows {
		out[i] = toFeedback(f)
	}
	return out, nil
}

func (s *EntStore) ListUnpaidPaymentsDueBefore(ctx context.Context, cutoff time.Time) ([]types.PaymentRecord, error) {
	rows, err := s.client.PaymentRecord.Query().
		Where(
			paymentrecord.StatusIn(paymentrecord.StatusPending, paymentrecord.StatusOverdue),
			paymentrecord.DueDateLT(cutoff),
		).
		Order(ent.Asc(paymentrecord.FieldDueDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.PaymentRecord, len(rows))
	for i, p := range rows {
		out[i] = toPayment(p)
	}
	return out, nil
}

// MarkPaymentOverdue uses a predicate-guarded update so the pending→overdue
// transition is atomic and idempotent: a record that is already overdue (or
// paid) matches nothing and nothing is written.
func (s *EntStore) MarkPaymentOverdue(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.client.PaymentRecord.Query().Where(paymentrecord.IDEQ(id)).Exist(ctx)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, &NotFoundError{Entity: "payment", ID: id.String()}
	}
	n, err := s.client.PaymentRecord.Update().
		Where(
			paymentrecord.IDEQ(id),
			paymentrecord.StatusEQ(paymentrecord.StatusPending),
		).
		SetStatus(paymentrecord.StatusOverdue).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ---------------------------------------------------------------------------
// Risk assessments
// ---------------------------------------------------------------------------

func (s *EntStore) CreateAssessment(ctx context.Context, a types.RiskAssessment) (types.RiskAssessment, error) {
	row, err := s.client.RiskAssessment.Create().
		SetMemberID(a.MemberID).
		SetPredictedAt(a.PredictedAt).
		SetChurnProbability(a.ChurnProbability).
		SetConfidence(a.Confidence).
		SetTier(riskassessment.Tier(a.Tier)).
		SetFactors(a.Factors).
		Save(ctx)
	if err != nil {
		return types.RiskAssessment{}, err
	}
	return toAssessment(row), nil
}

func (s *EntStore) GetAssessment(ctx context.Context, id uuid.UUID) (types.RiskAssessment, error) {
	row, err := s.client.RiskAssessment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.RiskAssessment{}, &NotFoundError{Entity: "risk assessment", ID: id.String()}
		}
		return types.RiskAssessment{}, err
	}
	return toAssessment(row), nil
}

func (s *EntStore) LatestAssessment(ctx context.Context, memberID uuid.UUID) (types.RiskAssessment, error) {
	row, err := s.client.RiskAssessment.Query().
		Where(riskassessment.MemberIDEQ(memberID)).
		Order(ent.Desc(riskassessment.FieldPredictedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.RiskAssessment{}, &NotFoundError{Entity: "risk assessment for member", ID: memberID.String()}
		}
		return types.RiskAssessment{}, err
	}
	return toAssessment(row), nil
}

func (s *EntStore) ListAssessmentsBefore(ctx context.Context, cutoff time.Time) ([]types.RiskAssessment, error) {
	rows, err := s.client.RiskAssessment.Query().
		Where(riskassessment.PredictedAtLT(cutoff)).
		Order(ent.Asc(riskassessment.FieldPredictedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.RiskAssessment, len(rows))
	for i, a := range rows {
		out[i] = toAssessment(a)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Retention actions
// ---------------------------------------------------------------------------

func (s *EntStore) CreateAction(ctx context.Context, a types.RetentionAction) (types.RetentionAction, error) {
	builder := s.client.RetentionAction.Create().
		SetMemberID(a.MemberID).
		SetType(retentionaction.Type(a.Type)).
		SetDescription(a.Description).
		SetStatus(retentionaction.Status(a.Status)).
		SetPriority(a.Priority).
		SetCreatedBy(a.CreatedBy)
	if a.AssessmentID != nil {
		builder.SetAssessmentID(*a.AssessmentID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return types.RetentionAction{}, err
	}
	return toAction(row), nil
}

func (s *EntStore) GetAction(ctx context.Context, id uuid.UUID) (types.RetentionAction, error) {
	row, err := s.client.RetentionAction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.RetentionAction{}, &NotFoundError{Entity: "retention action", ID: id.String()}
		}
		return types.RetentionAction{}, err
	}
	return toAction(row), nil
}

func (s *EntStore) ListActions(ctx context.Context, memberID uuid.UUID, limit, offset int) ([]types.RetentionAction, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.RetentionAction.Query().
		Order(ent.Desc(retentionaction.FieldCreatedAt)).
		Limit(limit).Offset(offset)
	if memberID != uuid.Nil {
		q = q.Where(retentionaction.MemberIDEQ(memberID))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.RetentionAction, len(rows))
	for i, a := range rows {
		out[i] = toAction(a)
	}
	return out, nil
}

func (s *EntStore) UpdateActionStatus(ctx context.Context, id uuid.UUID, status types.ActionStatus, completedAt *time.Time) (types.RetentionAction, error) {
	builder := s.client.RetentionAction.UpdateOneID(id).
		SetStatus(retentionaction.Status(status))
	if completedAt != nil {
		builder.SetCompletedAt(*completedAt)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.RetentionAction{}, &NotFoundError{Entity: "retention action", ID: id.String()}
		}
		return types.RetentionAction{}, err
	}
	return toAction(row), nil
}

// ---------------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------------

func (s *EntStore) CreateAlert(ctx context.Context, a types.Alert) (types.Alert, error) {
	builder := s.client.Alert.Create().
		SetCondition(alert.Condition(a.Condition)).
		SetSeverity(alert.Severity(a.Severity)).
		SetMessage(a.Message).
		SetStatus(alert.StatusPending).
		SetOpenKey(openAlertKey(a.MemberID, a.Condition))
	if a.MemberID != nil {
		builder.SetMemberID(*a.MemberID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		// The unique open_key index is the conditional write: losing the
		// race surfaces as a constraint error, not a duplicate alert.
		if ent.IsConstraintError(err) {
			return types.Alert{}, ErrDuplicateAlert
		}
		return types.Alert{}, err
	}
	return toAlert(row), nil
}

func (s *EntStore) GetAlert(ctx context.Context, id uuid.UUID) (types.Alert, error) {
	row, err := s.client.Alert.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.Alert{}, &NotFoundError{Entity: "alert", ID: id.String()}
		}
		return types.Alert{}, err
	}
	return toAlert(row), nil
}

func (s *EntStore) HasPendingAlert(ctx context.Context, memberID uuid.UUID, cond types.AlertCondition) (bool, error) {
	var mid *uuid.UUID
	if memberID != uuid.Nil {
		mid = &memberID
	}
	return s.client.Alert.Query().
		Where(alert.OpenKeyEQ(openAlertKey(mid, cond))).
		Exist(ctx)
}

func (s *EntStore) ListAlerts(ctx context.Context, status types.AlertStatus, limit, offset int) ([]types.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.Alert.Query().
		Order(ent.Desc(alert.FieldCreatedAt)).
		Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where(alert.StatusEQ(alert.Status(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Alert, len(rows))
	for i, a := range rows {
		out[i] = toAlert(a)
	}
	return out, nil
}

// CloseAlert uses a predicate-guarded update so only a pending alert can
// transition: an alert that already left pending matches nothing, keeping
// the terminal state and its original resolution time.
func (s *EntStore) CloseAlert(ctx context.Context, id uuid.UUID, status types.AlertStatus, at time.Time) (types.Alert, error) {
	n, err := s.client.Alert.Update().
		Where(
			alert.IDEQ(id),
			alert.StatusEQ(alert.StatusPending),
		).
		SetStatus(alert.Status(status)).
		SetResolvedAt(at).
		ClearOpenKey().
		Save(ctx)
	if err != nil {
		return types.Alert{}, err
	}
	if n == 0 {
		exists, err := s.client.Alert.Query().Where(alert.IDEQ(id)).Exist(ctx)
		if err != nil {
			return types.Alert{}, err
		}
		if !exists {
			return types.Alert{}, &NotFoundError{Entity: "alert", ID: id.String()}
		}
		return types.Alert{}, ErrAlertClosed
	}
	row, err := s.client.Alert.Get(ctx, id)
	if err != nil {
		return types.Alert{}, err
	}
	return toAlert(row), nil
}

// ---------------------------------------------------------------------------
// Metrics snapshots
// ---------------------------------------------------------------------------

func (s *EntStore) CreateSnapshot(ctx context.Context, snap types.MetricsSnapshot) (types.MetricsSnapshot, error) {
	row, err := s.client.MetricsSnapshot.Create().
		SetEvaluatedAt(snap.EvaluatedAt).
		SetAccuracy(snap.Accuracy).
		SetPrecision(snap.Precision).
		SetRecall(snap.Recall).
		SetF1(snap.F1).
		SetFeatureImportance(snap.FeatureImportance).
		SetTotalEvaluated(snap.TotalEvaluated).
		Save(ctx)
	if err != nil {
		return types.MetricsSnapshot{}, err
	}
	return toSnapshot(row), nil
}

func (s *EntStore) LatestSnapshot(ctx context.Context) (types.MetricsSnapshot, error) {
	row, err := s.client.MetricsSnapshot.Query().
		Order(ent.Desc(metricssnapshot.FieldEvaluatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return types.MetricsSnapshot{}, &NotFoundError{Entity: "metrics snapshot", ID: "latest"}
		}
		return types.MetricsSnapshot{}, err
	}
	return toSnapshot(row), nil
}

// ---------------------------------------------------------------------------
// Seeder
// ---------------------------------------------------------------------------

func (s *EntStore) CreateMember(ctx context.Context, m types.Member) (types.Member, error) {
	builder := s.client.Member.Create().
		SetName(m.Name).
		SetStatus(member.Status(m.Status)).
		SetEnrolledAt(m.EnrolledAt)
	if m.ID != uuid.Nil {
		builder.SetID(m.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return types.Member{}, err
	}
	return toMember(row), nil
}

func (s *EntStore) CreateAttendance(ctx context.Context, e types.AttendanceEvent) (types.AttendanceEvent, error) {
	row, err := s.client.AttendanceEvent.Create().
		SetMemberID(e.MemberID).
		SetOccurredAt(e.OccurredAt).
		SetSessionType(e.SessionType).
		SetDurationMinutes(e.DurationMinutes).
		Save(ctx)
	if err != nil {
		return types.AttendanceEvent{}, err
	}
	return toAttendance(row), nil
}

func (s *EntStore) CreatePayment(ctx context.Context, p types.PaymentRecord) (types.PaymentRecord, error) {
	builder := s.client.PaymentRecord.Create().
		SetMemberID(p.MemberID).
		SetAmountCents(p.Amount.AmountCents).
		SetCurrency(p.Amount.Currency).
		SetDueDate(p.DueDate).
		SetStatus(paymentrecord.Status(p.Status))
	if p.PaidDate != nil {
		builder.SetPaidDate(*p.PaidDate)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return types.PaymentRecord{}, err
	}
	return toPayment(row), nil
}

func (s *EntStore) CreateFeedback(ctx context.Context, f types.FeedbackRecord) (types.FeedbackRecord, error) {
	row, err := s.client.FeedbackRecord.Create().
		SetMemberID(f.MemberID).
		SetRating(f.Rating).
		SetComment(f.Comment).
		SetSubmittedAt(f.SubmittedAt).
		Save(ctx)
	if err != nil {
		return types.FeedbackRecord{}, err
	}
	return toFeedback(row), nil
}

// ---------------------------------------------------------------------------
// Entity mapping
// ---------------------------------------------------------------------------

func toMember(m *ent.Member) types.Member {
	return types.Member{
		ID:         m.ID,
		Name:       m.Name,
		Status:     types.MemberStatus(m.Status),
		EnrolledAt: m.EnrolledAt,
	}
}

func toAttendance(e *ent.AttendanceEvent) types.AttendanceEvent {
	return types.AttendanceEvent{
		ID:              e.ID,
		MemberID:        e.MemberID,
		OccurredAt:      e.OccurredAt,
		SessionType:     e.SessionType,
		DurationMinutes: e.DurationMinutes,
	}
}

func toPayment(p *ent.PaymentRecord) types.PaymentRecord {
	return types.PaymentRecord{
		ID:       p.ID,
		MemberID: p.MemberID,
		Amount:   types.Money{AmountCents: p.AmountCents, Currency: p.Currency},
		DueDate:  p.DueDate,
		PaidDate: p.PaidDate,
		Status:   types.PaymentStatus(p.Status),
	}
}

func toFeedback(f *ent.FeedbackRecord) types.FeedbackRecord {
	return types.FeedbackRecord{
		ID:          f.ID,
		MemberID:    f.MemberID,
		Rating:      f.Rating,
		Comment:     f.Comment,
		SubmittedAt: f.SubmittedAt,
	}
}

func toAssessment(a *ent.RiskAssessment) types.RiskAssessment {
	return types.RiskAssessment{
		ID:               a.ID,
		MemberID:         a.MemberID,
		PredictedAt:      a.PredictedAt,
		ChurnProbability: a.ChurnProbability,
		Confidence:       a.Confidence,
		Tier:             types.RiskTier(a.Tier),
		Factors:          a.Factors,
	}
}

func toAction(a *ent.RetentionAction) types.RetentionAction {
	return types.RetentionAction{
		ID:           a.ID,
		MemberID:     a.MemberID,
		AssessmentID: a.AssessmentID,
		Type:         types.ActionType(a.Type),
		Description:  a.Description,
		Status:       types.ActionStatus(a.Status),
		Priority:     a.Priority,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
		CompletedAt:  a.CompletedAt,
	}
}

func toAlert(a *ent.Alert) types.Alert {
	return types.Alert{
		ID:         a.ID,
		MemberID:   a.MemberID,
		Condition:  types.AlertCondition(a.Condition),
		Severity:   types.AlertSeverity(a.Severity),
		Message:    a.Message,
		Status:     types.AlertStatus(a.Status),
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}

func toSnapshot(s *ent.MetricsSnapshot) types.MetricsSnapshot {
	return types.MetricsSnapshot{
		ID:                s.ID,
		EvaluatedAt:       s.EvaluatedAt,
		Accuracy:          s.Accuracy,
		Precision:         s.Precision,
		Recall:            s.Recall,
		F1:                s.F1,
		FeatureImportance: s.FeatureImportance,
		TotalEvaluated:    s.TotalEvaluated,
	}
}
