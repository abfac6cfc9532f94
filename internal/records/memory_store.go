package records

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

// MemoryStore implements Store and Seeder using in-memory maps and slices.
// Intended for demos and testing. No SQLite required.
type MemoryStore struct {
	mu          sync.RWMutex
	members     map[uuid.UUID]types.Member
	attendance  []types.AttendanceEvent
	payments    map[uuid.UUID]types.PaymentRecord
	feedback    []types.FeedbackRecord
	assessments map[uuid.UUID]types.RiskAssessment
	actions     map[uuid.UUID]types.RetentionAction
	alerts      map[uuid.UUID]types.Alert
	openAlerts  map[string]uuid.UUID // open-alert key → pending alert id
	snapshots   []types.MetricsSnapshot
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members:     make(map[uuid.UUID]types.Member),
		payments:    make(map[uuid.UUID]types.PaymentRecord),
		assessments: make(map[uuid.UUID]types.RiskAssessment),
		actions:     make(map[uuid.UUID]types.RetentionAction),
		alerts:      make(map[uuid.UUID]types.Alert),
		openAlerts:  make(map[string]uuid.UUID),
	}
}

var _ Store = (*MemoryStore)(nil)
var _ Seeder = (*MemoryStore)(nil)

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

func (s *MemoryStore) GetMember(_ context.Context, id uuid.UUID) (types.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	if !ok {
		return types.Member{}, &NotFoundError{Entity: "member", ID: id.String()}
	}
	return m, nil
}

func (s *MemoryStore) ListMembers(_ context.Context, status types.MemberStatus) ([]types.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Member, 0, len(s.members))
	for _, m := range s.members {
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// requireMember enforces the signal-reader contract: a non-nil member id
// must resolve. Callers hold at least a read lock.
func (s *MemoryStore) requireMember(id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}
	if _, ok := s.members[id]; !ok {
		return &NotFoundError{Entity: "member", ID: id.String()}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Signal readers
// ---------------------------------------------------------------------------

func (s *MemoryStore) ListAttendance(_ context.Context, memberID uuid.UUID, w Window) ([]types.AttendanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}
	out := []types.AttendanceEvent{}
	for _, e := range s.attendance {
		if memberID != uuid.Nil && e.MemberID != memberID {
			continue
		}
		if !w.Contains(e.OccurredAt) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (s *MemoryStore) LatestAttendance(_ context.Context, memberID uuid.UUID) (*types.AttendanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}
	var latest *types.AttendanceEvent
	for i := range s.attendance {
		e := s.attendance[i]
		if e.MemberID != memberID {
			continue
		}
		if latest == nil || e.OccurredAt.After(latest.OccurredAt) {
			cp := e
			latest = &cp
		}
	}
	return latest, nil
}

func (s *MemoryStore) ListPayments(_ context.Context, memberID uuid.UUID, w Window) ([]types.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}
	out := []types.PaymentRecord{}
	for _, p := range s.payments {
		if memberID != uuid.Nil && p.MemberID != memberID {
			continue
		}
		if !w.Contains(p.DueDate) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.After(out[j].DueDate) })
	return out, nil
}

func (s *MemoryStore) ListFeedback(_ context.Context, memberID uuid.UUID, w Window) ([]types.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireMember(memberID); err != nil {
		return nil, err
	}
	out := []types.FeedbackRecord{}
	for _, f := range s.feedback {
		if memberID != uuid.Nil && f.MemberID != memberID {
			continue
		}
		if !w.Contains(f.SubmittedAt) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *MemoryStore) ListUnpaidPaymentsDueBefore(_ context.Context, cutoff time.Time) ([]types.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []types.PaymentRecord{}
	for _, p := range s.payments {
		if p.Status == types.PaymentPaid || !p.DueDate.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *MemoryStore) MarkPaymentOverdue(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return false, &NotFoundError{Entity: "payment", ID: id.String()}
	}
	if p.Status != types.PaymentPending {
		return false, nil
	}
	p.Status = types.PaymentOverdue
	s.payments[id] = p
	return true, nil
}

// ---------------------------------------------------------------------------
// Risk assessments
// ---------------------------------------------------------------------------

func (s *MemoryStore) CreateAssessment(_ context.Context, a types.RiskAssessment) (types.RiskAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.assessments[a.ID] = a
	return a, nil
}

func (s *MemoryStore) GetAssessment(_ context.Context, id uuid.UUID) (types.RiskAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[id]
	if !ok {
		return types.RiskAssessment{}, &NotFoundError{Entity: "risk assessment", ID: id.String()}
	}
	return a, nil
}

func (s *MemoryStore) LatestAssessment(_ context.Context, memberID uuid.UUID) (types.RiskAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *types.RiskAssessment
	for id := range s.assessments {
		a := s.assessments[id]
		if a.MemberID != memberID {
			continue
		}
		if latest == nil || a.PredictedAt.After(latest.PredictedAt) {
			cp := a
			latest = &cp
		}
	}
	if latest == nil {
		return types.RiskAssessment{}, &NotFoundError{Entity: "risk assessment for member", ID: memberID.String()}
	}
	return *latest, nil
}

func (s *MemoryStore) ListAssessmentsBefore(_ context.Context, cutoff time.Time) ([]types.RiskAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []types.RiskAssessment{}
	for _, a := range s.assessments {
		if a.PredictedAt.Before(cutoff) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PredictedAt.Before(out[j].PredictedAt) })
	return out, nil
}

// ---------------------------------------------------------------------------
// Retention actions
// ---------------------------------------------------------------------------

func (s *MemoryStore) CreateAction(_ context.Context, a types.RetentionAction) (types.RetentionAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.actions[a.ID] = a
	return a, nil
}

func (s *MemoryStore) GetAction(_ context.Context, id uuid.UUID) (types.RetentionAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.actions[id]
	if !ok {
		return types.RetentionAction{}, &NotFoundError{Entity: "retention action", ID: id.String()}
	}
	return a, nil
}

func (s *MemoryStore) ListActions(_ context.Context, memberID uuid.UUID, limit, offset int) ([]types.RetentionAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := []types.RetentionAction{}
	for _, a := range s.actions {
		if memberID != uuid.Nil && a.MemberID != memberID {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, limit, offset), nil
}

func (s *MemoryStore) UpdateActionStatus(_ context.Context, id uuid.UUID, status types.ActionStatus, completedAt *time.Time) (types.RetentionAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actions[id]
	if !ok {
		return types.RetentionAction{}, &NotFoundError{Entity: "retention action", ID: id.String()}
	}
	a.Status = status
	a.CompletedAt = completedAt
	s.actions[id] = a
	return a, nil
}

// ---------------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------------

func (s *MemoryStore) CreateAlert(_ context.Context, a types.Alert) (types.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := openAlertKey(a.MemberID, a.Condition)
	if _, exists := s.openAlerts[key]; exists {
		return types.Alert{}, ErrDuplicateAlert
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.Status = types.AlertPending
	s.alerts[a.ID] = a
	s.openAlerts[key] = a.ID
	return a, nil
}

func (s *MemoryStore) GetAlert(_ context.Context, id uuid.UUID) (types.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[id]
	if !ok {
		return types.Alert{}, &NotFoundError{Entity: "alert", ID: id.String()}
	}
	return a, nil
}

func (s *MemoryStore) HasPendingAlert(_ context.Context, memberID uuid.UUID, cond types.AlertCondition) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var mid *uuid.UUID
	if memberID != uuid.Nil {
		mid = &memberID
	}
	_, ok := s.openAlerts[openAlertKey(mid, cond)]
	return ok, nil
}

func (s *MemoryStore) ListAlerts(_ context.Context, status types.AlertStatus, limit, offset int) ([]types.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := []types.Alert{}
	for _, a := range s.alerts {
		if status != "" && a.Status != status {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, limit, offset), nil
}

func (s *MemoryStore) CloseAlert(_ context.Context, id uuid.UUID, status types.AlertStatus, at time.Time) (types.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return types.Alert{}, &NotFoundError{Entity: "alert", ID: id.String()}
	}
	if a.Status != types.AlertPending {
		return types.Alert{}, ErrAlertClosed
	}
	delete(s.openAlerts, openAlertKey(a.MemberID, a.Condition))
	a.Status = status
	a.ResolvedAt = &at
	s.alerts[id] = a
	return a, nil
}

// ---------------------------------------------------------------------------
// Metrics snapshots
// ---------------------------------------------------------------------------

func (s *MemoryStore) CreateSnapshot(_ context.Context, snap types.MetricsSnapshot) (types.MetricsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	s.snapshots = append(s.snapshots, snap)
	return snap, nil
}

func (s *MemoryStore) LatestSnapshot(_ context.Context) (types.MetricsSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.snapshots) == 0 {
		return types.MetricsSnapshot{}, &NotFoundError{Entity: "metrics snapshot", ID: "latest"}
	}
	latest := s.snapshots[0]
	for _, snap := range s.snapshots[1:] {
		if snap.EvaluatedAt.After(latest.EvaluatedAt) {
			latest = snap
		}
	}
	return latest, nil
}

// ---------------------------------------------------------------------------
// Seeder
// ---------------------------------------------------------------------------

func (s *MemoryStore) CreateMember(_ context.Context, m types.Member) (types.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.members[m.ID] = m
	return m, nil
}

func (s *MemoryStore) CreateAttendance(_ context.Context, e types.AttendanceEvent) (types.AttendanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.attendance = append(s.attendance, e)
	return e, nil
}

func (s *MemoryStore) CreatePayment(_ context.Context, p types.PaymentRecord) (types.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.payments[p.ID] = p
	return p, nil
}

func (s *MemoryStore) CreateFeedback(_ context.Context, f types.FeedbackRecord) (types.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	s.feedback = append(s.feedback, f)
	return f, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		limit = 50
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
