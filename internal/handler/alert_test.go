package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/alerting"
	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

func alertRouter(store *records.MemoryStore) http.Handler {
	pol := config.DefaultPolicy()
	gen := alerting.NewGenerator(store, func() config.Policy { return pol }, nil)
	h := NewAlertHandler(store, gen, nil)

	r := chi.NewRouter()
	r.Post("/v1/alerts", h.Create)
	r.Get("/v1/alerts", h.List)
	r.Post("/v1/alerts/generate", h.Generate)
	r.Post("/v1/alerts/dismiss-bulk", h.DismissBulk)
	r.Put("/v1/alerts/{id}/resolve", h.Resolve)
	return r
}

func TestAlertHandler_CreateManual(t *testing.T) {
	store := records.NewMemoryStore()
	m, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Jane Doe", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	router := alertRouter(store)

	body := `{"member_id":"` + m.ID.String() + `","severity":"high","message":"Front desk flagged complaint"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/alerts", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var created types.Alert
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.Condition != types.ConditionManual || created.Status != types.AlertPending {
		t.Errorf("created = %+v, want pending manual alert", created)
	}

	// Same member, still-pending manual alert: conflict.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/alerts", strings.NewReader(body)))
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409: %s", rec.Code, rec.Body)
	}
}

func TestAlertHandler_CreateValidation(t *testing.T) {
	router := alertRouter(records.NewMemoryStore())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown severity", `{"severity":"catastrophic","message":"x"}`, http.StatusBadRequest},
		{"empty message", `{"severity":"low","message":""}`, http.StatusBadRequest},
		{"unknown member", `{"member_id":"` + uuid.NewString() + `","severity":"low","message":"x"}`, http.StatusNotFound},
		{"bad member id", `{"member_id":"not-a-uuid","severity":"low","message":"x"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/alerts", strings.NewReader(tt.body)))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestAlertHandler_GenerateAndList(t *testing.T) {
	store := records.NewMemoryStore()
	m, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Jane Doe", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	store.CreateAttendance(context.Background(), types.AttendanceEvent{
		MemberID: m.ID, OccurredAt: time.Now().AddDate(0, 0, -30),
	})
	router := alertRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/alerts/generate", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body)
	}
	var res alerting.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if res.CreatedCount != 1 {
		t.Fatalf("created = %d, want 1", res.CreatedCount)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/alerts?status=pending", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", rec.Code, rec.Body)
	}
	var alerts []types.Alert
	if err := json.Unmarshal(rec.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(alerts) != 1 {
		t.Errorf("listed = %d alerts, want 1", len(alerts))
	}
}

func TestAlertHandler_ResolveIsTerminal(t *testing.T) {
	store := records.NewMemoryStore()
	m, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Jane Doe", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	a, _ := store.CreateAlert(context.Background(), types.Alert{
		MemberID: &m.ID, Condition: types.ConditionInactivity, Severity: types.SeverityMedium,
	})
	router := alertRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/alerts/"+a.ID.String()+"/resolve", strings.NewReader(`{"status":"resolved"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("resolve status = %d: %s", rec.Code, rec.Body)
	}
	var resolved types.Alert
	if err := json.Unmarshal(rec.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	// A closed alert cannot be flipped to dismissed.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/alerts/"+a.ID.String()+"/resolve", strings.NewReader(`{"status":"dismissed"}`)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("second resolve status = %d, want 409: %s", rec.Code, rec.Body)
	}

	got, err := store.GetAlert(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetAlert: %v", err)
	}
	if got.Status != types.AlertResolved {
		t.Errorf("status = %q, want %q", got.Status, types.AlertResolved)
	}
	if got.ResolvedAt == nil || !got.ResolvedAt.Equal(*resolved.ResolvedAt) {
		t.Errorf("resolved at = %v, want %v (unchanged)", got.ResolvedAt, resolved.ResolvedAt)
	}
}

func TestAlertHandler_DismissBulkSkipsUnknown(t *testing.T) {
	store := records.NewMemoryStore()
	m, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Jane Doe", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	a, _ := store.CreateAlert(context.Background(), types.Alert{
		MemberID: &m.ID, Condition: types.ConditionInactivity, Severity: types.SeverityMedium,
	})
	router := alertRouter(store)

	body := `{"alert_ids":["` + a.ID.String() + `","` + uuid.NewString() + `"]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/alerts/dismiss-bulk", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var res alerting.DismissResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if res.Dismissed != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 1 dismissed, 1 skipped", res)
	}
}
