package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

func riskRouter(store *records.MemoryStore) http.Handler {
	h := NewRiskHandler(store, nil)
	r := chi.NewRouter()
	r.Get("/v1/members/{id}/recommended-actions", h.GetRecommendedActions)
	return r
}

func seedAssessment(t *testing.T, store *records.MemoryStore, memberID uuid.UUID, tier types.RiskTier, predictedAt time.Time) types.RiskAssessment {
	t.Helper()
	a, err := store.CreateAssessment(context.Background(), types.RiskAssessment{
		MemberID:         memberID,
		PredictedAt:      predictedAt,
		ChurnProbability: 0.8,
		Confidence:       0.9,
		Tier:             tier,
	})
	if err != nil {
		t.Fatalf("seeding assessment: %v", err)
	}
	return a
}

func TestRiskHandler_RecommendedActions(t *testing.T) {
	store := records.NewMemoryStore()
	m, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Jane Doe", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	older := seedAssessment(t, store, m.ID, types.TierLow, time.Now().AddDate(0, 0, -30))
	latest := seedAssessment(t, store, m.ID, types.TierHigh, time.Now().AddDate(0, 0, -1))
	router := riskRouter(store)

	tests := []struct {
		name   string
		query  string
		wantID uuid.UUID
	}{
		{"defaults to latest", "", latest.ID},
		{"explicit id picks that assessment", "?assessment_id=" + older.ID.String(), older.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/members/"+m.ID.String()+"/recommended-actions"+tt.query, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
			var res struct {
				AssessmentID uuid.UUID       `json:"assessment_id"`
				RiskTier     types.RiskTier  `json:"risk_tier"`
				Actions      json.RawMessage `json:"actions"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if res.AssessmentID != tt.wantID {
				t.Errorf("assessment_id = %s, want %s", res.AssessmentID, tt.wantID)
			}
			if len(res.Actions) == 0 || string(res.Actions) == "null" {
				t.Error("actions missing from response")
			}
		})
	}
}

func TestRiskHandler_RecommendedActionsErrors(t *testing.T) {
	store := records.NewMemoryStore()
	m, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Jane Doe", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	other, _ := store.CreateMember(context.Background(), types.Member{
		Name: "Sam Lee", Status: types.MemberActive, EnrolledAt: time.Now().AddDate(-1, 0, 0),
	})
	otherAssessment := seedAssessment(t, store, other.ID, types.TierLow, time.Now().AddDate(0, 0, -1))
	router := riskRouter(store)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no assessments yet", "", http.StatusNotFound},
		{"unknown assessment id", "?assessment_id=" + uuid.NewString(), http.StatusNotFound},
		{"other member's assessment", "?assessment_id=" + otherAssessment.ID.String(), http.StatusNotFound},
		{"malformed assessment id", "?assessment_id=not-a-uuid", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/members/"+m.ID.String()+"/recommended-actions"+tt.query, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
		})
	}
}
