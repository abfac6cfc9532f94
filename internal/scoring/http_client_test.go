package scoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymops/memberpulse/internal/types"
)

func newTestScorer(t *testing.T, handler http.HandlerFunc) *HTTPScorer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPScorer(srv.URL)
}

func TestHTTPScorer_ScoreMember(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/score", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"churn_probability": 0.85,
			"confidence": 0.9,
			"risk_tier": "high",
			"factors": [{"type": "attendance", "description": "no visits in 21 days", "impact": "high"}]
		}`))
	})

	res, err := s.ScoreMember(context.Background(), Snapshot{MemberID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 0.85, res.Probability)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Equal(t, types.TierHigh, res.Tier)
	require.Len(t, res.Factors, 1)
	assert.Equal(t, types.FactorAttendance, res.Factors[0].Type)
	assert.Equal(t, types.ImpactHigh, res.Factors[0].Impact)
}

func TestHTTPScorer_UpstreamFailureIsScoringError(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	})

	_, err := s.ScoreMember(context.Background(), Snapshot{MemberID: uuid.New()})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestHTTPScorer_MalformedOutputRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"probability out of range", `{"churn_probability": 1.3, "confidence": 0.5}`},
		{"confidence out of range", `{"churn_probability": 0.5, "confidence": -0.1}`},
		{"unknown factor type", `{"churn_probability": 0.5, "confidence": 0.5, "factors": [{"type": "astrology", "description": "x", "impact": "high"}]}`},
		{"unknown impact", `{"churn_probability": 0.5, "confidence": 0.5, "factors": [{"type": "payment", "description": "x", "impact": "extreme"}]}`},
		{"unknown tier", `{"churn_probability": 0.5, "confidence": 0.5, "risk_tier": "critical"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := s.ScoreMember(context.Background(), Snapshot{MemberID: uuid.New()})
			require.Error(t, err)
			assert.True(t, IsUnavailable(err), "malformed output must surface as a scoring error")
		})
	}
}

func TestHTTPScorer_NoServiceConfigured(t *testing.T) {
	s := NewHTTPScorer("")
	_, err := s.ScoreMember(context.Background(), Snapshot{MemberID: uuid.New()})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}
