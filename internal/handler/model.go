package handler

import (
	"net/http"
	"time"

	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/evaluation"
	"github.com/gymops/memberpulse/internal/records"
)

// ModelHandler implements HTTP handlers for model evaluation.
type ModelHandler struct {
	store     records.Store
	evaluator *evaluation.Evaluator
	policy    func() config.Policy
}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler(store records.Store, evaluator *evaluation.Evaluator, policy func() config.Policy) *ModelHandler {
	if policy == nil {
		policy = func() config.Policy { return config.DefaultPolicy() }
	}
	return &ModelHandler{store: store, evaluator: evaluator, policy: policy}
}

type evaluateRequest struct {
	DaysAgo int `json:"days_ago,omitempty"`
}

// Evaluate grades historical predictions against observed outcomes.
func (h *ModelHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	req := evaluateRequest{DaysAgo: h.policy().EvaluationWindowDays}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
			return
		}
		if req.DaysAgo == 0 {
			req.DaysAgo = h.policy().EvaluationWindowDays
		}
	}

	snap, err := h.evaluator.Evaluate(r.Context(), time.Now().UTC(), req.DaysAgo)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GetMetrics returns the latest persisted evaluation snapshot.
func (h *ModelHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.LatestSnapshot(r.Context())
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
