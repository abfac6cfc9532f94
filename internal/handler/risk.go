package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/retention"
	"github.com/gymops/memberpulse/internal/risk"
	"github.com/gymops/memberpulse/internal/types"
)

// RiskHandler implements HTTP handlers for risk assessments and
// recommendations.
type RiskHandler struct {
	store    records.Store
	assessor *risk.Assessor
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(store records.Store, assessor *risk.Assessor) *RiskHandler {
	return &RiskHandler{store: store, assessor: assessor}
}

// GetLatestAssessment returns the member's most recent risk assessment.
func (h *RiskHandler) GetLatestAssessment(w http.ResponseWriter, r *http.Request) {
	memberID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.store.LatestAssessment(r.Context(), memberID)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// CreateAssessment scores the member now and persists the result.
func (h *RiskHandler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	memberID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.assessor.Assess(r.Context(), memberID, time.Now().UTC())
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Rescore re-assesses the whole active population.
func (h *RiskHandler) Rescore(w http.ResponseWriter, r *http.Request) {
	res, err := h.assessor.RescoreAll(r.Context(), time.Now().UTC())
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetRecommendedActions returns the ordered action list for the member's
// latest assessment, or for a specific one via ?assessment_id=.
func (h *RiskHandler) GetRecommendedActions(w http.ResponseWriter, r *http.Request) {
	memberID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	var (
		assessment types.RiskAssessment
		err        error
	)
	if raw := r.URL.Query().Get("assessment_id"); raw != "" {
		assessmentID, perr := uuid.Parse(raw)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid assessment_id: "+raw)
			return
		}
		assessment, err = h.store.GetAssessment(r.Context(), assessmentID)
		if err == nil && assessment.MemberID != memberID {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "assessment "+raw+" does not belong to member "+memberID.String())
			return
		}
	} else {
		assessment, err = h.store.LatestAssessment(r.Context(), memberID)
	}
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"member_id":     memberID,
		"assessment_id": assessment.ID,
		"risk_tier":     assessment.Tier,
		"actions":       retention.Recommend(assessment),
	})
}
