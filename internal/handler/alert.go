package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/alerting"
	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/metrics"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

// AlertHandler implements HTTP handlers for alerts.
type AlertHandler struct {
	store     records.Store
	generator *alerting.Generator
	bus       event.Publisher
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(store records.Store, generator *alerting.Generator, bus event.Publisher) *AlertHandler {
	if bus == nil {
		bus = event.NopPublisher{}
	}
	return &AlertHandler{store: store, generator: generator, bus: bus}
}

// Generate runs both alert conditions against the current population.
func (h *AlertHandler) Generate(w http.ResponseWriter, r *http.Request) {
	res, err := h.generator.Run(r.Context(), time.Now().UTC())
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// List returns alerts, optionally filtered by status.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	pg := parsePagination(r)
	var status types.AlertStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s, err := types.ParseAlertStatus(raw)
		if err != nil {
			engineErrorToHTTP(w, err)
			return
		}
		status = s
	}
	items, err := h.store.ListAlerts(r.Context(), status, pg.Limit, pg.Offset)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createAlertRequest struct {
	MemberID string `json:"member_id,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Create raises a manual alert. A pending manual alert for the same member
// already existing surfaces as a conflict.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	severity, err := types.ParseAlertSeverity(req.Severity)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	if req.Message == "" {
		engineErrorToHTTP(w, &types.ValidationError{Field: "message", Reason: "must not be empty"})
		return
	}

	alert := types.Alert{
		Condition: types.ConditionManual,
		Severity:  severity,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if req.MemberID != "" {
		memberID, err := uuid.Parse(req.MemberID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid member_id")
			return
		}
		if _, err := h.store.GetMember(r.Context(), memberID); err != nil {
			engineErrorToHTTP(w, err)
			return
		}
		alert.MemberID = &memberID
	}

	created, err := h.store.CreateAlert(r.Context(), alert)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	metrics.AlertsRaised.WithLabelValues(string(created.Condition), string(created.Severity)).Inc()
	h.bus.Publish(r.Context(), event.NewAlertRaised(created))
	writeJSON(w, http.StatusCreated, created)
}

type resolveAlertRequest struct {
	Status string `json:"status"`
}

// Resolve closes a single alert as resolved or dismissed.
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	var req resolveAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	status, err := types.ParseAlertStatus(req.Status)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	if status == types.AlertPending {
		engineErrorToHTTP(w, &types.ValidationError{Field: "status", Reason: "must be resolved or dismissed"})
		return
	}

	updated, err := h.store.CloseAlert(r.Context(), id, status, time.Now().UTC())
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type dismissBulkRequest struct {
	AlertIDs []string `json:"alert_ids"`
}

// DismissBulk dismisses a set of alerts, silently skipping unknown ids.
func (h *AlertHandler) DismissBulk(w http.ResponseWriter, r *http.Request) {
	var req dismissBulkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	ids := make([]uuid.UUID, 0, len(req.AlertIDs))
	for _, raw := range req.AlertIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid alert id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	res, err := h.generator.DismissBulk(r.Context(), ids, time.Now().UTC())
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
