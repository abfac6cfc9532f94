package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

// ActionHandler implements HTTP handlers for retention actions.
type ActionHandler struct {
	store records.Store
	bus   event.Publisher
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(store records.Store, bus event.Publisher) *ActionHandler {
	if bus == nil {
		bus = event.NopPublisher{}
	}
	return &ActionHandler{store: store, bus: bus}
}

type createActionRequest struct {
	MemberID     string `json:"member_id"`
	AssessmentID string `json:"assessment_id,omitempty"`
	ActionType   string `json:"action_type"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
}

// Create records a manually planned retention action.
func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid member_id")
		return
	}
	actionType, err := types.ParseActionType(req.ActionType)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	if req.Description == "" {
		engineErrorToHTTP(w, &types.ValidationError{Field: "description", Reason: "must not be empty"})
		return
	}
	if req.Priority < 1 {
		engineErrorToHTTP(w, &types.ValidationError{Field: "priority", Reason: "must be 1 or greater"})
		return
	}

	// Member must resolve before we record work against it.
	if _, err := h.store.GetMember(r.Context(), memberID); err != nil {
		engineErrorToHTTP(w, err)
		return
	}

	action := types.RetentionAction{
		MemberID:    memberID,
		Type:        actionType,
		Description: req.Description,
		Status:      types.ActionPending,
		Priority:    req.Priority,
		CreatedBy:   actor(r),
		CreatedAt:   time.Now().UTC(),
	}
	if req.AssessmentID != "" {
		assessmentID, err := uuid.Parse(req.AssessmentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid assessment_id")
			return
		}
		if _, err := h.store.GetAssessment(r.Context(), assessmentID); err != nil {
			engineErrorToHTTP(w, err)
			return
		}
		action.AssessmentID = &assessmentID
	}

	created, err := h.store.CreateAction(r.Context(), action)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	h.bus.Publish(r.Context(), event.NewActionCreated(created))
	writeJSON(w, http.StatusCreated, created)
}

// List returns actions, optionally filtered by member.
func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	pg := parsePagination(r)
	memberID := uuid.Nil
	if raw := r.URL.Query().Get("member_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid member_id: "+raw)
			return
		}
		memberID = id
	}
	items, err := h.store.ListActions(r.Context(), memberID, pg.Limit, pg.Offset)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type updateActionStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an action through its lifecycle. The completion
// timestamp is stamped only on the transition into completed.
func (h *ActionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateActionStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	target, err := types.ParseActionStatus(req.Status)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}

	current, err := h.store.GetAction(r.Context(), id)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	if err := ValidateTransition(actionTransitions, string(current.Status), string(target)); err != nil {
		writeError(w, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		return
	}

	var completedAt *time.Time
	if target == types.ActionCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	updated, err := h.store.UpdateActionStatus(r.Context(), id, target, completedAt)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	h.bus.Publish(r.Context(), event.NewActionStatusChanged(updated, time.Now().UTC()))
	writeJSON(w, http.StatusOK, updated)
}
