package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/scoring"
	"github.com/gymops/memberpulse/internal/types"
)

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// parseUUID extracts and validates a UUID path parameter.
func parseUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid UUID: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination extracts page_size and offset from query params.
func parsePagination(r *http.Request) Pagination {
	p := Pagination{Limit: 20, Offset: 0}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Offset = n
		}
	}
	return p
}

// actor returns the acting staff identity, defaulting when the dashboard
// does not send one.
func actor(r *http.Request) string {
	if a := r.Header.Get("X-Actor"); a != "" {
		return a
	}
	return "staff"
}

// engineErrorToHTTP maps engine errors to HTTP responses. Scoring failures
// get their own status so the dashboard can show "prediction unavailable"
// instead of a generic server error.
func engineErrorToHTTP(w http.ResponseWriter, err error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error())
		return
	}
	if records.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if scoring.IsUnavailable(err) {
		log.Printf("scoring unavailable: %v", err)
		writeError(w, http.StatusBadGateway, "PREDICTION_UNAVAILABLE", "prediction unavailable: scoring service failed")
		return
	}
	if errors.Is(err, records.ErrDuplicateAlert) {
		writeError(w, http.StatusConflict, "DUPLICATE_ALERT", err.Error())
		return
	}
	if errors.Is(err, records.ErrAlertClosed) {
		writeError(w, http.StatusConflict, "ALERT_CLOSED", err.Error())
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
