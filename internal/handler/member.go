package handler

import (
	"net/http"

	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/types"
)

// MemberHandler exposes read-only member lookups. Member records are owned
// by the membership subsystem; the engine only reads them.
type MemberHandler struct {
	store records.Store
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(store records.Store) *MemberHandler {
	return &MemberHandler{store: store}
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.store.GetMember(r.Context(), id)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	var status types.MemberStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s, err := types.ParseMemberStatus(raw)
		if err != nil {
			engineErrorToHTTP(w, err)
			return
		}
		status = s
	}
	members, err := h.store.ListMembers(r.Context(), status)
	if err != nil {
		engineErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}
