package api

import (
	"net/http"

	"github.com/okian/claimtrainer/internal/domain/quiz"
)

// SessionsHandler handles quiz session requests.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// createSessionRequest mirrors the OpenAPI schema for POST /api/sessions.
// ClaimID is a pointer so that claim 0 is accepted while a missing id is not.
type createSessionRequest struct {
	ClaimID *int `json:"claim_id" validate:"required,gte=0"`
}

// actionRequest mirrors the OpenAPI schema for POST /api/sessions/{id}/actions.
type actionRequest struct {
	Type    string `json:"type" validate:"required"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// HandleCreate handles POST /api/sessions requests.
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_session"
	var req createSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	view, err := h.deps.StartSession(r.Context(), *req.ClaimID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// HandleGet handles GET /api/sessions/{id} requests.
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.deps.Session(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "api.get_session", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleAction handles POST /api/sessions/{id}/actions requests.
func (h *SessionsHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	const op = "api.session_action"
	var req actionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	view, err := h.deps.Apply(r.Context(), r.PathValue("id"), quiz.Action{
		Type:    quiz.ActionType(req.Type),
		Value:   req.Value,
		Checked: req.Checked,
	})
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleDelete handles DELETE /api/sessions/{id} requests.
func (h *SessionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.EndSession(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "api.delete_session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
