// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/okian/claimtrainer/internal/adapters/repository"
	service "github.com/okian/claimtrainer/internal/app"
	"github.com/okian/claimtrainer/internal/domain/claims"
	"github.com/okian/claimtrainer/internal/domain/progress"
	"github.com/okian/claimtrainer/internal/domain/quiz"
)

// Read shapes returned by the service.
type (
	ClaimDetail = service.ClaimDetail
	ListOptions = service.ListOptions
	SessionView = service.SessionView
)

// ClaimsDependencies serves the claims browser and claim detail.
type ClaimsDependencies interface {
	ListClaims(ctx context.Context, q claims.Query) ([]claims.Row, error)
	Claim(ctx context.Context, id int) (ClaimDetail, error)
	Options(ctx context.Context) ListOptions
}

// DashboardDependencies serves the trainee dashboard.
type DashboardDependencies interface {
	Dashboard(ctx context.Context) (progress.Dashboard, error)
}

// SessionDependencies drives quiz sessions.
type SessionDependencies interface {
	StartSession(ctx context.Context, claimID int) (SessionView, error)
	Session(ctx context.Context, id string) (SessionView, error)
	Apply(ctx context.Context, id string, a quiz.Action) (SessionView, error)
	EndSession(ctx context.Context, id string) error
}

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ClaimsDependencies
	DashboardDependencies
	SessionDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	claimsHandler    *ClaimsHandler
	dashboardHandler *DashboardHandler
	sessionsHandler  *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		claimsHandler:    NewClaimsHandler(deps),
		dashboardHandler: NewDashboardHandler(deps),
		sessionsHandler:  NewSessionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /api/claims", MetricsMiddleware(s.claimsHandler.HandleList, "claims"))
	mux.HandleFunc("GET /api/claims/options", MetricsMiddleware(s.claimsHandler.HandleOptions, "claims_options"))
	mux.HandleFunc("GET /api/claims/{id}", MetricsMiddleware(s.claimsHandler.HandleGet, "claim"))

	mux.HandleFunc("GET /api/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))

	mux.HandleFunc("POST /api/sessions", MetricsMiddleware(s.sessionsHandler.HandleCreate, "sessions"))
	mux.HandleFunc("GET /api/sessions/{id}", MetricsMiddleware(s.sessionsHandler.HandleGet, "session"))
	mux.HandleFunc("POST /api/sessions/{id}/actions", MetricsMiddleware(s.sessionsHandler.HandleAction, "session_actions"))
	mux.HandleFunc("DELETE /api/sessions/{id}", MetricsMiddleware(s.sessionsHandler.HandleDelete, "session"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validate checks request bodies the way gin binding does.
var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // validator caches struct metadata

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service and domain errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	status, code := classify(err)
	writeError(w, status, code, Wrap(op, err))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotStarted), errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrClaimNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, quiz.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, quiz.ErrInvalidValue), errors.Is(err, ErrBadRequest),
		errors.Is(err, claims.ErrUnknownColumn), errors.Is(err, claims.ErrUnknownDirection):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
