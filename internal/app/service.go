// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/claimtrainer/internal/adapters/claimsource"
	"github.com/okian/claimtrainer/internal/adapters/repository"
	"github.com/okian/claimtrainer/internal/domain/claims"
	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/progress"
	"github.com/okian/claimtrainer/internal/domain/quiz"
	"github.com/okian/claimtrainer/pkg/logger"
	"github.com/okian/claimtrainer/pkg/metrics"
)

// ClaimSource loads the claims collection.
type ClaimSource interface {
	Load(ctx context.Context) claimsource.Result
}

// Service implements the API dependencies for the training simulator.
type Service struct {
	mu sync.RWMutex

	// Core components
	source   ClaimSource
	sessions repository.Store
	tracker  *progress.Tracker

	// Configuration
	maxSessions int
	sortAllRows bool
	scenarios   []progress.Scenario
	now         func() time.Time

	// State
	started bool
	claims  []model.Claim
	byID    map[int]model.Claim
	origin  string

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		source:      claimsource.New(""),
		tracker:     progress.NewTracker(),
		maxSessions: 10_000,
		scenarios:   progress.DefaultScenarios(),
		now:         time.Now,
		logger:      nil, // Will be replaced when service starts
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the claims collection once and prepares the session store.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting training service...")

	if s.sessions == nil {
		s.sessions = repository.NewMemoryStore(repository.WithMaxSessions(s.maxSessions))
	}

	res := s.source.Load(ctx)
	s.claims = res.Claims
	s.origin = res.Origin
	s.byID = make(map[int]model.Claim, len(res.Claims))
	for _, c := range res.Claims {
		if _, dup := s.byID[c.ID]; dup {
			s.logger.Warn(ctx, "duplicate claim id, keeping first", logger.Int("id", c.ID))
			continue
		}
		s.byID[c.ID] = c
	}

	s.started = true
	s.logger.Info(ctx, "training service started",
		logger.Int("claims", len(s.claims)),
		logger.String("origin", s.origin),
		logger.Int("maxSessions", s.maxSessions),
		logger.Bool("sortAllRows", s.sortAllRows),
	)
	return nil
}

// Stop marks the service stopped. Later calls return ErrNotStarted; the
// session store is kept so a restart resumes open sessions.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "training service stopped")
}

func (s *Service) snapshot() ([]model.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.claims, nil
}

func (s *Service) store() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.sessions, nil
}

func (s *Service) claim(id int) (model.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return model.Claim{}, ErrNotStarted
	}
	c, ok := s.byID[id]
	if !ok {
		return model.Claim{}, fmt.Errorf("%w: %d", ErrClaimNotFound, id)
	}
	return c, nil
}

// ListClaims filters and sorts the claims collection for the browser.
func (s *Service) ListClaims(ctx context.Context, q claims.Query) ([]claims.Row, error) {
	rows, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	metrics.RecordClaimsQuery()
	out := claims.Apply(rows, q, claims.WithSortAllRows(s.sortAllRows))
	s.logger.Debug(ctx, "claims query",
		logger.String("search", q.Search),
		logger.String("category", q.Category),
		logger.String("status", q.Status),
		logger.Int("rows", len(out)),
	)
	return claims.Present(out), nil
}

// Claim returns one claim with its risk analysis.
func (s *Service) Claim(_ context.Context, id int) (ClaimDetail, error) {
	c, err := s.claim(id)
	if err != nil {
		return ClaimDetail{}, err
	}
	return newClaimDetail(c), nil
}

// Options returns the browser's select values and column headers.
func (s *Service) Options(_ context.Context) ListOptions {
	return ListOptions{
		Categories: claims.CategoryOptions,
		Statuses:   claims.StatusOptions,
		Columns:    claims.ColumnTitles,
		RedFlags:   model.RedFlagOptions,
		NextSteps:  model.NextStepOptions,
	}
}

// Dashboard returns scenarios and key metrics.
func (s *Service) Dashboard(_ context.Context) (progress.Dashboard, error) {
	if _, err := s.snapshot(); err != nil {
		return progress.Dashboard{}, err
	}
	return progress.BuildDashboard(s.scenarios, s.tracker.Snapshot()), nil
}

// StartSession begins a quiz on a claim.
func (s *Service) StartSession(ctx context.Context, claimID int) (SessionView, error) {
	c, err := s.claim(claimID)
	if err != nil {
		return SessionView{}, err
	}
	sessions, err := s.store()
	if err != nil {
		return SessionView{}, err
	}
	sess, err := sessions.Create(ctx, claimID, quiz.New())
	if err != nil {
		return SessionView{}, fmt.Errorf("start session: %w", err)
	}
	s.logger.Info(ctx, "quiz session started",
		logger.String("session", sess.ID),
		logger.Int("claim", claimID),
	)
	return newSessionView(sess, c), nil
}

// Session returns a quiz session.
func (s *Service) Session(ctx context.Context, id string) (SessionView, error) {
	sessions, err := s.store()
	if err != nil {
		return SessionView{}, err
	}
	sess, err := sessions.Get(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	c, err := s.claim(sess.ClaimID)
	if err != nil {
		return SessionView{}, err
	}
	return newSessionView(sess, c), nil
}

// Apply runs one quiz action. A successful submit is recorded for the dashboard.
func (s *Service) Apply(ctx context.Context, id string, a quiz.Action) (SessionView, error) {
	sessions, err := s.store()
	if err != nil {
		return SessionView{}, err
	}
	sess, err := sessions.Get(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	c, err := s.claim(sess.ClaimID)
	if err != nil {
		return SessionView{}, err
	}

	updated, err := sessions.Update(ctx, id, func(cur repository.Session) (repository.Session, error) {
		next, err := quiz.Reduce(cur.State, c, a)
		if err != nil {
			return cur, err
		}
		cur.State = next
		return cur, nil
	})
	if err != nil {
		metrics.RecordQuizTransition(string(a.Type), metrics.TransitionRejected)
		if errors.Is(err, quiz.ErrInvalidTransition) || errors.Is(err, quiz.ErrInvalidValue) {
			s.logger.Debug(ctx, "quiz action rejected",
				logger.String("session", id),
				logger.String("action", string(a.Type)),
				logger.Error(err),
			)
		}
		return SessionView{}, err
	}
	metrics.RecordQuizTransition(string(a.Type), metrics.TransitionApplied)

	if a.Type == quiz.Submit && updated.State.Result != nil {
		res := *updated.State.Result
		s.tracker.Record(progress.Outcome{
			ClaimID:    c.ID,
			FraudScore: c.FraudScore,
			Decision:   updated.State.Response.Decision,
			Result:     res,
			Elapsed:    s.now().Sub(updated.StartedAt),
		})
		metrics.RecordEvaluation(string(res.Tier), res.Score)
		s.logger.Info(ctx, "evaluation submitted",
			logger.String("session", id),
			logger.Int("claim", c.ID),
			logger.Int("score", res.Score),
			logger.String("tier", string(res.Tier)),
		)
	}
	return newSessionView(updated, c), nil
}

// EndSession discards a quiz session.
func (s *Service) EndSession(ctx context.Context, id string) error {
	sessions, err := s.store()
	if err != nil {
		return err
	}
	if err := sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug(ctx, "quiz session ended", logger.String("session", id))
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"maxSessions": s.maxSessions,
		"sortAllRows": s.sortAllRows,
		"scenarios":   len(s.scenarios),
	}
	if s.started {
		ctx := context.Background()
		active := s.sessions.Count(ctx)
		snap := s.tracker.Snapshot()

		stats["claims"] = len(s.claims)
		stats["claimsOrigin"] = s.origin
		stats["activeSessions"] = active
		stats["claimsReviewed"] = snap.Metrics.ClaimsReviewed

		metrics.UpdateSessionsActive(active)
		metrics.UpdateClaimsLoaded(len(s.claims))
	}
	return stats
}
