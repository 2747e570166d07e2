package service

import (
	"time"

	"github.com/okian/claimtrainer/internal/adapters/repository"
	"github.com/okian/claimtrainer/internal/domain/progress"
	"github.com/okian/claimtrainer/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClaimSource sets where claims are loaded from on Start.
func WithClaimSource(src ClaimSource) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithSessionStore replaces the in-memory session store.
func WithSessionStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.sessions = store
		}
	}
}

// WithMaxSessions bounds the default session store.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithSortAllRows reproduces the legacy browser sort, which ignored the filter.
func WithSortAllRows(enabled bool) Option {
	return func(s *Service) {
		s.sortAllRows = enabled
	}
}

// WithScenarios sets the dashboard training queue.
func WithScenarios(scenarios []progress.Scenario) Option {
	return func(s *Service) {
		if len(scenarios) > 0 {
			s.scenarios = scenarios
		}
	}
}

// WithClock overrides the time source used to measure response time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
