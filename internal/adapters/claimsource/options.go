package claimsource

import (
	"net/http"
	"time"

	"github.com/okian/claimtrainer/pkg/logger"
)

// Option applies a configuration option to the Source.
type Option func(*Source)

// WithTimeout bounds the single fetch. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger sets the logger used to report fallbacks and dropped records.
func WithLogger(l logger.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.log = l
		}
	}
}
