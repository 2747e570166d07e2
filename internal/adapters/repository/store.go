// Package repository holds quiz sessions in memory for the lifetime of the process.
package repository

import (
	"context"
	"time"

	"github.com/okian/claimtrainer/internal/domain/quiz"
)

// Session is one trainee's quiz on one claim.
type Session struct {
	ID        string
	ClaimID   int
	State     quiz.State
	StartedAt time.Time
	UpdatedAt time.Time
}

// UpdateFunc derives a new session from the current one. Returning an error
// leaves the stored session unchanged.
type UpdateFunc func(Session) (Session, error)

// Store provides access to quiz sessions.
type Store interface {
	// Create stores a new session for claimID and returns it with a fresh id.
	Create(ctx context.Context, claimID int, state quiz.State) (Session, error)

	// Get returns a session. Returns ErrNotFound if the id is unknown or evicted.
	Get(ctx context.Context, id string) (Session, error)

	// Update applies fn atomically to the stored session.
	Update(ctx context.Context, id string, fn UpdateFunc) (Session, error)

	// Delete discards a session.
	Delete(ctx context.Context, id string) error

	// Count returns the number of sessions held.
	Count(ctx context.Context) int
}
