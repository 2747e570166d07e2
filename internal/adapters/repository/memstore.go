package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/google/uuid"
	"github.com/okian/claimtrainer/internal/domain/quiz"
	"github.com/okian/claimtrainer/pkg/metrics"
)

const defaultMaxSessions = 10000

// MemoryStore is an LRU-bounded in-memory Store.
type MemoryStore struct {
	mu          sync.Mutex
	cache       *lru.Cache
	maxSessions int
	now         func() time.Time
	// deleting suppresses eviction accounting for explicit deletes.
	deleting bool
}

// NewMemoryStore creates a session store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		maxSessions: defaultMaxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = lru.New(s.maxSessions)
	s.cache.OnEvicted = func(lru.Key, interface{}) {
		if !s.deleting {
			metrics.RecordSessionEvicted()
		}
	}
	return s
}

// Create stores a new session.
func (s *MemoryStore) Create(ctx context.Context, claimID int, state quiz.State) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	now := s.now()
	sess := Session{
		ID:        uuid.NewString(),
		ClaimID:   claimID,
		State:     state,
		StartedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(sess.ID, sess)
	metrics.RecordSessionStarted()
	metrics.UpdateSessionsActive(s.cache.Len())
	return sess, nil
}

// Get returns a session by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(id)
}

// Update applies fn while holding the store lock.
func (s *MemoryStore) Update(ctx context.Context, id string, fn UpdateFunc) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, fmt.Errorf("update session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	if next.ID != cur.ID || next.ClaimID != cur.ClaimID {
		return cur, fmt.Errorf("%w: id or claim changed", ErrInvalidState)
	}
	next.StartedAt = cur.StartedAt
	next.UpdatedAt = s.now()
	s.cache.Add(id, next)
	return next, nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.deleting = true
	s.cache.Remove(id)
	s.deleting = false
	metrics.UpdateSessionsActive(s.cache.Len())
	return nil
}

// Count returns the number of sessions held.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *MemoryStore) lookup(id string) (Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess, ok := v.(Session)
	if !ok {
		return Session{}, fmt.Errorf("%w: %T", ErrInvalidState, v)
	}
	return sess, nil
}
