// Package memory holds process-local repositories.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ndagen/internal/domain"
)

// SessionRepo is an in-memory port.SessionRepository. Sessions idle for
// longer than the TTL are removed by a background janitor.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Option configures a SessionRepo.
type Option func(*SessionRepo)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *SessionRepo) { r.now = now }
}

// WithLogger sets the logger used by the janitor.
func WithLogger(logger *zap.Logger) Option {
	return func(r *SessionRepo) { r.logger = logger }
}

// NewSessionRepo creates a repository and starts its janitor. A non-positive
// sweep interval disables the janitor; Sweep may still be called directly.
// Close must be called to stop the janitor.
func NewSessionRepo(ttl, sweepInterval time.Duration, opts ...Option) *SessionRepo {
	r := &SessionRepo{
		sessions: make(map[uuid.UUID]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   zap.NewNop(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if sweepInterval <= 0 {
		close(r.done)
		return r
	}
	go r.janitor(sweepInterval)
	return r
}

func (r *SessionRepo) janitor(interval time.Duration) {
	defer close(r.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("expired sessions removed", zap.Int("count", n))
			}
		}
	}
}

// Close stops the janitor and waits for it to exit.
func (r *SessionRepo) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (r *SessionRepo) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *SessionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *SessionRepo) Update(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
