package port

import (
	"context"

	"github.com/google/uuid"

	"ndagen/internal/domain"
)

// SessionRepository stores form sessions for the lifetime of the process.
// Implementations return copies so callers never share a *domain.Session.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}
