package contracts

import (
	"context"
	"time"

	"ogec-service/internal/app/models"
)

// SessionRepository persists one whole models.Session per key. The value is
// written as a single JSON blob so a reader can never observe a token
// without its user snapshot.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	UpdateSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
}
