package contracts

import (
	"context"

	"ogec-service/internal/app/models"

	"github.com/goccy/go-json"
)

// EntityUsecase proxies one upstream CRUD resource on behalf of the
// session's user. Payloads pass through as raw JSON; the upstream is the
// source of truth for their shape.
type EntityUsecase interface {
	List(ctx context.Context, session *models.Session, resource string) (json.RawMessage, error)
	Get(ctx context.Context, session *models.Session, resource string, id int) (json.RawMessage, error)
	Create(ctx context.Context, session *models.Session, resource string, payload json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, session *models.Session, resource string, id int, payload json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, session *models.Session, resource string, id int) error
}
