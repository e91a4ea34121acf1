package redis

import (
	"context"
	"time"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) contracts.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, sessionKey(session.SessionID), jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisStoreSession(err)
	}
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGetNoData(err, sessionID)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

// UpdateSession rewrites the whole session value and keeps whatever TTL the
// key already carries.
func (r *sessionRepository) UpdateSession(ctx context.Context, session *models.Session) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, sessionKey(session.SessionID), jsonValue, redis.KeepTTL).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
