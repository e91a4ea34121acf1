package entities

import (
	"context"
	"errors"
	"sync"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type entityUsecase struct {
	upstreamClient    contracts.UpstreamClient
	sessionRepository contracts.SessionRepository
	log               *zap.Logger
}

var (
	entityUsecaseInstance contracts.EntityUsecase
	onceEntityUsecase     sync.Once
)

func NewEntityUsecase(
	upstreamClient contracts.UpstreamClient,
	sessionRepository contracts.SessionRepository,
	log *zap.Logger,
) contracts.EntityUsecase {
	onceEntityUsecase.Do(func() {
		entityUsecaseInstance = &entityUsecase{
			upstreamClient:    upstreamClient,
			sessionRepository: sessionRepository,
			log:               log,
		}
	})
	return entityUsecaseInstance
}

func (uc *entityUsecase) List(ctx context.Context, session *models.Session, resource string) (json.RawMessage, error) {
	uc.log.Info("EntityUsecase.List called",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingResourceKey, resource),
	)
	data, err := uc.upstreamClient.List(ctx, session.Token, resource)
	if err != nil {
		return nil, uc.forceLogoutOnExpiredToken(ctx, session, err)
	}
	return data, nil
}

func (uc *entityUsecase) Get(ctx context.Context, session *models.Session, resource string, id int) (json.RawMessage, error) {
	uc.log.Info("EntityUsecase.Get called",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Int("id", id),
	)
	data, err := uc.upstreamClient.GetByID(ctx, session.Token, resource, id)
	if err != nil {
		return nil, uc.forceLogoutOnExpiredToken(ctx, session, err)
	}
	return data, nil
}

func (uc *entityUsecase) Create(ctx context.Context, session *models.Session, resource string, payload json.RawMessage) (json.RawMessage, error) {
	uc.log.Info("EntityUsecase.Create called",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingResourceKey, resource),
	)
	data, err := uc.upstreamClient.Create(ctx, session.Token, resource, payload)
	if err != nil {
		return nil, uc.forceLogoutOnExpiredToken(ctx, session, err)
	}
	return data, nil
}

func (uc *entityUsecase) Update(ctx context.Context, session *models.Session, resource string, id int, payload json.RawMessage) (json.RawMessage, error) {
	uc.log.Info("EntityUsecase.Update called",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Int("id", id),
	)
	data, err := uc.upstreamClient.Update(ctx, session.Token, resource, id, payload)
	if err != nil {
		return nil, uc.forceLogoutOnExpiredToken(ctx, session, err)
	}
	return data, nil
}

func (uc *entityUsecase) Delete(ctx context.Context, session *models.Session, resource string, id int) error {
	uc.log.Info("EntityUsecase.Delete called",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Int("id", id),
	)
	if err := uc.upstreamClient.Delete(ctx, session.Token, resource, id); err != nil {
		return uc.forceLogoutOnExpiredToken(ctx, session, err)
	}
	return nil
}

// forceLogoutOnExpiredToken destroys the session when the upstream no
// longer honors its token. The 401 travels back with the login redirect;
// every other error passes through untouched.
func (uc *entityUsecase) forceLogoutOnExpiredToken(ctx context.Context, session *models.Session, err error) error {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) || customErr.StatusCode != constvars.StatusUnauthorized {
		return err
	}

	uc.log.Info("EntityUsecase upstream token rejected, destroying session",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	if deleteErr := uc.sessionRepository.DeleteSession(ctx, session.SessionID); deleteErr != nil {
		uc.log.Warn("EntityUsecase failed to destroy session",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(deleteErr),
		)
	}
	return err
}
