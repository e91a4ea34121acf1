package middlewares

import (
	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository contracts.SessionRepository
	NavigationUsecase contracts.NavigationUsecase
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(
	log *zap.Logger,
	sessionRepository contracts.SessionRepository,
	navigationUsecase contracts.NavigationUsecase,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:               log,
		SessionRepository: sessionRepository,
		NavigationUsecase: navigationUsecase,
		InternalConfig:    internalConfig,
	}
}
