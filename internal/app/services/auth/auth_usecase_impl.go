package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/dto/requests"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	upstreamClient    contracts.UpstreamClient
	sessionRepository contracts.SessionRepository
	internalConfig    *config.InternalConfig
	log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	upstreamClient contracts.UpstreamClient,
	sessionRepository contracts.SessionRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			upstreamClient:    upstreamClient,
			sessionRepository: sessionRepository,
			internalConfig:    internalConfig,
			log:               log,
		}
	})
	return authUsecaseInstance
}

// Login exchanges credentials upstream and, only for an active account,
// persists a session and mints the gateway token. A pending (non-active)
// account returns Pending=true and leaves no trace in the session store.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*contracts.LoginResult, error) {
	uc.log.Info("AuthUsecase.Login called",
		zap.String("email", request.Email),
	)

	exchange, err := uc.upstreamClient.Login(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	if !exchange.User.IsActive() {
		uc.log.Info("AuthUsecase.Login account not active",
			zap.String("email", request.Email),
			zap.String("status", exchange.User.Status),
		)
		return &contracts.LoginResult{Pending: true}, nil
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Token:     exchange.AccessToken,
		User:      exchange.User,
		Language:  uc.internalConfig.App.DefaultLanguage,
		Theme:     uc.internalConfig.App.DefaultTheme,
		CreatedAt: time.Now().UTC(),
	}

	sessionExpiry := time.Duration(uc.internalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.sessionRepository.CreateSession(ctx, session, sessionExpiry); err != nil {
		return nil, err
	}

	gatewayToken, err := utils.GenerateSessionJWT(session.SessionID, uc.internalConfig.JWT.Secret, uc.internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		if deleteErr := uc.sessionRepository.DeleteSession(ctx, session.SessionID); deleteErr != nil {
			uc.log.Warn("AuthUsecase.Login failed to clean up session after token error",
				zap.Error(deleteErr),
			)
		}
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.log.Info("AuthUsecase.Login succeeded",
		zap.String("session_id", session.SessionID),
		zap.String("role", exchange.User.Role),
	)
	return &contracts.LoginResult{
		Token:   gatewayToken,
		User:    exchange.User,
		Session: session,
	}, nil
}

// Register creates the upstream account but never authenticates the
// caller: every new account starts inactive and waits for activation.
func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) error {
	uc.log.Info("AuthUsecase.Register called",
		zap.String("email", request.Email),
		zap.String("role", request.Role),
	)

	if err := uc.upstreamClient.Register(ctx, request); err != nil {
		return err
	}

	uc.log.Info("AuthUsecase.Register succeeded",
		zap.String("email", request.Email),
	)
	return nil
}

// ForgotPassword asks the upstream to mail a reset link. The outcome wording
// is the upstream's concern; the gateway only relays the request.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	uc.log.Info("AuthUsecase.ForgotPassword called",
		zap.String("email", request.Email),
	)

	if err := uc.upstreamClient.ForgotPassword(ctx, request.Email); err != nil {
		return err
	}

	uc.log.Info("AuthUsecase.ForgotPassword succeeded",
		zap.String("email", request.Email),
	)
	return nil
}

// Logout revokes the upstream token best-effort and destroys the session
// unconditionally: an unreachable backend never keeps a browser signed in.
func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	uc.log.Info("AuthUsecase.Logout called",
		zap.String("session_id", session.SessionID),
	)

	if err := uc.upstreamClient.Logout(ctx, session.Token); err != nil {
		uc.log.Warn("AuthUsecase.Logout upstream revocation failed",
			zap.String("session_id", session.SessionID),
			zap.Error(err),
		)
	}

	if err := uc.sessionRepository.DeleteSession(ctx, session.SessionID); err != nil {
		return err
	}

	uc.log.Info("AuthUsecase.Logout succeeded",
		zap.String("session_id", session.SessionID),
	)
	return nil
}

// Resume revalidates a stored session against the backend and refreshes the
// cached user snapshot. Any failure, including an unreachable backend,
// destroys the session so a stale token can never keep a browser signed in.
func (uc *authUsecase) Resume(ctx context.Context, sessionID string) (*models.Session, error) {
	uc.log.Info("AuthUsecase.Resume called",
		zap.String("session_id", sessionID),
	)

	session, err := uc.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	user, err := uc.upstreamClient.CurrentUser(ctx, session.Token)
	if err != nil {
		uc.log.Info("AuthUsecase.Resume revalidation failed, destroying session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		if deleteErr := uc.sessionRepository.DeleteSession(ctx, sessionID); deleteErr != nil {
			uc.log.Warn("AuthUsecase.Resume failed to destroy session",
				zap.String("session_id", sessionID),
				zap.Error(deleteErr),
			)
		}
		return nil, exceptions.ErrInvalidSession(err)
	}

	session.User = user
	if err := uc.sessionRepository.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.log.Info("AuthUsecase.Resume succeeded",
		zap.String("session_id", sessionID),
		zap.String("role", user.Role),
	)
	return session, nil
}

// UpdateProfile refreshes the caller's record upstream and writes the new
// snapshot back into the session. An upstream failure is swallowed after
// logging and reported as no update, so profile edits degrade silently.
func (uc *authUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*models.User, error) {
	uc.log.Info("AuthUsecase.UpdateProfile called",
		zap.String("session_id", session.SessionID),
		zap.Int("user_id", session.User.ID),
	)

	user, err := uc.upstreamClient.UpdateUser(ctx, session.Token, session.User.ID, request)
	if err != nil {
		if isUnauthorized(err) {
			return nil, uc.forceLogout(ctx, session, err)
		}
		uc.log.Warn("AuthUsecase.UpdateProfile upstream update failed",
			zap.String("session_id", session.SessionID),
			zap.Error(err),
		)
		return nil, nil
	}

	session.User = user
	if err := uc.sessionRepository.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.log.Info("AuthUsecase.UpdateProfile succeeded",
		zap.String("session_id", session.SessionID),
	)
	return user, nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error {
	uc.log.Info("AuthUsecase.ChangePassword called",
		zap.String("session_id", session.SessionID),
		zap.Int("user_id", session.User.ID),
	)

	if err := uc.upstreamClient.ChangePassword(ctx, session.Token, session.User.ID, request); err != nil {
		if isUnauthorized(err) {
			return uc.forceLogout(ctx, session, err)
		}
		return err
	}

	uc.log.Info("AuthUsecase.ChangePassword succeeded",
		zap.String("session_id", session.SessionID),
	)
	return nil
}

// forceLogout destroys the session when the upstream stopped honoring its
// token mid-session. The original 401 still travels back to the client.
func (uc *authUsecase) forceLogout(ctx context.Context, session *models.Session, err error) error {
	uc.log.Info("AuthUsecase upstream token rejected, destroying session",
		zap.String("session_id", session.SessionID),
	)
	if deleteErr := uc.sessionRepository.DeleteSession(ctx, session.SessionID); deleteErr != nil {
		uc.log.Warn("AuthUsecase failed to destroy session",
			zap.String("session_id", session.SessionID),
			zap.Error(deleteErr),
		)
	}
	return err
}

func isUnauthorized(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized
}
