package contracts

import (
	"context"

	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/dto/requests"
)

// LoginResult is the outcome of a credential exchange. Exactly one of the
// two shapes occurs: Pending true with everything else empty (account not
// active, nothing persisted), or Pending false with Token, User and Session
// all set.
type LoginResult struct {
	Token   string
	User    *models.User
	Session *models.Session
	Pending bool
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*LoginResult, error)
	Register(ctx context.Context, request *requests.Register) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	Logout(ctx context.Context, session *models.Session) error
	Resume(ctx context.Context, sessionID string) (*models.Session, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*models.User, error)
	ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error
}
