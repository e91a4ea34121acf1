package contracts

import (
	"context"

	"ogec-service/internal/app/models"

	"github.com/goccy/go-json"
)

// LoginExchange is the unpacked body of a successful upstream credential
// exchange. Both fields are guaranteed non-empty by the client; a response
// missing either is rejected as malformed before this struct is built.
type LoginExchange struct {
	User        *models.User
	AccessToken string
}

// UpstreamClient is the single chokepoint for every call to the OGEC REST
// backend. Implementations attach the bearer token when one is given, apply
// one fixed timeout, and normalize errors into exceptions classes; they
// never retry and never mutate session state themselves.
type UpstreamClient interface {
	Login(ctx context.Context, email, password string) (*LoginExchange, error)
	Register(ctx context.Context, payload interface{}) error
	ForgotPassword(ctx context.Context, email string) error
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, token string, userID int, payload interface{}) (*models.User, error)
	ChangePassword(ctx context.Context, token string, userID int, payload interface{}) error

	List(ctx context.Context, token, resource string) (json.RawMessage, error)
	GetByID(ctx context.Context, token, resource string, id int) (json.RawMessage, error)
	Create(ctx context.Context, token, resource string, payload interface{}) (json.RawMessage, error)
	Update(ctx context.Context, token, resource string, id int, payload interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, token, resource string, id int) error
}
