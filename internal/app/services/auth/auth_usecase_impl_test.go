package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/dto/requests"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUpstream struct {
	loginExchange *contracts.LoginExchange
	loginErr      error
	registerErr   error
	forgotErr     error
	logoutErr     error
	currentUser   *models.User
	currentErr    error
	updatedUser   *models.User
	updateErr     error
	changeErr     error

	logoutCalled bool
}

func (s *stubUpstream) Login(ctx context.Context, email, password string) (*contracts.LoginExchange, error) {
	return s.loginExchange, s.loginErr
}
func (s *stubUpstream) Register(ctx context.Context, payload interface{}) error {
	return s.registerErr
}
func (s *stubUpstream) ForgotPassword(ctx context.Context, email string) error {
	return s.forgotErr
}
func (s *stubUpstream) Logout(ctx context.Context, token string) error {
	s.logoutCalled = true
	return s.logoutErr
}
func (s *stubUpstream) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	return s.currentUser, s.currentErr
}
func (s *stubUpstream) UpdateUser(ctx context.Context, token string, userID int, payload interface{}) (*models.User, error) {
	return s.updatedUser, s.updateErr
}
func (s *stubUpstream) ChangePassword(ctx context.Context, token string, userID int, payload interface{}) error {
	return s.changeErr
}
func (s *stubUpstream) List(ctx context.Context, token, resource string) (json.RawMessage, error) {
	return nil, nil
}
func (s *stubUpstream) GetByID(ctx context.Context, token, resource string, id int) (json.RawMessage, error) {
	return nil, nil
}
func (s *stubUpstream) Create(ctx context.Context, token, resource string, payload interface{}) (json.RawMessage, error) {
	return nil, nil
}
func (s *stubUpstream) Update(ctx context.Context, token, resource string, id int, payload interface{}) (json.RawMessage, error) {
	return nil, nil
}
func (s *stubUpstream) Delete(ctx context.Context, token, resource string, id int) error {
	return nil
}

type stubSessions struct {
	stored    map[string]*models.Session
	createErr error
	updateErr error
	deleteErr error

	deleted []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{stored: make(map[string]*models.Session)}
}

func (s *stubSessions) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.stored[session.SessionID] = session
	return nil
}
func (s *stubSessions) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.stored[sessionID], nil
}
func (s *stubSessions) UpdateSession(ctx context.Context, session *models.Session) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.stored[session.SessionID] = session
	return nil
}
func (s *stubSessions) DeleteSession(ctx context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	delete(s.stored, sessionID)
	return s.deleteErr
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			DefaultLanguage: constvars.LanguageEnglish,
			DefaultTheme:    constvars.ThemeLight,
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 24,
		},
	}
}

func newTestUsecase(upstreamClient *stubUpstream, sessions *stubSessions) *authUsecase {
	return &authUsecase{
		upstreamClient:    upstreamClient,
		sessionRepository: sessions,
		internalConfig:    testConfig(),
		log:               zap.NewNop(),
	}
}

func activeUser() *models.User {
	return &models.User{ID: 7, Name: "Amina", Email: "amina@ogec.org", Role: constvars.OgecRoleDirector, Status: constvars.UserStatusActive}
}

func TestLogin(t *testing.T) {
	t.Run("Active account gets a session and a parsable token", func(t *testing.T) {
		sessions := newStubSessions()
		uc := newTestUsecase(&stubUpstream{
			loginExchange: &contracts.LoginExchange{User: activeUser(), AccessToken: "upstream-token"},
		}, sessions)

		result, err := uc.Login(context.Background(), &requests.Login{Email: "amina@ogec.org", Password: "secret"})
		require.NoError(t, err)
		assert.False(t, result.Pending)
		assert.NotEmpty(t, result.Token)
		require.NotNil(t, result.Session)

		sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, result.Session.SessionID, sessionID)

		stored := sessions.stored[sessionID]
		require.NotNil(t, stored)
		assert.Equal(t, "upstream-token", stored.Token)
		assert.Equal(t, 7, stored.User.ID)
	})

	t.Run("Pending account persists nothing", func(t *testing.T) {
		user := activeUser()
		user.Status = constvars.UserStatusInactive
		sessions := newStubSessions()
		uc := newTestUsecase(&stubUpstream{
			loginExchange: &contracts.LoginExchange{User: user, AccessToken: "upstream-token"},
		}, sessions)

		result, err := uc.Login(context.Background(), &requests.Login{Email: "amina@ogec.org", Password: "secret"})
		require.NoError(t, err)
		assert.True(t, result.Pending)
		assert.Empty(t, result.Token)
		assert.Nil(t, result.Session)
		assert.Empty(t, sessions.stored)
	})

	t.Run("Upstream rejection passes through and persists nothing", func(t *testing.T) {
		sessions := newStubSessions()
		uc := newTestUsecase(&stubUpstream{
			loginErr: exceptions.ErrInvalidCredentials(nil),
		}, sessions)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "amina@ogec.org", Password: "wrong"})
		require.Error(t, err)
		assert.Empty(t, sessions.stored)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Upstream failure still destroys the session", func(t *testing.T) {
		sessions := newStubSessions()
		session := &models.Session{SessionID: "sid-1", Token: "upstream-token", User: activeUser()}
		sessions.stored["sid-1"] = session

		upstreamClient := &stubUpstream{logoutErr: exceptions.ErrUpstreamUnreachable(errors.New("dial"))}
		uc := newTestUsecase(upstreamClient, sessions)

		err := uc.Logout(context.Background(), session)
		require.NoError(t, err)
		assert.True(t, upstreamClient.logoutCalled)
		assert.Empty(t, sessions.stored)
	})
}

func TestResume(t *testing.T) {
	t.Run("Refreshes the cached user snapshot", func(t *testing.T) {
		sessions := newStubSessions()
		sessions.stored["sid-1"] = &models.Session{SessionID: "sid-1", Token: "upstream-token", User: activeUser()}

		refreshed := activeUser()
		refreshed.Name = "Amina B."
		uc := newTestUsecase(&stubUpstream{currentUser: refreshed}, sessions)

		session, err := uc.Resume(context.Background(), "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "Amina B.", session.User.Name)
		assert.Equal(t, "Amina B.", sessions.stored["sid-1"].User.Name)
	})

	t.Run("Revalidation failure destroys the session", func(t *testing.T) {
		sessions := newStubSessions()
		sessions.stored["sid-1"] = &models.Session{SessionID: "sid-1", Token: "stale", User: activeUser()}

		uc := newTestUsecase(&stubUpstream{currentErr: exceptions.ErrUpstreamUnauthorized(nil)}, sessions)

		_, err := uc.Resume(context.Background(), "sid-1")
		require.Error(t, err)
		assert.Empty(t, sessions.stored)
	})

	t.Run("Unknown session is invalid", func(t *testing.T) {
		uc := newTestUsecase(&stubUpstream{}, newStubSessions())

		_, err := uc.Resume(context.Background(), "missing")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Non-auth upstream failure degrades to no update", func(t *testing.T) {
		sessions := newStubSessions()
		session := &models.Session{SessionID: "sid-1", Token: "upstream-token", User: activeUser()}
		sessions.stored["sid-1"] = session

		uc := newTestUsecase(&stubUpstream{updateErr: exceptions.ErrUpstreamUnreachable(errors.New("dial"))}, sessions)

		user, err := uc.UpdateProfile(context.Background(), session, &requests.UpdateProfile{Name: "New Name"})
		require.NoError(t, err)
		assert.Nil(t, user)
		// session survives a degraded update
		assert.NotEmpty(t, sessions.stored)
	})

	t.Run("Expired token forces logout", func(t *testing.T) {
		sessions := newStubSessions()
		session := &models.Session{SessionID: "sid-1", Token: "stale", User: activeUser()}
		sessions.stored["sid-1"] = session

		uc := newTestUsecase(&stubUpstream{updateErr: exceptions.ErrUpstreamUnauthorized(nil)}, sessions)

		_, err := uc.UpdateProfile(context.Background(), session, &requests.UpdateProfile{Name: "New Name"})
		require.Error(t, err)
		assert.Empty(t, sessions.stored)
	})

	t.Run("Success writes the new snapshot through", func(t *testing.T) {
		sessions := newStubSessions()
		session := &models.Session{SessionID: "sid-1", Token: "upstream-token", User: activeUser()}
		sessions.stored["sid-1"] = session

		updated := activeUser()
		updated.Name = "New Name"
		uc := newTestUsecase(&stubUpstream{updatedUser: updated}, sessions)

		user, err := uc.UpdateProfile(context.Background(), session, &requests.UpdateProfile{Name: "New Name"})
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "New Name", sessions.stored["sid-1"].User.Name)
	})
}
