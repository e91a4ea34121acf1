package entities

import (
	"context"
	"testing"
	"time"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUpstream struct {
	listData json.RawMessage
	listErr  error
	getData  json.RawMessage
	getErr   error
	delErr   error
}

func (s *stubUpstream) Login(ctx context.Context, email, password string) (*contracts.LoginExchange, error) {
	return nil, nil
}
func (s *stubUpstream) Register(ctx context.Context, payload interface{}) error { return nil }
func (s *stubUpstream) ForgotPassword(ctx context.Context, email string) error { return nil }
func (s *stubUpstream) Logout(ctx context.Context, token string) error { return nil }
func (s *stubUpstream) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	return nil, nil
}
func (s *stubUpstream) UpdateUser(ctx context.Context, token string, userID int, payload interface{}) (*models.User, error) {
	return nil, nil
}
func (s *stubUpstream) ChangePassword(ctx context.Context, token string, userID int, payload interface{}) error {
	return nil
}
func (s *stubUpstream) List(ctx context.Context, token, resource string) (json.RawMessage, error) {
	return s.listData, s.listErr
}
func (s *stubUpstream) GetByID(ctx context.Context, token, resource string, id int) (json.RawMessage, error) {
	return s.getData, s.getErr
}
func (s *stubUpstream) Create(ctx context.Context, token, resource string, payload interface{}) (json.RawMessage, error) {
	return nil, nil
}
func (s *stubUpstream) Update(ctx context.Context, token, resource string, id int, payload interface{}) (json.RawMessage, error) {
	return nil, nil
}
func (s *stubUpstream) Delete(ctx context.Context, token, resource string, id int) error {
	return s.delErr
}

type stubSessions struct {
	stored map[string]*models.Session
}

func (s *stubSessions) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	s.stored[session.SessionID] = session
	return nil
}
func (s *stubSessions) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.stored[sessionID], nil
}
func (s *stubSessions) UpdateSession(ctx context.Context, session *models.Session) error {
	s.stored[session.SessionID] = session
	return nil
}
func (s *stubSessions) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.stored, sessionID)
	return nil
}

func newTestUsecase(upstream *stubUpstream, sessions *stubSessions) *entityUsecase {
	return &entityUsecase{
		upstreamClient:    upstream,
		sessionRepository: sessions,
		log:               zap.NewNop(),
	}
}

func testSession() *models.Session {
	return &models.Session{
		SessionID: "sid-1",
		Token:     "upstream-token",
		User:      &models.User{ID: 7, Role: constvars.OgecRoleDirector, Status: constvars.UserStatusActive},
	}
}

func TestList(t *testing.T) {
	t.Run("Upstream data passes through untouched", func(t *testing.T) {
		upstream := &stubUpstream{listData: json.RawMessage(`[{"id":1,"nom":"Groupe A"}]`)}
		sessions := &stubSessions{stored: map[string]*models.Session{"sid-1": testSession()}}
		uc := newTestUsecase(upstream, sessions)

		data, err := uc.List(context.Background(), testSession(), constvars.ResourceTeams)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"nom":"Groupe A"}]`, string(data))
	})

	t.Run("Rejected token destroys the session", func(t *testing.T) {
		upstream := &stubUpstream{listErr: exceptions.ErrUpstreamUnauthorized(nil)}
		sessions := &stubSessions{stored: map[string]*models.Session{"sid-1": testSession()}}
		uc := newTestUsecase(upstream, sessions)

		_, err := uc.List(context.Background(), testSession(), constvars.ResourceTeams)
		require.Error(t, err)
		assert.Nil(t, sessions.stored["sid-1"])
	})

	t.Run("Other upstream errors keep the session", func(t *testing.T) {
		upstream := &stubUpstream{listErr: exceptions.ErrUpstreamRejected(nil, constvars.StatusUnprocessableEntity, "validation failed")}
		sessions := &stubSessions{stored: map[string]*models.Session{"sid-1": testSession()}}
		uc := newTestUsecase(upstream, sessions)

		_, err := uc.List(context.Background(), testSession(), constvars.ResourceTeams)
		require.Error(t, err)
		assert.NotNil(t, sessions.stored["sid-1"])
	})
}

func TestDelete(t *testing.T) {
	t.Run("Rejected token destroys the session", func(t *testing.T) {
		upstream := &stubUpstream{delErr: exceptions.ErrUpstreamUnauthorized(nil)}
		sessions := &stubSessions{stored: map[string]*models.Session{"sid-1": testSession()}}
		uc := newTestUsecase(upstream, sessions)

		err := uc.Delete(context.Background(), testSession(), constvars.ResourceEnfants, 3)
		require.Error(t, err)
		assert.Nil(t, sessions.stored["sid-1"])
	})
}
