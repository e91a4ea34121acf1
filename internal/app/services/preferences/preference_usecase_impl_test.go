package preferences

import (
	"context"
	"testing"
	"time"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySessions struct {
	sessions map[string]*models.Session
}

func (s *memorySessions) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	s.sessions[session.SessionID] = session
	return nil
}
func (s *memorySessions) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.sessions[sessionID], nil
}
func (s *memorySessions) UpdateSession(ctx context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}
func (s *memorySessions) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type staticTranslator struct{}

func (staticTranslator) Translate(lang, key string, vars ...string) string       { return key }
func (staticTranslator) TranslateWithFallback(lang, key, fallback string) string { return key }
func (staticTranslator) Direction(lang string) string {
	if lang == constvars.LanguageArabic {
		return constvars.DirectionRTL
	}
	return constvars.DirectionLTR
}
func (staticTranslator) Supported(lang string) bool {
	return lang == constvars.LanguageEnglish || lang == constvars.LanguageFrench || lang == constvars.LanguageArabic
}

func newTestUsecase(sessions *memorySessions) *preferenceUsecase {
	return &preferenceUsecase{
		sessionRepository: sessions,
		translator:        staticTranslator{},
		internalConfig: &config.InternalConfig{
			App: config.App{
				DefaultLanguage: constvars.LanguageEnglish,
				DefaultTheme:    constvars.ThemeLight,
			},
		},
		log: zap.NewNop(),
	}
}

func TestSetLanguage(t *testing.T) {
	t.Run("Arabic persists and reports rtl", func(t *testing.T) {
		sessions := &memorySessions{sessions: map[string]*models.Session{}}
		session := &models.Session{SessionID: "sid-1"}
		sessions.sessions["sid-1"] = session

		direction, err := newTestUsecase(sessions).SetLanguage(context.Background(), session, constvars.LanguageArabic)
		require.NoError(t, err)
		assert.Equal(t, constvars.DirectionRTL, direction)
		assert.Equal(t, constvars.LanguageArabic, sessions.sessions["sid-1"].Language)
	})

	t.Run("Unsupported language is rejected without persisting", func(t *testing.T) {
		sessions := &memorySessions{sessions: map[string]*models.Session{}}
		session := &models.Session{SessionID: "sid-1"}
		sessions.sessions["sid-1"] = session

		_, err := newTestUsecase(sessions).SetLanguage(context.Background(), session, "de")
		require.Error(t, err)
		assert.Empty(t, session.Language)
	})
}

func TestSetTheme(t *testing.T) {
	t.Run("Explicit choice wins", func(t *testing.T) {
		sessions := &memorySessions{sessions: map[string]*models.Session{}}
		session := &models.Session{SessionID: "sid-1", Theme: constvars.ThemeLight}
		sessions.sessions["sid-1"] = session

		theme, err := newTestUsecase(sessions).SetTheme(context.Background(), session, constvars.ThemeDark, constvars.ThemeLight)
		require.NoError(t, err)
		assert.Equal(t, constvars.ThemeDark, theme)
		assert.Equal(t, constvars.ThemeDark, sessions.sessions["sid-1"].Theme)
	})

	t.Run("Stored theme beats the platform preference", func(t *testing.T) {
		sessions := &memorySessions{sessions: map[string]*models.Session{}}
		session := &models.Session{SessionID: "sid-1", Theme: constvars.ThemeDark}
		sessions.sessions["sid-1"] = session

		theme, err := newTestUsecase(sessions).SetTheme(context.Background(), session, "", constvars.ThemeLight)
		require.NoError(t, err)
		assert.Equal(t, constvars.ThemeDark, theme)
	})

	t.Run("Platform preference seeds the first value", func(t *testing.T) {
		sessions := &memorySessions{sessions: map[string]*models.Session{}}
		session := &models.Session{SessionID: "sid-1"}
		sessions.sessions["sid-1"] = session

		theme, err := newTestUsecase(sessions).SetTheme(context.Background(), session, "", constvars.ThemeDark)
		require.NoError(t, err)
		assert.Equal(t, constvars.ThemeDark, theme)
		assert.Equal(t, constvars.ThemeDark, sessions.sessions["sid-1"].Theme)
	})

	t.Run("Unknown theme is rejected", func(t *testing.T) {
		sessions := &memorySessions{sessions: map[string]*models.Session{}}
		session := &models.Session{SessionID: "sid-1"}
		sessions.sessions["sid-1"] = session

		_, err := newTestUsecase(sessions).SetTheme(context.Background(), session, "sepia", "")
		require.Error(t, err)
	})
}

func TestDefaults(t *testing.T) {
	uc := newTestUsecase(&memorySessions{sessions: map[string]*models.Session{}})

	assert.Equal(t, constvars.LanguageEnglish, uc.Language(nil))
	assert.Equal(t, constvars.ThemeLight, uc.Theme(nil))
	assert.Equal(t, constvars.LanguageFrench, uc.Language(&models.Session{Language: constvars.LanguageFrench}))
	assert.Equal(t, constvars.ThemeDark, uc.Theme(&models.Session{Theme: constvars.ThemeDark}))
}
