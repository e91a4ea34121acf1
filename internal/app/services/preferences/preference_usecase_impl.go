package preferences

import (
	"context"
	"sync"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type preferenceUsecase struct {
	sessionRepository contracts.SessionRepository
	translator        contracts.Translator
	internalConfig    *config.InternalConfig
	log               *zap.Logger
}

var (
	preferenceUsecaseInstance contracts.PreferenceUsecase
	oncePreferenceUsecase     sync.Once
)

func NewPreferenceUsecase(
	sessionRepository contracts.SessionRepository,
	translator contracts.Translator,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.PreferenceUsecase {
	oncePreferenceUsecase.Do(func() {
		preferenceUsecaseInstance = &preferenceUsecase{
			sessionRepository: sessionRepository,
			translator:        translator,
			internalConfig:    internalConfig,
			log:               log,
		}
	})
	return preferenceUsecaseInstance
}

// SetLanguage persists the choice in the session and returns the layout
// direction the client must apply with it.
func (uc *preferenceUsecase) SetLanguage(ctx context.Context, session *models.Session, lang string) (string, error) {
	if !uc.translator.Supported(lang) {
		return "", exceptions.ErrUnsupportedLanguage(nil)
	}

	session.Language = lang
	if err := uc.sessionRepository.UpdateSession(ctx, session); err != nil {
		return "", err
	}

	uc.log.Info("PreferenceUsecase.SetLanguage succeeded",
		zap.String("session_id", session.SessionID),
		zap.String("language", lang),
	)
	return uc.translator.Direction(lang), nil
}

// SetTheme stores an explicit choice; with no explicit choice and nothing
// stored yet, the browser's platform preference seeds the initial value.
func (uc *preferenceUsecase) SetTheme(ctx context.Context, session *models.Session, theme, platformPreference string) (string, error) {
	if theme == "" {
		if session.Theme != "" {
			return session.Theme, nil
		}
		theme = platformPreference
		if theme == "" {
			theme = uc.internalConfig.App.DefaultTheme
		}
	}
	if !supportedTheme(theme) {
		return "", exceptions.ErrUnsupportedTheme(nil)
	}

	session.Theme = theme
	if err := uc.sessionRepository.UpdateSession(ctx, session); err != nil {
		return "", err
	}

	uc.log.Info("PreferenceUsecase.SetTheme succeeded",
		zap.String("session_id", session.SessionID),
		zap.String("theme", theme),
	)
	return theme, nil
}

func (uc *preferenceUsecase) Language(session *models.Session) string {
	if session != nil && session.Language != "" {
		return session.Language
	}
	return uc.internalConfig.App.DefaultLanguage
}

func (uc *preferenceUsecase) Theme(session *models.Session) string {
	if session != nil && session.Theme != "" {
		return session.Theme
	}
	return uc.internalConfig.App.DefaultTheme
}

func supportedTheme(theme string) bool {
	for _, t := range constvars.SupportedThemes {
		if t == theme {
			return true
		}
	}
	return false
}
