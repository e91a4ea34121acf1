package contracts

import (
	"context"

	"ogec-service/internal/app/models"
)

type PreferenceUsecase interface {
	SetLanguage(ctx context.Context, session *models.Session, lang string) (direction string, err error)
	SetTheme(ctx context.Context, session *models.Session, theme, platformPreference string) (string, error)
	Language(session *models.Session) string
	Theme(session *models.Session) string
}
