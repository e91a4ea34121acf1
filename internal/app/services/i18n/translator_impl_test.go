package i18n

import (
	"testing"

	"ogec-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTranslator(t *testing.T) {
	translator, err := NewTranslator(zap.NewNop())
	require.NoError(t, err)

	t.Run("Resolves dotted paths in every language", func(t *testing.T) {
		assert.Equal(t, "Login", translator.Translate(constvars.LanguageEnglish, "auth.login"))
		assert.Equal(t, "Connexion", translator.Translate(constvars.LanguageFrench, "auth.login"))
		assert.Equal(t, "تسجيل الدخول", translator.Translate(constvars.LanguageArabic, "auth.login"))
	})

	t.Run("Missing key comes back verbatim", func(t *testing.T) {
		assert.Equal(t, "auth.doesNotExist", translator.Translate(constvars.LanguageEnglish, "auth.doesNotExist"))
		assert.Equal(t, "no.such.key", translator.Translate(constvars.LanguageArabic, "no.such.key"))
	})

	t.Run("Positional variables substitute in order", func(t *testing.T) {
		assert.Equal(t, "Welcome, Amina", translator.Translate(constvars.LanguageEnglish, "dashboard.welcome", "Amina"))
		assert.Equal(t, "Bienvenue, Amina", translator.Translate(constvars.LanguageFrench, "dashboard.welcome", "Amina"))
	})

	t.Run("Fallback only fires on missing keys", func(t *testing.T) {
		assert.Equal(t, "Login", translator.TranslateWithFallback(constvars.LanguageEnglish, "auth.login", "Sign in"))
		assert.Equal(t, "Sign in", translator.TranslateWithFallback(constvars.LanguageEnglish, "auth.doesNotExist", "Sign in"))
	})

	t.Run("Unknown language falls back to English", func(t *testing.T) {
		assert.Equal(t, "Login", translator.Translate("de", "auth.login"))
	})

	t.Run("Direction is rtl for Arabic only", func(t *testing.T) {
		assert.Equal(t, constvars.DirectionRTL, translator.Direction(constvars.LanguageArabic))
		assert.Equal(t, constvars.DirectionLTR, translator.Direction(constvars.LanguageEnglish))
		assert.Equal(t, constvars.DirectionLTR, translator.Direction(constvars.LanguageFrench))
		assert.Equal(t, constvars.DirectionLTR, translator.Direction("de"))
	})

	t.Run("Supported languages", func(t *testing.T) {
		assert.True(t, translator.Supported(constvars.LanguageEnglish))
		assert.True(t, translator.Supported(constvars.LanguageFrench))
		assert.True(t, translator.Supported(constvars.LanguageArabic))
		assert.False(t, translator.Supported("de"))
	})
}
