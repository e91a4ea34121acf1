package navigation

import (
	"testing"

	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTranslator echoes the key so menu tests stay independent of the
// dictionaries.
type fixedTranslator struct{}

func (fixedTranslator) Translate(lang, key string, vars ...string) string         { return key }
func (fixedTranslator) TranslateWithFallback(lang, key, fallback string) string   { return key }
func (fixedTranslator) Direction(lang string) string                              { return constvars.DirectionLTR }
func (fixedTranslator) Supported(lang string) bool                                { return true }

func newTestUsecase() *navigationUsecase {
	rolesByPath := make(map[string][]string, len(navTable))
	for _, item := range navTable {
		rolesByPath[item.Path] = item.Roles
	}
	return &navigationUsecase{translator: fixedTranslator{}, rolesByPath: rolesByPath}
}

func menuPaths(menu []models.NavItem) []string {
	paths := make([]string, 0, len(menu))
	for _, item := range menu {
		paths = append(paths, item.Path)
	}
	return paths
}

func TestMenuForRole(t *testing.T) {
	uc := newTestUsecase()

	t.Run("Director sees every screen except hobbies and transactions", func(t *testing.T) {
		paths := menuPaths(uc.MenuForRole(constvars.OgecRoleDirector, constvars.LanguageEnglish))
		assert.Equal(t, []string{
			"/dashboard", "/posts", "/anachids", "/programs", "/verifications",
			"/cartes-techniques", "/phases", "/teams", "/members", "/enfants",
			"/maladies", "/profile",
		}, paths)
	})

	t.Run("Normal member sees only the shared screens", func(t *testing.T) {
		paths := menuPaths(uc.MenuForRole(constvars.OgecRoleNormal, constvars.LanguageEnglish))
		assert.Equal(t, []string{"/dashboard", "/posts", "/anachids", "/profile"}, paths)
	})

	t.Run("Educateur gets hobbies and transactions", func(t *testing.T) {
		paths := menuPaths(uc.MenuForRole(constvars.OgecRoleEducateur, constvars.LanguageEnglish))
		assert.Contains(t, paths, "/hobbies")
		assert.Contains(t, paths, "/transactions")
		assert.NotContains(t, paths, "/verifications")
		assert.NotContains(t, paths, "/phases")
	})

	t.Run("Infirmier gets maladies but not enfants", func(t *testing.T) {
		paths := menuPaths(uc.MenuForRole(constvars.OgecRoleInfirmier, constvars.LanguageEnglish))
		assert.Contains(t, paths, "/maladies")
		assert.NotContains(t, paths, "/enfants")
	})

	t.Run("Economat has no gated screens", func(t *testing.T) {
		paths := menuPaths(uc.MenuForRole(constvars.OgecRoleEconomat, constvars.LanguageEnglish))
		assert.Empty(t, paths)
	})

	t.Run("Verifications badge survives filtering", func(t *testing.T) {
		menu := uc.MenuForRole(constvars.OgecRoleDirector, constvars.LanguageEnglish)
		var badge string
		for _, item := range menu {
			if item.Path == "/verifications" {
				badge = item.Badge
			}
		}
		assert.Equal(t, "!", badge)
	})
}

func TestAllowedRoles(t *testing.T) {
	uc := newTestUsecase()

	t.Run("Gated route reports its allow set", func(t *testing.T) {
		roles, ok := uc.AllowedRoles("/phases")
		require.True(t, ok)
		assert.Equal(t, []string{constvars.OgecRoleDirector}, roles)
	})

	t.Run("Ungated route reports not gated", func(t *testing.T) {
		_, ok := uc.AllowedRoles("/settings")
		assert.False(t, ok)
	})
}
