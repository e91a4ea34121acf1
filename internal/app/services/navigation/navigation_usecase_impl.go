package navigation

import (
	"sync"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
)

var allRoles = []string{
	constvars.OgecRoleDirector,
	constvars.OgecRoleEducateur,
	constvars.OgecRoleChefGroupe,
	constvars.OgecRoleInfirmier,
	constvars.OgecRoleNormal,
	constvars.OgecRolePostman,
	constvars.OgecRoleAnimateurGeneral,
}

// navTable is the one source of truth for both the sidebar menu and the
// per-route allow sets. Order is presentation order. The economat role has
// no gated screens of its own and so appears in no allow set.
var navTable = []models.NavItem{
	{LabelKey: "navigation.dashboard", Icon: "home", Path: "/dashboard", Roles: allRoles},
	{LabelKey: "navigation.posts", Icon: "file-text", Path: "/posts", Roles: allRoles},
	{LabelKey: "navigation.anachids", Icon: "music", Path: "/anachids", Roles: allRoles},
	{LabelKey: "navigation.programs", Icon: "list-video", Path: "/programs", Roles: []string{
		constvars.OgecRoleDirector, constvars.OgecRoleEducateur, constvars.OgecRoleChefGroupe,
		constvars.OgecRoleInfirmier, constvars.OgecRolePostman, constvars.OgecRoleAnimateurGeneral,
	}},
	{LabelKey: "navigation.verifications", Icon: "users", Path: "/verifications", Badge: "!", Roles: []string{
		constvars.OgecRoleDirector,
	}},
	{LabelKey: "navigation.cartesTechniques", Icon: "file-text", Path: "/cartes-techniques", Roles: []string{
		constvars.OgecRoleDirector, constvars.OgecRoleEducateur, constvars.OgecRoleAnimateurGeneral,
	}},
	{LabelKey: "navigation.phases", Icon: "calendar", Path: "/phases", Roles: []string{
		constvars.OgecRoleDirector,
	}},
	{LabelKey: "navigation.teams", Icon: "user-round", Path: "/teams", Roles: []string{
		constvars.OgecRoleDirector, constvars.OgecRoleChefGroupe, constvars.OgecRoleAnimateurGeneral,
	}},
	{LabelKey: "navigation.members", Icon: "users", Path: "/members", Roles: []string{
		constvars.OgecRoleDirector,
	}},
	{LabelKey: "navigation.children", Icon: "user", Path: "/enfants", Roles: []string{
		constvars.OgecRoleDirector, constvars.OgecRoleEducateur, constvars.OgecRoleChefGroupe,
	}},
	{LabelKey: "navigation.maladies", Icon: "pill", Path: "/maladies", Roles: []string{
		constvars.OgecRoleDirector, constvars.OgecRoleInfirmier, constvars.OgecRoleEducateur,
	}},
	{LabelKey: "navigation.hobbies", Icon: "book", Path: "/hobbies", Roles: []string{
		constvars.OgecRoleEducateur,
	}},
	{LabelKey: "transactions.title", Icon: "wallet", Path: "/transactions", Roles: []string{
		constvars.OgecRoleEducateur,
	}},
	{LabelKey: "navigation.profile", Icon: "user", Path: "/profile", Roles: allRoles},
}

type navigationUsecase struct {
	translator contracts.Translator
	// rolesByPath is derived once from navTable.
	rolesByPath map[string][]string
}

var (
	navigationUsecaseInstance contracts.NavigationUsecase
	onceNavigationUsecase     sync.Once
)

func NewNavigationUsecase(translator contracts.Translator) contracts.NavigationUsecase {
	onceNavigationUsecase.Do(func() {
		rolesByPath := make(map[string][]string, len(navTable))
		for _, item := range navTable {
			rolesByPath[item.Path] = item.Roles
		}
		navigationUsecaseInstance = &navigationUsecase{
			translator:  translator,
			rolesByPath: rolesByPath,
		}
	})
	return navigationUsecaseInstance
}

func (uc *navigationUsecase) MenuForRole(role, lang string) []models.NavItem {
	menu := make([]models.NavItem, 0, len(navTable))
	for _, item := range navTable {
		if !containsRole(item.Roles, role) {
			continue
		}
		item.Label = uc.translator.Translate(lang, item.LabelKey)
		menu = append(menu, item)
	}
	return menu
}

func (uc *navigationUsecase) AllowedRoles(path string) ([]string, bool) {
	roles, ok := uc.rolesByPath[path]
	return roles, ok
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
