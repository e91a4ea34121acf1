package contracts

import "ogec-service/internal/app/models"

type NavigationUsecase interface {
	// MenuForRole returns the nav entries whose allow set contains role,
	// preserving the static table's order, with labels resolved in lang.
	MenuForRole(role, lang string) []models.NavItem
	// AllowedRoles reports the allow set for a gated route path; ok is
	// false for paths the gateway does not gate by role.
	AllowedRoles(path string) (roles []string, ok bool)
}
