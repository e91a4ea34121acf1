package utils

import (
	"regexp"

	"ogec-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("ogec_role", validateOgecRole)
	validate.RegisterValidation("language", validateLanguage)
	validate.RegisterValidation("theme", validateTheme)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateOgecRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.OgecRoleDirector,
		constvars.OgecRoleEducateur,
		constvars.OgecRoleChefGroupe,
		constvars.OgecRoleInfirmier,
		constvars.OgecRoleAnimateurGeneral,
		constvars.OgecRoleEconomat,
		constvars.OgecRolePostman,
		constvars.OgecRoleNormal:
		return true
	}
	return false
}

func validateLanguage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.LanguageEnglish, constvars.LanguageFrench, constvars.LanguageArabic:
		return true
	}
	return false
}

func validateTheme(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ThemeLight, constvars.ThemeDark:
		return true
	}
	return false
}
