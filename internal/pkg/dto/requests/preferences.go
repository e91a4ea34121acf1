package requests

type SetLanguage struct {
	Language string `json:"language" validate:"required,language"`
}

type SetTheme struct {
	// PlatformPreference is what the browser reports from
	// prefers-color-scheme; it is only consulted when Theme is empty and
	// nothing is stored yet.
	Theme              string `json:"theme,omitempty" validate:"omitempty,theme"`
	PlatformPreference string `json:"platform_preference,omitempty" validate:"omitempty,theme"`
}
