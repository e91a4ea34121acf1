package responses

type LanguagePreference struct {
	Language  string `json:"language"`
	Direction string `json:"direction"`
}

type ThemePreference struct {
	Theme string `json:"theme"`
}

type Upload struct {
	URL string `json:"url"`
}
