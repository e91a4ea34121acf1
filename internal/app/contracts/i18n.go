package contracts

// Translator resolves dotted-path keys against the per-language
// dictionaries. Translate never fails: an unknown key comes back verbatim.
type Translator interface {
	Translate(lang, key string, vars ...string) string
	TranslateWithFallback(lang, key, fallback string) string
	Direction(lang string) string
	Supported(lang string) bool
}
