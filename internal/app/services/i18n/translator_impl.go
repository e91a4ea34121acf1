package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

//go:embed locales/*.json
var localeFS embed.FS

type translator struct {
	// dictionaries[lang] maps flattened dotted-path keys to strings.
	dictionaries map[string]map[string]string
	log          *zap.Logger
}

var (
	translatorInstance contracts.Translator
	onceTranslator     sync.Once
)

// NewTranslator loads the embedded dictionaries once. Nested objects are
// flattened at load into dotted-path keys so every lookup is one map read.
func NewTranslator(log *zap.Logger) (contracts.Translator, error) {
	var loadErr error
	onceTranslator.Do(func() {
		dictionaries := make(map[string]map[string]string, len(constvars.SupportedLanguages))
		for _, lang := range constvars.SupportedLanguages {
			raw, err := localeFS.ReadFile("locales/" + lang + ".json")
			if err != nil {
				loadErr = fmt.Errorf("read locale %s: %w", lang, err)
				return
			}
			var nested map[string]interface{}
			if err := json.Unmarshal(raw, &nested); err != nil {
				loadErr = fmt.Errorf("parse locale %s: %w", lang, err)
				return
			}
			flat := make(map[string]string)
			flatten("", nested, flat)
			dictionaries[lang] = flat
		}
		translatorInstance = &translator{
			dictionaries: dictionaries,
			log:          log,
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return translatorInstance, nil
}

func flatten(prefix string, nested map[string]interface{}, out map[string]string) {
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch typed := value.(type) {
		case string:
			out[path] = typed
		case map[string]interface{}:
			flatten(path, typed, out)
		}
	}
}

// Translate resolves key in lang and substitutes positional {0}, {1}, ...
// placeholders with vars. A missing key comes back verbatim so a typo shows
// up on screen instead of blanking a label.
func (t *translator) Translate(lang, key string, vars ...string) string {
	text, ok := t.lookup(lang, key)
	if !ok {
		return key
	}
	for i, v := range vars {
		text = strings.ReplaceAll(text, fmt.Sprintf("{%d}", i), v)
	}
	return text
}

// TranslateWithFallback behaves like Translate with no vars, except a
// missing key yields fallback instead of the key itself.
func (t *translator) TranslateWithFallback(lang, key, fallback string) string {
	text, ok := t.lookup(lang, key)
	if !ok {
		return fallback
	}
	return text
}

func (t *translator) lookup(lang, key string) (string, bool) {
	dict, ok := t.dictionaries[lang]
	if !ok {
		dict, ok = t.dictionaries[constvars.LanguageEnglish]
		if !ok {
			return "", false
		}
	}
	text, ok := dict[key]
	return text, ok
}

// Direction is rtl for Arabic only.
func (t *translator) Direction(lang string) string {
	if lang == constvars.LanguageArabic {
		return constvars.DirectionRTL
	}
	return constvars.DirectionLTR
}

func (t *translator) Supported(lang string) bool {
	_, ok := t.dictionaries[lang]
	return ok
}
