package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/annotations/pkg/logger"
	"github.com/dmitrymomot/annotations/pkg/validator"
)

// Translator renders messages from catalogs loaded through an adapter.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.New(logger.WithOutput(io.Discard)),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the catalogs from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		t.logger.ErrorContext(ctx, "Failed to load translations", logger.Component("i18n"), logger.Error(err))
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = normalizeLanguages(translations)
	langs := t.supportedLanguages()
	t.mu.Unlock()

	if len(langs) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
	}
	t.logger.InfoContext(ctx, "Translations loaded", logger.Component("i18n"), logger.Languages(langs))
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, entries := range trans {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if entries == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// normalizeLanguages lower-cases language codes so lookups are case-insensitive.
func normalizeLanguages(trans map[string]map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(trans))
	for lang, entries := range trans {
		key := strings.ToLower(lang)
		if out[key] == nil {
			out[key] = make(map[string]any, len(entries))
		}
		mergeInto(out[key], entries)
	}
	return out
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is missing.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation walks a nested map using a dot-separated key, e.g.
// "validation.child_path_only".
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// lookup finds the template for key in lang, then in its base language
// ("de-at" -> "de"), then in the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, candidate := range t.candidates(lang) {
		langMap, ok := t.translations[candidate]
		if !ok {
			continue
		}
		val, ok := getTranslation(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		default:
			if t.missingLogMode {
				t.logger.Warn("Translation is not a string", logger.Language(candidate), logger.TranslationKey(key), "type", fmt.Sprintf("%T", v))
			}
			return "", false
		}
	}

	if t.missingLogMode {
		t.logger.Warn("Translation not found", logger.Language(lang), logger.TranslationKey(key))
	}
	return "", false
}

func (t *Translator) candidates(lang string) []string {
	lang = strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	out := make([]string, 0, 3)
	if lang != "" {
		out = append(out, lang)
		if idx := strings.Index(lang, "-"); idx > 0 {
			out = append(out, lang[:idx])
		}
	}
	return append(out, strings.ToLower(t.defaultLang))
}

// HasTranslation reports whether key exists in lang itself, without fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[strings.ToLower(lang)]
	if !ok {
		return false
	}
	_, ok = getTranslation(langMap, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from
// key/value pairs in args. An odd trailing argument is ignored.
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
//
// When no translation exists the key itself is returned, or "" when
// fallback to key is disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.Tv(lang, key, params)
}

// Tv is T with placeholder values supplied as a map.
func (t *Translator) Tv(lang, key string, values map[string]any) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return validator.Interpolate(tmpl, values)
}

// Localize returns a copy of errs with every message rendered in lang.
// Errors whose key has no translation keep their original message.
func (t *Translator) Localize(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if errs == nil {
		return nil
	}

	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		out[i] = e
		if e.TranslationKey == "" {
			continue
		}
		if tmpl, ok := t.lookup(lang, e.TranslationKey); ok {
			out[i].Message = validator.Interpolate(tmpl, e.TranslationValues)
		}
	}
	return out
}

// LocalizeError localizes the validation errors carried by err. Other
// errors, and nil, are returned unchanged.
func (t *Translator) LocalizeError(lang string, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}
	return t.Localize(lang, verrs)
}
