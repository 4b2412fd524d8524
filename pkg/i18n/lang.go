package i18n

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/annotations/pkg/validator"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header parsed by Match.
const maxAcceptLanguageLength = 4096

// Match picks the entry of supported that best serves an Accept-Language
// header value, honoring quality weights and falling back from regional to
// base languages ("de-AT" is served by "de"). It returns fallback when
// nothing matches or the header cannot be parsed.
func Match(acceptLanguage string, supported []string, fallback string) string {
	if acceptLanguage == "" || len(supported) == 0 {
		return fallback
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	names := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		names = append(names, s)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return names[idx]
}

// Match negotiates against the translator's loaded languages.
func (t *Translator) Match(acceptLanguage string) string {
	return Match(acceptLanguage, t.SupportedLanguages(), t.defaultLang)
}

// AgeOptions returns date rule options that read dates the way lang writes
// them. Unparseable codes yield no options.
func AgeOptions(lang string) []validator.AgeOption {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil
	}
	return []validator.AgeOption{validator.WithLocale(tag)}
}
