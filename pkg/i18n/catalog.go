package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var defaultLocales embed.FS

// DefaultAdapter serves the built-in catalogs for every validator message.
func DefaultAdapter() TranslationAdapter {
	return NewFSAdapter(NewYAMLParser(), defaultLocales, "locales")
}

// DefaultCatalog returns a translator over the built-in catalogs.
func DefaultCatalog(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, DefaultAdapter(), options...)
}

// LayeredAdapter merges the catalogs of several adapters. Later adapters
// override keys of earlier ones, which lets a directory of custom messages
// sit on top of the built-in catalogs.
type LayeredAdapter []TranslationAdapter

func (l LayeredAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, a := range l {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, entries := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeInto(all[lang], entries)
		}
	}
	return all, nil
}
