package i18n_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/annotations/pkg/i18n"
	"github.com/dmitrymomot/annotations/pkg/logger"
	"github.com/dmitrymomot/annotations/pkg/validator"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"nested": map[string]any{
				"greeting": "Nested greeting",
				"deep":     map[string]any{"leaf": "Leaf"},
			},
			"number": 42,
		},
		"DE": {
			"hello":   "Hallo",
			"welcome": "Willkommen, %{name}!",
		},
	}}
	translator, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return translator
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("nil translations", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("language codes are normalized", func(t *testing.T) {
		translator := newMapTranslator(t)
		assert.Equal(t, []string{"de", "en"}, translator.SupportedLanguages())
		assert.True(t, translator.HasTranslation("DE", "hello"))
	})

	t.Run("logs loaded languages", func(t *testing.T) {
		var buf bytes.Buffer
		newMapTranslator(t, i18n.WithLogger(logger.New(logger.WithOutput(&buf))))
		assert.Contains(t, buf.String(), "Translations loaded")
		assert.Contains(t, buf.String(), `"component":"i18n"`)
	})
}

func TestTranslator_T(t *testing.T) {
	translator := newMapTranslator(t)

	t.Run("simple key", func(t *testing.T) {
		assert.Equal(t, "Hello", translator.T("en", "hello"))
		assert.Equal(t, "Hallo", translator.T("de", "hello"))
	})

	t.Run("placeholders", func(t *testing.T) {
		assert.Equal(t, "Welcome, Ada!", translator.T("en", "welcome", "name", "Ada"))
		assert.Equal(t, "Welcome, %{name}!", translator.T("en", "welcome"))
		assert.Equal(t, "Welcome, Ada!", translator.T("en", "welcome", "name", "Ada", "dangling"))
	})

	t.Run("nested keys", func(t *testing.T) {
		assert.Equal(t, "Nested greeting", translator.T("en", "nested.greeting"))
		assert.Equal(t, "Leaf", translator.T("en", "nested.deep.leaf"))
	})

	t.Run("regional code falls back to base language", func(t *testing.T) {
		assert.Equal(t, "Hallo", translator.T("de-AT", "hello"))
		assert.Equal(t, "Hallo", translator.T("de_CH", "hello"))
	})

	t.Run("missing key falls back to default language", func(t *testing.T) {
		assert.Equal(t, "Nested greeting", translator.T("de", "nested.greeting"))
		assert.Equal(t, "Hello", translator.T("fr", "hello"))
	})

	t.Run("missing everywhere falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", translator.T("en", "missing.key"))
	})

	t.Run("non-string values are missing", func(t *testing.T) {
		assert.Equal(t, "nested", translator.T("en", "nested"))
		assert.Equal(t, "number", translator.T("en", "number"))
	})

	t.Run("fallback to key disabled", func(t *testing.T) {
		strict := newMapTranslator(t, i18n.WithFallbackToKey(false))
		assert.Equal(t, "", strict.T("en", "missing.key"))
	})

	t.Run("custom default language", func(t *testing.T) {
		german := newMapTranslator(t, i18n.WithDefaultLanguage("de"))
		assert.Equal(t, "Hallo", german.T("fr", "hello"))
		assert.Equal(t, "de", german.DefaultLanguage())
	})
}

func TestTranslator_MissingLogging(t *testing.T) {
	var buf bytes.Buffer
	translator := newMapTranslator(t,
		i18n.WithLogger(logger.New(logger.WithOutput(&buf))),
		i18n.WithMissingTranslationsLogging(true),
	)
	buf.Reset()

	translator.T("en", "missing.key")
	assert.Contains(t, buf.String(), "Translation not found")
	assert.Contains(t, buf.String(), "missing.key")

	t.Run("no logging option silences warnings", func(t *testing.T) {
		var quiet bytes.Buffer
		translator := newMapTranslator(t,
			i18n.WithLogger(logger.New(logger.WithOutput(&quiet))),
			i18n.WithMissingTranslationsLogging(true),
			i18n.WithNoLogging(),
		)
		translator.T("en", "missing.key")
		assert.Empty(t, quiet.String())
	})
}

func TestTranslator_Localize(t *testing.T) {
	translator, err := i18n.DefaultCatalog(context.Background())
	require.NoError(t, err)

	err = validator.Apply(
		validator.ChildPathOnly("Ordner", "../x"),
		validator.OneOrMoreDigits("Passwort", "abc"),
		validator.MinimumAge("Geburtstag", "gestern", 21),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 3)

	t.Run("renders messages in German", func(t *testing.T) {
		got := translator.Localize("de-DE", verrs)
		want := []string{
			"'Ordner' muss auf einen Unterordner verweisen.",
			"'Passwort' muss mindestens eine Ziffer ('0'-'9') enthalten.",
			"Das Datum in 'Geburtstag' muss mindestens 21 Jahre zurückliegen.",
		}
		msgs := make([]string, len(got))
		for i, e := range got {
			msgs[i] = e.Message
		}
		if diff := cmp.Diff(want, msgs); diff != "" {
			t.Errorf("localized messages mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps fields and keys and leaves input untouched", func(t *testing.T) {
		got := translator.Localize("de", verrs)
		for i := range verrs {
			assert.Equal(t, verrs[i].Field, got[i].Field)
			assert.Equal(t, verrs[i].TranslationKey, got[i].TranslationKey)
		}
		assert.Equal(t, "'Ordner' must point to a child folder.", verrs[0].Message)
	})

	t.Run("English matches the built-in messages", func(t *testing.T) {
		got := translator.Localize("en", verrs)
		if diff := cmp.Diff(verrs, got); diff != "" {
			t.Errorf("English catalog drifted from validator messages (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown key keeps original message", func(t *testing.T) {
		custom := validator.ValidationErrors{{Field: "x", Message: "custom", TranslationKey: "validation.custom"}}
		got := translator.Localize("de", custom)
		assert.Equal(t, "custom", got[0].Message)
	})

	t.Run("nil errors", func(t *testing.T) {
		assert.Nil(t, translator.Localize("de", nil))
	})
}

func TestTranslator_LocalizeError(t *testing.T) {
	translator, err := i18n.DefaultCatalog(context.Background())
	require.NoError(t, err)

	t.Run("localizes validation errors", func(t *testing.T) {
		err := validator.Apply(validator.NotHTTPLink("Bio", "http://x"))
		localized := translator.LocalizeError("de", err)
		verrs := validator.ExtractValidationErrors(localized)
		require.Len(t, verrs, 1)
		assert.Equal(t, "'Bio' darf keinen HTTP-Link enthalten.", verrs[0].Message)
	})

	t.Run("passes through other errors", func(t *testing.T) {
		_, cfgErr := validator.BindRequiredWhen(validator.Fields{}, "Missing")
		assert.Equal(t, cfgErr, translator.LocalizeError("de", cfgErr))
		assert.NoError(t, translator.LocalizeError("de", nil))
	})
}

func TestTranslator_Reload(t *testing.T) {
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": {"hello": "Hello"}}}
	translator, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	adapter.Data = map[string]map[string]any{"en": {"hello": "Hi"}}
	require.NoError(t, translator.Reload(context.Background()))
	assert.Equal(t, "Hi", translator.T("en", "hello"))
}
