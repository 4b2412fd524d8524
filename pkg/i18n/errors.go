package i18n

import "errors"

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrNoTranslationFiles = errors.New("no translation files found")

	// ErrInvalidTranslations is returned when loaded catalogs are malformed.
	ErrInvalidTranslations = errors.New("invalid translations")

	// ErrNilAdapter is returned when a translator is created without a source.
	ErrNilAdapter = errors.New("translation adapter is nil")
)
