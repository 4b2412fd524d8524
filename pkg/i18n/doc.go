// Package i18n renders validator messages in other languages.
//
// Every validator.ValidationError carries a translation key such as
// "validation.child_path_only" and the values for its %{name} placeholders.
// A Translator looks the key up in catalogs loaded through a
// TranslationAdapter and renders it for the requested language, falling back
// from a regional code to its base language and then to the default
// language.
//
// Catalogs are YAML or JSON files keyed by language code:
//
//	de:
//	  validation:
//	    child_path_only: "'%{field}' muss auf einen Unterordner verweisen."
//
// English and German catalogs for every validator rule are embedded and
// available through DefaultCatalog. Extra files can be layered on top with
// LayeredAdapter or through Config.Dir.
//
// # Usage
//
//	translator, err := i18n.DefaultCatalog(ctx)
//	if err != nil {
//	    return err
//	}
//
//	lang := translator.Match(r.Header.Get("Accept-Language"))
//	err = validator.Apply(
//	    validator.Over18Required("Birthday", form.Birthday, i18n.AgeOptions(lang)...),
//	    validator.RelativePathOnly("Notes", form.Notes),
//	)
//	return translator.LocalizeError(lang, err)
//
// Translator is safe for concurrent use.
package i18n
