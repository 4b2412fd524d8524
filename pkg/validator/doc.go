// Package validator provides declarative rules for annotating data model
// fields: path safety, minimum time spans, HTTP link rejection, character
// class requirements for secrets, minimum age checks on dates, and a
// conditional requirement driven by a sibling bool field.
//
// Every rule comes in two shapes. A predicate such as IsChildPath or
// HasDigit answers "is this value valid" for a single value. A constructor
// such as ChildPathOnly or OneOrMoreDigits binds a field name and value into
// a Rule that carries the predicate together with a rendered message and a
// translation key. Rules are evaluated with Apply, which collects failures
// into ValidationErrors.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RelativePathOnly("Notes", form.Notes),
//	    validator.OneOrMoreDigits("Password", form.Password),
//	    validator.OneOrMoreUppercase("Password", form.Password),
//	    validator.OneOrMoreNonAlphanumeric("Password", form.Password),
//	    validator.Over18Required("Birthday", form.Birthday),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// # Conditional requirements
//
// RequiredWhen looks up a sibling field through a FieldAccessor. The sibling
// is resolved when the rule is bound, so a wrong name or type shows up as a
// *ConfigError (ErrFieldNotFound, ErrFieldNotBoolean, ErrFieldNotReadable)
// instead of a failing rule:
//
//	cond, err := validator.BindRequiredWhen(validator.StructFields(&form), "Subscribe")
//	if err != nil {
//	    return err // misdeclared rule
//	}
//	return validator.Apply(cond.Rule("Email", form.Email))
//
// # Messages
//
// Messages use %{name} placeholders and are rendered in English by
// FormatMessage. The translation key and values on each ValidationError let
// package i18n render them in other languages.
//
// Rules keep no state between calls and are safe for concurrent use.
package validator
