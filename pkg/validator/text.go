package validator

import (
	"fmt"
	"reflect"
)

// Text renders v the way string interpolation would: strings verbatim,
// Stringers and errors through their methods, anything else through
// fmt.Sprint. Pointers are followed; nil renders as the empty string.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch t := v.(type) {
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	if rv.Kind() == reflect.Pointer {
		return Text(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// isNil reports whether v is nil or a nil pointer, interface, map, slice,
// channel or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// asString reports the string held by v. Only string and *string count as
// text; everything else, nil included, does not.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}
