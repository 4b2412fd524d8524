package validator

import "strings"

// IsChildPath reports whether v is text that never climbs to a parent
// directory, i.e. contains no "..". Non-text values are not child paths.
func IsChildPath(v any) bool {
	s, ok := asString(v)
	return ok && !strings.Contains(s, "..")
}

// IsRelativePath reports whether v is text that is not a rooted path.
// Rooted forms are recognized regardless of the host OS: a leading slash or
// backslash, or a drive letter prefix such as "C:".
func IsRelativePath(v any) bool {
	s, ok := asString(v)
	return ok && !isRooted(s)
}

// HasNoHTTPLink reports whether v is text without a plain "http:" link.
func HasNoHTTPLink(v any) bool {
	s, ok := asString(v)
	return ok && !strings.Contains(s, "http:")
}

func isRooted(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	return len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0])
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ChildPathOnly validates that value points below the current folder.
func ChildPathOnly(field string, value any) Rule {
	return newRule(field, KeyChildPathOnly, func() bool {
		return IsChildPath(value)
	}, nil)
}

// RelativePathOnly validates that value is a relative filesystem path.
func RelativePathOnly(field string, value any) Rule {
	return newRule(field, KeyRelativePathOnly, func() bool {
		return IsRelativePath(value)
	}, nil)
}

func NotHTTPLink(field string, value any) Rule {
	return newRule(field, KeyNotHTTPLink, func() bool {
		return HasNoHTTPLink(value)
	}, nil)
}
