// Package i18n defines the locales supported across the site and helpers to
// resolve arbitrary language input against them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	// English is the default site locale.
	English = language.MustParse("en")
	// Spanish is the secondary site locale.
	Spanish = language.MustParse("es")
)

var supported = []language.Tag{English, Spanish}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the locales the site can render.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the locale used when no preference is known.
func DefaultTag() language.Tag {
	return English
}

// ParseTag parses a raw language value against the supported locales.
// The bool reports whether the value resolved to a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultTag(), false
	}
	for _, candidate := range supported {
		candidateBase, _ := candidate.Base()
		if base == candidateBase {
			return candidate, true
		}
	}
	return DefaultTag(), false
}

// MatchTags picks the best supported locale for an ordered preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return DefaultTag()
	}
	return supported[index]
}
