// Package prefs centralizes the visitor's persisted presentation preferences.
//
// Preferences live in cookies only. A visitor that refuses cookies loses the
// selection for the session; nothing here is fatal.
package prefs

import (
	"net/http"
	"strings"
	"time"
)

// ThemeCookieName stores the visitor's theme preference.
const ThemeCookieName = "theme"

// Theme is a visual presentation mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const cookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// DefaultTheme is used when no valid preference is stored.
const DefaultTheme = ThemeLight

// ParseTheme normalizes a raw value, falling back to the default for
// anything unrecognized.
func ParseTheme(value string) Theme {
	switch Theme(strings.TrimSpace(strings.ToLower(value))) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return DefaultTheme
	}
}

// ReadTheme returns the theme preference stored on the request.
func ReadTheme(r *http.Request) Theme {
	if r == nil {
		return DefaultTheme
	}
	cookie, err := r.Cookie(ThemeCookieName)
	if err != nil || cookie == nil {
		return DefaultTheme
	}
	return ParseTheme(cookie.Value)
}

// WriteTheme persists the theme preference on the response.
func WriteTheme(w http.ResponseWriter, theme Theme) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    string(theme),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// Toggle flips between light and dark.
func Toggle(theme Theme) Theme {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
