// Package prefs holds the small amount of state that outlives a screen: the
// auth token and the display theme.
//
// The web console keeps both in cookies (CookieState); the CLI keeps them in a
// JSON file (FileStore). Both satisfy State.
package prefs

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Theme is the display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the theme for s. Anything other than "dark" is light.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// State is persisted session state.
type State interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
	Theme() Theme
	SetTheme(t Theme) error
}

// TokenExpired reports whether a JWT's exp claim lies before now. The signature
// is not checked. Tokens that are not JWTs, or carry no exp, never expire here;
// the store remains the authority and answers 401 when it disagrees.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
