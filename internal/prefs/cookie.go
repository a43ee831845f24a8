package prefs

import (
	"net/http"
	"sync"
	"time"
)

// Cookie names. They match the keys the browser console has always used.
const (
	TokenCookie = "jwt_token"
	ThemeCookie = "theme"
)

const themeMaxAge = 365 * 24 * time.Hour

// CookieState reads State from a request and writes changes to its response.
// Reads after a write observe the new value. It is safe for concurrent use by
// the goroutines serving one request.
type CookieState struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	token  string
	theme  Theme
	secure bool
}

// FromRequest builds request-scoped state. secure marks written cookies Secure.
func FromRequest(w http.ResponseWriter, r *http.Request, secure bool) *CookieState {
	s := &CookieState{w: w, theme: ThemeLight, secure: secure}
	if c, err := r.Cookie(TokenCookie); err == nil {
		s.token = c.Value
	}
	if c, err := r.Cookie(ThemeCookie); err == nil {
		s.theme = ParseTheme(c.Value)
	}
	return s
}

func (s *CookieState) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *CookieState) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	http.SetCookie(s.w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearToken expires the token cookie. Only the first call after a token was
// set writes a cookie.
func (s *CookieState) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return nil
	}
	s.token = ""
	http.SetCookie(s.w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieState) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *CookieState) SetTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	http.SetCookie(s.w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(themeMaxAge.Seconds()),
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
