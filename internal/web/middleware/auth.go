package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/itams/internal/prefs"
)

type sessionKey struct{}

// Session returns the cookie state stored by Sessions, or nil outside it.
func Session(ctx context.Context) *prefs.CookieState {
	s, _ := ctx.Value(sessionKey{}).(*prefs.CookieState)
	return s
}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *prefs.CookieState) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// Sessions reads the token and theme cookies of every request into a
// prefs.CookieState bound to its response. secure marks written cookies Secure.
func Sessions(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := prefs.FromRequest(w, r, secure)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireSession redirects to loginPath when the request carries no token or
// the token's exp claim has passed. An expired token cookie is cleared first.
// It must run after Sessions.
func RequireSession(loginPath string, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := Session(r.Context())
			if sess == nil || sess.Token() == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			if prefs.TokenExpired(sess.Token(), now()) {
				slog.Info("auth: session expired",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				_ = sess.ClearToken()
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
