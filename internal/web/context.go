package web

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/prefs"
	"github.com/JonMunkholm/itams/internal/view"
	"github.com/JonMunkholm/itams/internal/web/middleware"
)

// session returns the request's cookie state.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *prefs.CookieState {
	if sess := middleware.Session(r.Context()); sess != nil {
		return sess
	}
	return prefs.FromRequest(w, r, s.cfg.Security.SecureCookies)
}

// store binds the shared client to the request's session, so a 401 from the
// store clears the token cookie of this response.
func (s *Server) store(w http.ResponseWriter, r *http.Request) view.Store {
	return s.client.With(s.session(w, r))
}

// reauth handles a screen error. ErrUnauthorized clears the session and
// redirects to the login page; any other error is answered with statusCode.
// It reports whether err was non-nil.
func (s *Server) reauth(w http.ResponseWriter, r *http.Request, err error, statusCode int) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, api.ErrUnauthorized) {
		logging.FromContext(r.Context()).Info("session rejected by store", "path", r.URL.Path)
		_ = s.session(w, r).ClearToken()
		http.Redirect(w, r, view.LoginPath, http.StatusSeeOther)
		return true
	}
	s.respondError(w, r, err, statusCode)
	return true
}
