package web

import (
	"net/http"

	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/prefs"
	"github.com/JonMunkholm/itams/internal/view"
)

// handleLoginPage shows the sign-in form, or skips it for a live session.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if tok := sess.Token(); tok != "" && !prefs.TokenExpired(tok, s.now()) {
		http.Redirect(w, r, view.DashboardPath, http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "login.html", "Login", &view.LoginScreen{})
}

// handleLogin exchanges the submitted credentials for a token cookie.
// A failed login re-renders the form with the reason.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	screen := &view.LoginScreen{}
	if !screen.Submit(r.Context(), s.client, sess, r.PostForm.Get("username"), r.PostForm.Get("password")) {
		logging.FromContext(r.Context()).Info("login failed",
			"username", screen.Username,
			"error", screen.Err(),
		)
		s.render(w, r, http.StatusOK, "login.html", "Login", screen)
		return
	}

	logging.FromContext(r.Context()).Info("login", "username", screen.Username)
	http.Redirect(w, r, screen.Redirect, http.StatusSeeOther)
}

// handleLogout drops the token cookie. The theme survives.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	_ = s.session(w, r).ClearToken()
	http.Redirect(w, r, view.LoginPath, http.StatusSeeOther)
}

// handleTheme sets the theme named in the form, or toggles it, and returns to
// the page named by "next".
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	theme := sess.Theme().Toggle()
	if v := r.PostForm.Get("theme"); v != "" {
		theme = prefs.ParseTheme(v)
	}
	_ = sess.SetTheme(theme)

	http.Redirect(w, r, localPath(r.PostForm.Get("next"), view.DashboardPath), http.StatusSeeOther)
}
