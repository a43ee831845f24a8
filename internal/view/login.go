package view

import (
	"context"
	"errors"
	"strings"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/prefs"
)

// LoginScreen is the sign-in form.
type LoginScreen struct {
	Username string
	Error    string

	// Redirect is where to go after a successful login.
	Redirect string

	state Load[string]
}

// Submit exchanges credentials for a token and stores it in sess. It reports
// whether the login succeeded; on failure Error holds the message and the user
// stays on the form.
func (s *LoginScreen) Submit(ctx context.Context, store Store, sess prefs.State, username, password string) bool {
	s.Username = strings.TrimSpace(username)
	s.Error = ""
	s.Redirect = ""
	s.state.Start()

	token, err := store.Login(ctx, s.Username, password)
	if err == nil {
		err = sess.SetToken(token)
	}
	if err != nil {
		s.state.Fail(err)
		if errors.Is(err, api.ErrInvalidCredentials) {
			s.Error = MsgInvalidCredentials
		} else {
			s.Error = MsgLoginFailed
		}
		return false
	}

	s.state.Succeed(token)
	s.Redirect = DashboardPath
	return true
}

// Phase returns the progress of the last submission.
func (s *LoginScreen) Phase() Phase {
	return s.state.Phase()
}

// Err returns the error of the last failed submission.
func (s *LoginScreen) Err() error {
	return s.state.Err()
}
