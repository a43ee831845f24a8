// Package cli implements the itams command: the asset store from a terminal,
// sharing the console's client, screens and workbook codec.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/config"
	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/prefs"
	"github.com/JonMunkholm/itams/internal/view"
)

// errNotSignedIn is returned by commands that need a token when none is stored.
var errNotSignedIn = errors.New("belum login, jalankan `itams login` terlebih dahulu")

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg    *config.Config
	state  *prefs.FileStore
	client *api.Client
	now    func() time.Time

	// flags
	apiURL    string
	statePath string
	logLevel  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:           "itams",
		Short:         "Manage IT and radio assets from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "store base URL (overrides API_BASE_URL)")
	root.PersistentFlags().StringVar(&a.statePath, "state", "", "state file (overrides ITAMS_STATE_FILE)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.listCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.themeCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args and reports errors on stderr.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// setup loads configuration and state. Logs go to stderr so command output
// stays pipeable.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.API.BaseURL = a.apiURL
	}
	if a.statePath != "" {
		cfg.Prefs.StateFile = a.statePath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	slog.SetDefault(logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format))

	state, err := prefs.OpenFileStore(cfg.Prefs.StateFile)
	if err != nil {
		return err
	}
	if prefs.TokenExpired(state.Token(), a.now()) {
		slog.Info("stored session expired", "state", state.Path())
		if err := state.ClearToken(); err != nil {
			return err
		}
	}
	a.state = state
	a.client = api.New(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout)).With(state)
	return nil
}

// requireToken fails fast when there is no session to send.
func (a *app) requireToken() error {
	if a.state.Token() == "" {
		return errNotSignedIn
	}
	return nil
}

// userError turns a screen or store error into the catalogue message. An
// ErrUnauthorized has already cleared the stored token.
func userError(err error) error {
	if err == nil {
		return nil
	}
	slog.Debug("command failed", "error", err)
	if errors.Is(err, api.ErrUnauthorized) {
		return fmt.Errorf("%s, jalankan `itams login`", view.MapError(err).Message)
	}
	return errors.New(view.FormatUserError(err))
}
