// Package view holds the per-screen state of the console.
//
// Each screen is a small state machine over one or more store round-trips. A
// screen records failures as user-visible state instead of returning them, with
// one exception: api.ErrUnauthorized is always returned so the caller can force
// the user back to the login page.
//
// Screens do not know about HTTP. The web package renders them and the CLI
// reuses the same request sequencing.
package view
