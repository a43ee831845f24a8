package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned on 401/403. The session has already been cleared.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by Login for any non-2xx response.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when the requested asset does not exist.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response from the backend.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// unknownErrorMessage is used when an error body is not JSON.
const unknownErrorMessage = "An unknown error occurred"

// newError builds an Error from the backend's message, falling back to the status.
func newError(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &Error{Status: status, Message: message}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
