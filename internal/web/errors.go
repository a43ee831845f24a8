package web

// errors.go renders failures for the console.
//
// Handlers call respondError with the technical error. It is mapped through
// view.MapError, logged with the request ID, and returned as JSON to API-style
// clients or as the error page to browsers. ErrUnauthorized never gets here:
// handlers send it through reauth first.

import (
	"log/slog"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/view"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

type errorPage struct {
	view.UserMessage
	Status int
}

// respondError logs err and answers with its user-facing message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := view.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	if wantsJSON(r) {
		writeJSON(w, statusCode, ErrorResponse{
			Error:   userMsg.Message,
			Message: userMsg.Message,
			Action:  userMsg.Action,
			Code:    userMsg.Code,
		})
		return
	}
	s.render(w, r, statusCode, "error.html", "Kesalahan", errorPage{UserMessage: userMsg, Status: statusCode})
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// writeJSON encodes v as the response body. Encoding errors are logged since
// the header is already out.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
