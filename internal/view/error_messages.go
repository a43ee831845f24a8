package view

// error_messages.go maps technical errors to messages for the console and CLI.
//
// # Error Codes Reference
//
//	AUTH001 - Invalid credentials: username or password rejected by the store
//	AUTH002 - Session expired: the store answered 401/403; log in again
//	NET001  - Store unreachable: transport failure or timeout
//	API001  - Store error: the store answered with a non-2xx status
//	NF001   - Not found: the asset no longer exists
//	IMP001  - Invalid file: the upload is not a readable workbook or has no rows
//	IMP002  - Import rejected: the store refused the bulk import
//	IMP003  - Import busy: too many imports in progress
//	VAL001  - Validation: one or more fields are invalid
//	ERR000  - Unknown error: check the server log for the original error
//
// Typed errors are matched first with errors.Is/As. Anything else falls back to
// case-insensitive substring patterns; the first match wins.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
	"github.com/JonMunkholm/itams/internal/sheet"
)

// UserMessage is a user-facing error with guidance.
type UserMessage struct {
	Message string // what happened
	Action  string // what to do about it
	Code    string // support reference
}

// ErrImportBusy is returned when the import limiter could not admit an upload.
var ErrImportBusy = errors.New("too many imports in progress")

var (
	msgInvalidCredentials = UserMessage{
		Message: MsgInvalidCredentials,
		Action:  "Periksa kembali username dan password",
		Code:    "AUTH001",
	}
	msgSessionExpired = UserMessage{
		Message: "Sesi Anda telah berakhir",
		Action:  "Silakan login kembali",
		Code:    "AUTH002",
	}
	msgUnreachable = UserMessage{
		Message: "Server aset tidak dapat dihubungi",
		Action:  "Periksa koneksi lalu coba lagi",
		Code:    "NET001",
	}
	msgStoreError = UserMessage{
		Message: "Server aset menolak permintaan",
		Action:  "Coba lagi atau hubungi administrator",
		Code:    "API001",
	}
	msgNotFound = UserMessage{
		Message: MsgAssetNotFound,
		Action:  "Kembali ke daftar aset",
		Code:    "NF001",
	}
	msgUnknownCategory = UserMessage{
		Message: "Kategori tidak dikenal.",
		Action:  "Pilih kategori dari dashboard",
		Code:    "NF002",
	}
	msgBadFile = UserMessage{
		Message: MsgImportBadFile,
		Action:  "Gunakan file .xlsx dengan baris judul sesuai nama kolom aset",
		Code:    "IMP001",
	}
	msgImportRejected = UserMessage{
		Message: MsgImportFailed,
		Action:  "Periksa isi file lalu coba lagi",
		Code:    "IMP002",
	}
	msgImportBusy = UserMessage{
		Message: MsgImportBusy,
		Action:  "Tunggu sebentar lalu coba lagi",
		Code:    "IMP003",
	}
	msgValidation = UserMessage{
		Message: "Data tidak valid",
		Action:  "Perbaiki isian yang ditandai",
		Code:    "VAL001",
	}
)

// errorPattern maps a technical substring to a message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns cover errors that reach us untyped, mostly from net/http.
// Specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{pattern: "connection refused", msg: msgUnreachable},
	{pattern: "no such host", msg: msgUnreachable},
	{pattern: "connection reset", msg: msgUnreachable},
	{pattern: "context deadline exceeded", msg: msgUnreachable},
	{pattern: "timeout", msg: msgUnreachable},
	{pattern: "invalid workbook", msg: msgBadFile},
	{pattern: "no data rows", msg: msgBadFile},
	{pattern: "too many imports", msg: msgImportBusy},
	{pattern: "validation failed", msg: msgValidation},
	{pattern: "invalid enum", msg: msgValidation},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "Terjadi kesalahan yang tidak terduga",
	Action:  "Coba lagi atau hubungi administrator",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-facing message. It returns the
// zero UserMessage for nil.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var verrs asset.ValidationErrors
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, api.ErrUnauthorized):
		return msgSessionExpired
	case errors.Is(err, api.ErrNotFound):
		return msgNotFound
	case errors.Is(err, asset.ErrUnknownCategory):
		return msgUnknownCategory
	case errors.Is(err, sheet.ErrInvalidFormat), errors.Is(err, sheet.ErrNoRows):
		return msgBadFile
	case errors.Is(err, ErrImportBusy):
		return msgImportBusy
	case errors.As(err, &verrs):
		return msgValidation
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	if api.StatusOf(err) != 0 {
		return msgStoreError
	}
	return defaultMessage
}

// FormatUserError renders err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
