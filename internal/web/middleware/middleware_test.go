package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JonMunkholm/itams/internal/prefs"
)

// =============================================================================
// Sessions / RequireSession
// =============================================================================

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func guarded(now time.Time) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Sessions(false)(RequireSession("/login", func() time.Time { return now })(ok))
}

func TestRequireSession(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		token       string
		wantStatus  int
		wantCleared bool
	}{
		{"no cookie", "", http.StatusSeeOther, false},
		{"valid token", signed(t, now.Add(time.Hour)), http.StatusOK, false},
		{"opaque token", "opaque-token", http.StatusOK, false},
		{"expired token", signed(t, now.Add(-time.Minute)), http.StatusSeeOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: prefs.TokenCookie, Value: tt.token})
			}
			rec := httptest.NewRecorder()
			guarded(now).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusSeeOther {
				if loc := rec.Header().Get("Location"); loc != "/login" {
					t.Errorf("Location = %q, want /login", loc)
				}
			}
			cleared := strings.Contains(rec.Header().Get("Set-Cookie"), prefs.TokenCookie+"=;")
			if cleared != tt.wantCleared {
				t.Errorf("cookie cleared = %v, want %v (Set-Cookie %q)", cleared, tt.wantCleared, rec.Header().Get("Set-Cookie"))
			}
		})
	}
}

func TestSessions_ExposesCookieState(t *testing.T) {
	var got *prefs.CookieState
	h := Sessions(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Session(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: prefs.ThemeCookie, Value: "dark"})
	req.AddCookie(&http.Cookie{Name: prefs.TokenCookie, Value: "abc"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("no session in context")
	}
	if got.Token() != "abc" || got.Theme() != prefs.ThemeDark {
		t.Errorf("session = token %q theme %q", got.Token(), got.Theme())
	}
}

// =============================================================================
// TrustedRealIP
// =============================================================================

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		remote  string
		headers map[string]string
		want    string
	}{
		{
			name:    "untrusted peer keeps socket address",
			trusted: []string{"10.0.0.0/8"},
			remote:  "203.0.113.7:5000",
			headers: map[string]string{"X-Real-IP": "1.2.3.4"},
			want:    "203.0.113.7:5000",
		},
		{
			name:    "trusted proxy X-Real-IP",
			trusted: []string{"10.0.0.0/8"},
			remote:  "10.1.2.3:5000",
			headers: map[string]string{"X-Real-IP": "198.51.100.9"},
			want:    "198.51.100.9",
		},
		{
			name:    "trusted proxy first X-Forwarded-For hop",
			trusted: []string{"127.0.0.1"},
			remote:  "127.0.0.1:5000",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.9, 10.0.0.1"},
			want:    "198.51.100.9",
		},
		{
			name:    "malformed header ignored",
			trusted: []string{"127.0.0.1"},
			remote:  "127.0.0.1:5000",
			headers: map[string]string{"X-Real-IP": "not-an-ip"},
			want:    "127.0.0.1:5000",
		},
		{
			name:    "invalid CIDR skipped",
			trusted: []string{"bogus"},
			remote:  "127.0.0.1:5000",
			headers: map[string]string{"X-Real-IP": "198.51.100.9"},
			want:    "127.0.0.1:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Logger
// =============================================================================

func TestLogger_CapturesStatusAndBytes(t *testing.T) {
	var ww *responseWriter
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww = w.(*responseWriter)
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	rec := httptest.NewRecorder()
	Logger(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if ww.status != http.StatusTeapot || ww.bytes != 5 {
		t.Errorf("captured status %d bytes %d", ww.status, ww.bytes)
	}
}
