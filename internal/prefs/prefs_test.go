package prefs

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"opaque", "not-a-jwt", false},
		{"no exp", signed(t, jwt.MapClaims{"sub": "admin"}), false},
		{"future exp", signed(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), false},
		{"past exp", signed(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenExpired(tt.token, now); got != tt.want {
				t.Errorf("TokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTheme(t *testing.T) {
	if ParseTheme("DARK") != ThemeDark || ParseTheme("") != ThemeLight || ParseTheme("blue") != ThemeLight {
		t.Error("ParseTheme mismatch")
	}
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("Toggle mismatch")
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore() error = %v", err)
	}
	if s.Token() != "" || s.Theme() != ThemeLight {
		t.Errorf("fresh store = %q/%q", s.Token(), s.Theme())
	}

	if err := s.SetToken("tkn"); err != nil {
		t.Fatalf("SetToken() error = %v", err)
	}
	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if reopened.Token() != "tkn" || reopened.Theme() != ThemeDark {
		t.Errorf("reopened = %q/%q", reopened.Token(), reopened.Theme())
	}

	if err := reopened.ClearToken(); err != nil {
		t.Fatalf("ClearToken() error = %v", err)
	}
	again, _ := OpenFileStore(path)
	if again.Token() != "" || again.Theme() != ThemeDark {
		t.Errorf("after clear = %q/%q", again.Token(), again.Theme())
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFileStore(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestCookieState(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "abc"})
	r.AddCookie(&http.Cookie{Name: ThemeCookie, Value: "dark"})
	w := httptest.NewRecorder()

	s := FromRequest(w, r, false)
	if s.Token() != "abc" || s.Theme() != ThemeDark {
		t.Fatalf("state = %q/%q", s.Token(), s.Theme())
	}

	if err := s.ClearToken(); err != nil {
		t.Fatal(err)
	}
	if s.Token() != "" {
		t.Error("token still readable after clear")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != TokenCookie || cookies[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want expired %s", cookies, TokenCookie)
	}
}

func TestCookieStateSetToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s := FromRequest(w, r, true)
	if err := s.SetToken("new"); err != nil {
		t.Fatal(err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	c := cookies[0]
	if c.Value != "new" || !c.HttpOnly || !c.Secure {
		t.Errorf("cookie = %+v", c)
	}
}

func TestCookieStateConcurrentClear(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "abc"})
	w := httptest.NewRecorder()
	s := FromRequest(w, r, false)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Token()
			_ = s.ClearToken()
		}()
	}
	wg.Wait()

	if s.Token() != "" {
		t.Error("token still readable after clear")
	}
	if got := len(w.Result().Cookies()); got != 1 {
		t.Errorf("got %d Set-Cookie headers, want 1", got)
	}
}
