package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/config"
)

const testToken = "opaque-test-token"

// backend is an in-memory REST store.
type backend struct {
	mu      sync.Mutex
	assets  map[int64]map[string]any
	history map[int64][]map[string]any
	nextID  int64

	// reject answers 401 to everything but login.
	reject bool

	// importStatus and importBody override the bulk import reply when set.
	importStatus int
	importBody   string

	calls    []string
	lastBody any
}

func newBackend() *backend {
	return &backend{
		assets: map[int64]map[string]any{
			1: {"id": 1, "category": "Laptop", "nama_aset": "Laptop Dell", "model": "Latitude 5420", "serial_number": "DL-001", "status": "Aktif"},
			2: {"id": 2, "category": "Laptop", "nama_aset": "ThinkPad X1", "model": "X1 Carbon", "serial_number": "LN-002", "status": "Perbaikan"},
			3: {"id": 3, "category": "Radio RIG", "nama_aset": "RIG Pos 1", "jenis_unit": "R100", "status": "Aktif"},
		},
		history: map[int64][]map[string]any{},
		nextID:  4,
	}
}

func (b *backend) called(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (b *backend) body() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, _ := b.lastBody.(map[string]any)
	return m
}

func (b *backend) handler() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.calls = append(b.calls, req.Method+" "+req.URL.Path)
			b.lastBody = nil
			if raw, _ := io.ReadAll(req.Body); len(raw) > 0 {
				var v any
				_ = json.Unmarshal(raw, &v)
				b.lastBody = v
			}
			reject := b.reject
			b.mu.Unlock()

			if req.URL.Path != "/api/login" {
				if reject || req.Header.Get("Authorization") != "Bearer "+testToken {
					reply(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
					return
				}
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Post("/api/login", func(w http.ResponseWriter, req *http.Request) {
		creds := b.body()
		if creds["username"] == "admin" && creds["password"] == "secret" {
			reply(w, http.StatusOK, map[string]string{"token": testToken})
			return
		}
		reply(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	r.Get("/api/assets", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		out := make([]map[string]any, 0, len(b.assets))
		for id := int64(1); id < b.nextID; id++ {
			if a, ok := b.assets[id]; ok {
				out = append(out, a)
			}
		}
		b.mu.Unlock()
		reply(w, http.StatusOK, out)
	})

	r.Post("/api/assets", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		rec, _ := b.lastBody.(map[string]any)
		id := b.nextID
		b.nextID++
		saved := map[string]any{"id": id}
		for k, v := range rec {
			saved[k] = v
		}
		b.assets[id] = saved
		b.mu.Unlock()
		reply(w, http.StatusCreated, saved)
	})

	r.Post("/api/assets/import", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		status, body := b.importStatus, b.importBody
		recs, _ := b.lastBody.([]any)
		b.mu.Unlock()
		if status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
			return
		}
		reply(w, http.StatusOK, map[string]any{"success": true, "count": len(recs)})
	})

	r.Route("/api/assets/{id}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			if a := b.find(req); a != nil {
				reply(w, http.StatusOK, a)
				return
			}
			reply(w, http.StatusNotFound, map[string]string{"message": "Asset not found"})
		})
		r.Put("/", func(w http.ResponseWriter, req *http.Request) {
			a := b.find(req)
			if a == nil {
				reply(w, http.StatusNotFound, map[string]string{"message": "Asset not found"})
				return
			}
			b.mu.Lock()
			for k, v := range b.lastBody.(map[string]any) {
				a[k] = v
			}
			b.mu.Unlock()
			reply(w, http.StatusOK, a)
		})
		r.Delete("/", func(w http.ResponseWriter, req *http.Request) {
			if b.find(req) == nil {
				reply(w, http.StatusNotFound, map[string]string{"message": "Asset not found"})
				return
			}
			id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
			b.mu.Lock()
			delete(b.assets, id)
			b.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/history", func(w http.ResponseWriter, req *http.Request) {
			id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
			b.mu.Lock()
			out := append([]map[string]any{}, b.history[id]...)
			b.mu.Unlock()
			reply(w, http.StatusOK, out)
		})
		r.Post("/history", func(w http.ResponseWriter, req *http.Request) {
			id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
			b.mu.Lock()
			entry, _ := b.lastBody.(map[string]any)
			entry["id"] = len(b.history[id]) + 1
			b.history[id] = append(b.history[id], entry)
			b.mu.Unlock()
			reply(w, http.StatusCreated, entry)
		})
	})
	return r
}

func (b *backend) find(req *http.Request) map[string]any {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.assets[id]
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			RequestTimeout: 10 * time.Second,
		},
		Upload: config.UploadConfig{
			MaxFileSize:   1 << 20,
			MaxConcurrent: 1,
			MaxWaitTime:   50 * time.Millisecond,
			Timeout:       10 * time.Second,
		},
		Security: config.SecurityConfig{EnableCSP: true},
		Logging:  config.LoggingConfig{Level: "error", Format: "text"},
	}
}

// newTestServer starts a backend and a console in front of it.
func newTestServer(t *testing.T) (*Server, *backend) {
	t.Helper()
	be := newBackend()
	srv := httptest.NewServer(be.handler())
	t.Cleanup(srv.Close)

	s, err := NewServer(api.New(srv.URL+"/api", api.WithTimeout(5*time.Second)), testConfig())
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s, be
}
