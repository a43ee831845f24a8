package web

// Shared request parsing helpers.

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
)

// parseID reads the {id} route parameter. Anything but a positive integer is
// reported as not found.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, api.ErrNotFound
	}
	return id, nil
}

// parseCategory reads the {category} route parameter, which arrives
// percent-encoded ("Radio%20HT").
func parseCategory(r *http.Request) (asset.Category, error) {
	raw := chi.URLParam(r, "category")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	return asset.ParseCategory(raw)
}

// formValues flattens a parsed form to its first value per key.
func formValues(r *http.Request) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out, nil
}

// localPath returns target when it is a path on this site and fallback
// otherwise, so redirects cannot be pointed elsewhere.
func localPath(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}
	return target
}
