package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/JonMunkholm/itams/internal/asset"
	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/prefs"
	"github.com/JonMunkholm/itams/internal/view"
)

//go:embed templates
var templateFiles embed.FS

const layoutFile = "templates/layout.html"

// page is the data every template receives. Content is the page's screen.
type page struct {
	Title    string
	Theme    prefs.Theme
	SignedIn bool
	Path     string
	Content  any
}

// renderer holds one template set per page, each parsed together with the
// layout.
type renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"assetPath":    view.AssetPath,
	"categoryPath": view.CategoryPath,
	"newAssetPath": view.NewAssetPath,
	"badge":        badge,
	"display": func(a asset.Asset, field string) string {
		return a.Display(field)
	},
	"value": func(a asset.Asset, field string) string {
		v, _ := a.Value(field)
		return v
	},
	"categories": func() []asset.Category {
		return asset.Categories
	},
}

func newRenderer() (*renderer, error) {
	files, err := fs.Glob(templateFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	p := &renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		t, err := template.New(path.Base(layoutFile)).Funcs(templateFuncs).ParseFS(templateFiles, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		p.pages[path.Base(file)] = t
	}
	return p, nil
}

func (p *renderer) execute(name string, data page) ([]byte, error) {
	t, ok := p.pages[name]
	if !ok {
		return nil, fmt.Errorf("no template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// render writes a full page. The page is rendered to memory first so a template
// failure still produces a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name, title string, content any) {
	sess := s.session(w, r)
	body, err := s.pages.execute(name, page{
		Title:    title,
		Theme:    sess.Theme(),
		SignedIn: sess.Token() != "",
		Path:     r.URL.RequestURI(),
		Content:  content,
	})
	if err != nil {
		logging.FromContext(r.Context()).Error("render failed", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
