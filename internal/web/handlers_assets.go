package web

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/view"
)

// =============================================================================
// Pages
// =============================================================================

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "dashboard.html", "Dashboard", view.Dashboard())
}

// handleList shows one category, narrowed by the q and unit query parameters.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	c, err := parseCategory(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	screen := view.NewListScreen(c, q.Get("q"), q.Get("unit"))
	if err := screen.Load(r.Context(), s.store(w, r)); err != nil {
		s.reauth(w, r, err, http.StatusBadGateway)
		return
	}
	if screen.Err() != nil {
		logging.FromContext(r.Context()).Warn("list assets failed", "category", c, "error", screen.Err())
	}
	s.render(w, r, http.StatusOK, "list.html", c.String(), screen)
}

// handleDetail shows an asset and its usage history.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	screen := view.NewDetailScreen(id)
	if err := screen.Load(r.Context(), s.store(w, r)); err != nil {
		s.reauth(w, r, err, http.StatusBadGateway)
		return
	}

	status := http.StatusOK
	switch {
	case screen.NotFound:
		status = http.StatusNotFound
	case screen.Err() != nil:
		logging.FromContext(r.Context()).Warn("load asset failed", "id", id, "error", screen.Err())
	}
	s.render(w, r, status, "detail.html", "Detail Aset", screen)
}

// =============================================================================
// Create / edit
// =============================================================================

func (s *Server) handleNewAsset(w http.ResponseWriter, r *http.Request) {
	c, err := parseCategory(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	s.render(w, r, http.StatusOK, "form.html", "Tambah "+c.String(), view.NewAssetForm(c))
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	c, err := parseCategory(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	s.submitAsset(w, r, view.NewAssetForm(c), "Tambah "+c.String())
}

func (s *Server) handleEditAsset(w http.ResponseWriter, r *http.Request) {
	form, ok := s.loadEditForm(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "form.html", "Edit Aset", form)
}

func (s *Server) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	form, ok := s.loadEditForm(w, r)
	if !ok {
		return
	}
	s.submitAsset(w, r, form, "Edit Aset")
}

// loadEditForm fetches the asset behind {id}. It answers the request itself
// and reports false when there is nothing to edit.
func (s *Server) loadEditForm(w http.ResponseWriter, r *http.Request) (*view.FormScreen, bool) {
	id, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return nil, false
	}

	form, err := view.EditAssetForm(r.Context(), s.store(w, r), id)
	if s.reauth(w, r, err, http.StatusBadGateway) {
		return nil, false
	}
	switch {
	case form.NotFound:
		s.respondError(w, r, api.ErrNotFound, http.StatusNotFound)
		return nil, false
	case form.Error != "":
		s.render(w, r, http.StatusBadGateway, "error.html", "Kesalahan", errorPage{
			UserMessage: view.UserMessage{Message: form.Error, Code: "API001"},
			Status:      http.StatusBadGateway,
		})
		return nil, false
	}
	return form, true
}

// submitAsset applies the posted fields and writes the asset. On success the
// browser goes to the detail page; otherwise the form is shown again.
func (s *Server) submitAsset(w http.ResponseWriter, r *http.Request, form *view.FormScreen, title string) {
	values, err := formValues(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	form.Apply(values)

	ok, err := form.Submit(r.Context(), s.store(w, r))
	if s.reauth(w, r, err, http.StatusBadGateway) {
		return
	}
	if !ok {
		status := http.StatusBadGateway
		if len(form.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		s.render(w, r, status, "form.html", title, form)
		return
	}

	logging.FromContext(r.Context()).Info("asset saved",
		"id", form.Saved.ID,
		"category", form.Category,
		"edit", form.Editing(),
	)
	http.Redirect(w, r, view.AssetPath(form.Saved.ID), http.StatusSeeOther)
}

// =============================================================================
// Delete
// =============================================================================

// handleDeletePage asks for confirmation.
func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	a, err := s.store(w, r).GetAsset(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, api.ErrNotFound) {
			status = http.StatusNotFound
		}
		s.reauth(w, r, err, status)
		return
	}

	screen := view.NewDeleteScreen(id)
	screen.Category = a.Category.String()
	screen.Name = a.Display(asset.FieldName)
	s.render(w, r, http.StatusOK, "delete.html", "Hapus Aset", screen)
}

// handleDelete removes the asset only when the form carries confirm=yes.
// Without it the browser returns to the detail page and nothing is sent.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	values, err := formValues(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	screen := view.NewDeleteScreen(id)
	screen.Category = values["category"]
	screen.Name = values["name"]

	deleted, err := screen.Confirm(r.Context(), s.store(w, r), values["confirm"] == "yes")
	if s.reauth(w, r, err, http.StatusBadGateway) {
		return
	}
	if screen.Error != "" {
		s.render(w, r, http.StatusBadGateway, "delete.html", "Hapus Aset", screen)
		return
	}
	if !deleted {
		http.Redirect(w, r, view.AssetPath(id), http.StatusSeeOther)
		return
	}

	logging.FromContext(r.Context()).Info("asset deleted", "id", id)
	next := view.DashboardPath
	if c, err := asset.ParseCategory(screen.Category); err == nil {
		next = view.CategoryPath(c)
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// =============================================================================
// History
// =============================================================================

func (s *Server) handleNewHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	s.render(w, r, http.StatusOK, "history_form.html", "Tambah Riwayat", view.NewHistoryForm(id, s.now()))
}

func (s *Server) handleAddHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	values, err := formValues(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	form := view.NewHistoryForm(id, s.now())
	form.Apply(values)

	ok, err := form.Submit(r.Context(), s.store(w, r))
	if s.reauth(w, r, err, http.StatusBadGateway) {
		return
	}
	if !ok {
		status := http.StatusBadGateway
		if len(form.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		s.render(w, r, status, "history_form.html", "Tambah Riwayat", form)
		return
	}

	logging.FromContext(r.Context()).Info("history added", "asset_id", id, "history_id", form.Saved.ID)
	http.Redirect(w, r, view.AssetPath(id), http.StatusSeeOther)
}
