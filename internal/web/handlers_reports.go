package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/itams/internal/logging"
	"github.com/JonMunkholm/itams/internal/sheet"
	"github.com/JonMunkholm/itams/internal/view"
)

// multipartMemory is how much of an upload ParseMultipartForm keeps in memory
// before spilling to disk.
const multipartMemory = 1 << 20

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "reports.html", "Laporan", &view.ReportsScreen{})
}

// handleExport downloads the whole collection as a workbook. The workbook is
// built in memory so a store failure can still become an error page.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	screen := &view.ReportsScreen{}
	n, err := screen.Export(r.Context(), s.store(w, r), &buf)
	if s.reauth(w, r, err, http.StatusBadGateway) {
		return
	}

	logging.FromContext(r.Context()).Info("export", "assets", n, "bytes", buf.Len())

	w.Header().Set("Content-Type", sheet.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+sheet.ExportFileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleImport reads the uploaded workbook and submits its rows in one bulk
// call. Every outcome, good or bad, is shown on the reports page.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	importID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "import_id", importID)
	screen := &view.ReportsScreen{}

	if err := s.imports.Acquire(r.Context()); err != nil {
		logger.Warn("import not admitted", "error", err, "active", s.imports.Active())
		screen.Busy()
		s.render(w, r, http.StatusServiceUnavailable, "reports.html", "Laporan", screen)
		return
	}
	defer s.imports.Release()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		status := http.StatusBadRequest
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			status = http.StatusRequestEntityTooLarge
		}
		logger.Warn("import upload unreadable", "error", err)
		screen.ReadFailed()
		s.render(w, r, status, "reports.html", "Laporan", screen)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("import without file", "error", err)
		screen.ReadFailed()
		s.render(w, r, http.StatusBadRequest, "reports.html", "Laporan", screen)
		return
	}
	defer file.Close()

	logger = logger.With("file", header.Filename, "size", header.Size)
	logger.Info("import started")
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Upload.Timeout)
	defer cancel()

	if s.reauth(w, r, screen.Import(ctx, s.store(w, r), file), http.StatusBadGateway) {
		return
	}

	status := http.StatusOK
	if !screen.Status.Success {
		status = http.StatusUnprocessableEntity
		logger.Warn("import failed", "message", screen.Status.Message, "duration_ms", time.Since(start).Milliseconds())
	} else {
		logger.Info("import completed", "count", screen.Status.Count, "duration_ms", time.Since(start).Milliseconds())
	}
	s.render(w, r, status, "reports.html", "Laporan", screen)
}
