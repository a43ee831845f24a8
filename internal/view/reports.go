package view

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/itams/internal/sheet"
)

// ImportStatus is the outcome banner of an import.
type ImportStatus struct {
	Success bool
	Message string
	Count   int
}

// ReportsScreen exports the whole collection and imports workbooks.
type ReportsScreen struct {
	Status *ImportStatus
}

// Export fetches every asset and writes them as a workbook to w. The filter of
// the list page does not apply.
func (s *ReportsScreen) Export(ctx context.Context, store Store, w io.Writer) (int, error) {
	all, err := store.ListAssets(ctx)
	if err != nil {
		return 0, fmt.Errorf("list assets: %w", err)
	}
	if err := sheet.Export(w, all); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	return len(all), nil
}

// Import reads a workbook from r and submits its rows in one bulk call. The
// outcome is recorded in Status: an unreadable upload, an invalid workbook and a
// refused import each carry their own message.
func (s *ReportsScreen) Import(ctx context.Context, store Store, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		s.ReadFailed()
		return nil
	}

	recs, err := sheet.Import(bytes.NewReader(b))
	if err != nil {
		s.Status = &ImportStatus{Message: MsgImportBadFile}
		return nil
	}

	res, err := store.ImportAssets(ctx, recs)
	switch {
	case err != nil:
		if e := authErr(err); e != nil {
			return e
		}
		s.Status = &ImportStatus{Message: MsgImportFailed}
	case !res.Success:
		s.Status = &ImportStatus{Message: MsgImportFailed}
	default:
		s.Status = &ImportStatus{
			Success: true,
			Count:   res.Count,
			Message: fmt.Sprintf("Berhasil mengimpor %d aset.", res.Count),
		}
	}
	return nil
}

// ReadFailed records that the upload itself could not be read.
func (s *ReportsScreen) ReadFailed() {
	s.Status = &ImportStatus{Message: MsgImportReadFailed}
}

// Busy records that the import was not admitted.
func (s *ReportsScreen) Busy() {
	s.Status = &ImportStatus{Message: MsgImportBusy}
}
