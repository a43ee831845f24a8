package view

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/JonMunkholm/itams/internal/asset"
)

// HistoryFormScreen appends a usage entry to an asset.
type HistoryFormScreen struct {
	Draft  asset.HistoryDraft
	Errors asset.ValidationErrors
	Error  string
	Saved  asset.History
}

// NewHistoryForm returns an empty entry for assetID dated today.
func NewHistoryForm(assetID int64, now time.Time) *HistoryFormScreen {
	return &HistoryFormScreen{Draft: asset.NewHistoryDraft(assetID, now)}
}

// Apply copies submitted values into the draft. Missing keys keep their value.
func (s *HistoryFormScreen) Apply(values map[string]string) {
	if v, ok := values["pengguna"]; ok {
		s.Draft.User = strings.TrimSpace(v)
	}
	if v, ok := values["status"]; ok {
		s.Draft.Status = strings.TrimSpace(v)
	}
	if v, ok := values["catatan"]; ok {
		s.Draft.Note = v
	}
	if v, ok := values["tanggal"]; ok {
		s.Draft.Date = strings.TrimSpace(v)
	}
}

// Submit validates and stores the entry.
func (s *HistoryFormScreen) Submit(ctx context.Context, store Store) (bool, error) {
	s.Errors = nil
	s.Error = ""

	if err := asset.ValidateHistory(s.Draft); err != nil {
		var verrs asset.ValidationErrors
		if errors.As(err, &verrs) {
			s.Errors = verrs
		}
		s.Error = MapError(err).Message
		return false, nil
	}

	h, err := store.AddHistory(ctx, s.Draft)
	if err != nil {
		if e := authErr(err); e != nil {
			return false, e
		}
		s.Error = MsgHistoryFailed
		return false, nil
	}
	s.Saved = h
	return true, nil
}
