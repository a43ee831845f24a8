package asset

import "time"

// DateLayout is the wire and form layout of calendar dates.
const DateLayout = "2006-01-02"

// History is a usage record attached to one asset. Entries are append-only.
type History struct {
	ID      int64  `json:"id"`
	AssetID int64  `json:"asset_id"`
	User    string `json:"pengguna"`
	Status  string `json:"status"` // free text, unrelated to Asset.Status
	Note    string `json:"catatan"`
	Date    string `json:"tanggal"`
}

// DisplayDate renders the entry date as YYYY-MM-DD when the store sent a
// timestamp, and verbatim otherwise.
func (h History) DisplayDate() string {
	if t, err := time.Parse(time.RFC3339, h.Date); err == nil {
		return t.Format(DateLayout)
	}
	return h.Date
}

// HistoryDraft is a history entry that has not been stored yet.
type HistoryDraft struct {
	AssetID int64  `json:"asset_id" validate:"required,gt=0"`
	User    string `json:"pengguna" validate:"required,max=255"`
	Status  string `json:"status" validate:"required,max=100"`
	Note    string `json:"catatan"`
	Date    string `json:"tanggal" validate:"required,datetime=2006-01-02"`
}

// NewHistoryDraft returns an empty entry for assetID dated today.
func NewHistoryDraft(assetID int64, now time.Time) HistoryDraft {
	return HistoryDraft{
		AssetID: assetID,
		Date:    now.Format(DateLayout),
	}
}
