package view

import (
	"context"
)

// DeleteScreen asks for confirmation before removing an asset.
type DeleteScreen struct {
	ID       int64
	Category string
	Name     string
	Prompt   string
	Error    string
}

// NewDeleteScreen prepares the confirmation of asset id.
func NewDeleteScreen(id int64) *DeleteScreen {
	return &DeleteScreen{ID: id, Prompt: MsgDeletePrompt}
}

// Confirm deletes the asset when confirmed is true and does nothing otherwise.
// It reports whether the asset was deleted.
func (s *DeleteScreen) Confirm(ctx context.Context, store Store, confirmed bool) (bool, error) {
	s.Error = ""
	if !confirmed {
		return false, nil
	}
	if err := store.DeleteAsset(ctx, s.ID); err != nil {
		if e := authErr(err); e != nil {
			return false, e
		}
		s.Error = MsgDeleteFailed
		return false, nil
	}
	return true, nil
}
