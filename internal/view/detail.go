package view

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
)

type detail struct {
	asset   asset.Asset
	history []asset.History
}

// DetailScreen shows one asset with its usage history.
type DetailScreen struct {
	ID int64

	Asset   asset.Asset
	Rows    []asset.DetailRow
	History []asset.History

	// NotFound is set when the store has no asset with ID.
	NotFound bool

	state Load[detail]
}

// NewDetailScreen prepares the detail page of an asset.
func NewDetailScreen(id int64) *DetailScreen {
	return &DetailScreen{ID: id}
}

// Load fetches the asset and its history concurrently and fills the screen
// only once both have answered. Neither fetch cancels the other, so a missing
// asset is reported as such whatever the history call returns.
func (s *DetailScreen) Load(ctx context.Context, store Store) error {
	s.state.Start()
	s.NotFound = false

	var (
		a        asset.Asset
		history  []asset.History
		assetErr error
		histErr  error
	)
	var g errgroup.Group
	g.Go(func() error {
		a, assetErr = store.GetAsset(ctx, s.ID)
		return assetErr
	})
	g.Go(func() error {
		history, histErr = store.ListHistory(ctx, s.ID)
		return histErr
	})
	err := g.Wait()

	switch {
	case errors.Is(assetErr, api.ErrNotFound):
		s.NotFound = true
		s.state.Fail(assetErr)
		return nil
	case err != nil:
		s.state.Fail(err)
		if e := authErr(assetErr); e != nil {
			return e
		}
		return authErr(histErr)
	}

	s.state.Succeed(detail{asset: a, history: history})
	s.Asset = a
	s.Rows = asset.DetailRows(a)
	s.History = history
	return nil
}

// Phase returns the progress of the fetch.
func (s *DetailScreen) Phase() Phase {
	return s.state.Phase()
}

// Err returns the fetch error, if any.
func (s *DetailScreen) Err() error {
	return s.state.Err()
}

// Message is the text shown instead of the asset, or "".
func (s *DetailScreen) Message() string {
	switch {
	case s.NotFound:
		return MsgAssetNotFound
	case s.state.Phase() == PhaseError:
		return MsgDetailFailed
	}
	return ""
}

// HistoryMessage is the text shown instead of an empty history table, or "".
func (s *DetailScreen) HistoryMessage() string {
	if s.state.Phase() == PhaseSuccess && len(s.History) == 0 {
		return MsgHistoryEmpty
	}
	return ""
}
