package view

import (
	"context"

	"github.com/JonMunkholm/itams/internal/asset"
)

// ListScreen shows the assets of one category. The full collection is fetched
// once per Load and narrowed locally.
type ListScreen struct {
	Category  asset.Category
	Criteria  asset.Criteria
	Columns   []asset.Column
	UnitTypes []string // filter options, Radio RIG only

	Visible []asset.Asset

	state Load[[]asset.Asset]
}

// NewListScreen prepares the list of a category with the given search text and
// unit type filter.
func NewListScreen(c asset.Category, search, unitType string) *ListScreen {
	s := &ListScreen{
		Category: c,
		Criteria: asset.Criteria{Category: c, Search: search, UnitType: unitType},
		Columns:  asset.ListColumns(c),
	}
	if c.IsRig() {
		s.UnitTypes = asset.UnitTypes
	}
	return s
}

// Load fetches all assets and applies the criteria. Only an authorization
// failure is returned; other failures become the screen message.
func (s *ListScreen) Load(ctx context.Context, store Store) error {
	s.state.Start()
	all, err := store.ListAssets(ctx)
	if err != nil {
		s.state.Fail(err)
		s.Visible = nil
		return authErr(err)
	}
	s.state.Succeed(all)
	s.Visible = asset.Filter(all, s.Criteria)
	return nil
}

// Refilter applies new criteria to the already loaded collection.
func (s *ListScreen) Refilter(search, unitType string) {
	s.Criteria.Search = search
	s.Criteria.UnitType = unitType
	if s.state.Phase() == PhaseSuccess {
		s.Visible = asset.Filter(s.state.Value(), s.Criteria)
	}
}

// Phase returns the progress of the fetch.
func (s *ListScreen) Phase() Phase {
	return s.state.Phase()
}

// Err returns the fetch error, if any.
func (s *ListScreen) Err() error {
	return s.state.Err()
}

// Message is the text shown instead of the table, or "".
func (s *ListScreen) Message() string {
	switch {
	case s.state.Phase() == PhaseError:
		return MsgListFailed
	case s.state.Phase() == PhaseSuccess && len(s.Visible) == 0:
		return MsgListEmpty
	}
	return ""
}
