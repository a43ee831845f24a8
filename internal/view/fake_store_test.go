package view

import (
	"context"
	"sync"
	"time"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
	"github.com/JonMunkholm/itams/internal/prefs"
)

// fakeStore is an in-memory Store. Errors set on it are returned by the
// matching call; calls are counted by name.
type fakeStore struct {
	mu sync.Mutex

	token   string
	assets  []asset.Asset
	history map[int64][]asset.History

	loginErr   error
	listErr    error
	getErr     error
	getDelay   time.Duration
	historyErr error
	writeErr   error
	importRes  api.ImportResult
	importErr  error

	created  []asset.Record
	updated  map[int64]asset.Record
	deleted  []int64
	imported []asset.Record
	calls    map[string]int
}

func newFakeStore(assets ...asset.Asset) *fakeStore {
	return &fakeStore{
		token:   "tkn",
		assets:  assets,
		history: map[int64][]asset.History{},
		updated: map[int64]asset.Record{},
		calls:   map[string]int{},
	}
}

func (f *fakeStore) called(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeStore) Login(_ context.Context, _, _ string) (string, error) {
	f.called("Login")
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeStore) ListAssets(context.Context) ([]asset.Asset, error) {
	f.called("ListAssets")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.assets, nil
}

func (f *fakeStore) GetAsset(ctx context.Context, id int64) (asset.Asset, error) {
	f.called("GetAsset")
	if f.getDelay > 0 {
		select {
		case <-time.After(f.getDelay):
		case <-ctx.Done():
			return asset.Asset{}, ctx.Err()
		}
	}
	if f.getErr != nil {
		return asset.Asset{}, f.getErr
	}
	for _, a := range f.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return asset.Asset{}, api.ErrNotFound
}

func (f *fakeStore) CreateAsset(_ context.Context, rec asset.Record) (asset.Asset, error) {
	f.called("CreateAsset")
	if f.writeErr != nil {
		return asset.Asset{}, f.writeErr
	}
	f.created = append(f.created, rec)
	a, err := asset.FromRecord(rec.Without(asset.FieldID))
	a.ID = int64(100 + len(f.created))
	return a, err
}

func (f *fakeStore) UpdateAsset(_ context.Context, id int64, rec asset.Record) (asset.Asset, error) {
	f.called("UpdateAsset")
	if f.writeErr != nil {
		return asset.Asset{}, f.writeErr
	}
	f.updated[id] = rec
	return asset.FromRecord(rec)
}

func (f *fakeStore) DeleteAsset(_ context.Context, id int64) error {
	f.called("DeleteAsset")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) ImportAssets(_ context.Context, recs []asset.Record) (api.ImportResult, error) {
	f.called("ImportAssets")
	if f.importErr != nil {
		return api.ImportResult{}, f.importErr
	}
	f.imported = recs
	return f.importRes, nil
}

func (f *fakeStore) ListHistory(_ context.Context, id int64) ([]asset.History, error) {
	f.called("ListHistory")
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history[id], nil
}

func (f *fakeStore) AddHistory(_ context.Context, d asset.HistoryDraft) (asset.History, error) {
	f.called("AddHistory")
	if f.writeErr != nil {
		return asset.History{}, f.writeErr
	}
	h := asset.History{ID: 1, AssetID: d.AssetID, User: d.User, Status: d.Status, Note: d.Note, Date: d.Date}
	f.history[d.AssetID] = append(f.history[d.AssetID], h)
	return h, nil
}

// memState is an in-memory prefs.State.
type memState struct {
	token string
	theme string
}

func (m *memState) Token() string { return m.token }
func (m *memState) SetToken(t string) error { m.token = t; return nil }
func (m *memState) ClearToken() error { m.token = ""; return nil }
func (m *memState) Theme() prefs.Theme { return prefs.Theme(m.theme) }
func (m *memState) SetTheme(t prefs.Theme) error { m.theme = string(t); return nil }
