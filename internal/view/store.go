package view

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
)

// Store is the subset of the REST client used by screens. *api.Client
// satisfies it.
type Store interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListAssets(ctx context.Context) ([]asset.Asset, error)
	GetAsset(ctx context.Context, id int64) (asset.Asset, error)
	CreateAsset(ctx context.Context, rec asset.Record) (asset.Asset, error)
	UpdateAsset(ctx context.Context, id int64, rec asset.Record) (asset.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	ImportAssets(ctx context.Context, recs []asset.Record) (api.ImportResult, error)
	ListHistory(ctx context.Context, assetID int64) ([]asset.History, error)
	AddHistory(ctx context.Context, d asset.HistoryDraft) (asset.History, error)
}

var _ Store = (*api.Client)(nil)

// authErr returns err when it demands re-authentication and nil otherwise.
func authErr(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	return nil
}

// Paths of the console pages.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	ReportsPath   = "/reports"
)

// CategoryPath is the list page of a category.
func CategoryPath(c asset.Category) string {
	return "/assets/" + url.PathEscape(string(c))
}

// NewAssetPath is the create form of a category.
func NewAssetPath(c asset.Category) string {
	return CategoryPath(c) + "/new"
}

// AssetPath is the detail page of an asset.
func AssetPath(id int64) string {
	return "/asset/" + strconv.FormatInt(id, 10)
}
