package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/itams/internal/asset"
	"github.com/JonMunkholm/itams/internal/logging"
)

// ImportResult is the store's reply to a bulk import.
type ImportResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// Login exchanges credentials for a token. Any non-2xx reply is reported as
// ErrInvalidCredentials; transport failures are returned as-is.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Token string `json:"token"`
	}

	err := c.do(ctx, http.MethodPost, "/login", body, &out)
	var apiErr *Error
	switch {
	case errors.Is(err, ErrUnauthorized), errors.As(err, &apiErr):
		return "", ErrInvalidCredentials
	case err != nil:
		return "", err
	case out.Token == "":
		return "", ErrInvalidCredentials
	}
	return out.Token, nil
}

// ListAssets returns every asset in the store. Records with a category outside
// the fixed set are skipped and logged.
func (c *Client) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	var recs []asset.Record
	if err := c.do(ctx, http.MethodGet, "/assets", nil, &recs); err != nil {
		return nil, err
	}

	out := make([]asset.Asset, 0, len(recs))
	for _, r := range recs {
		a, err := asset.FromRecord(r)
		if err != nil {
			logging.FromContext(ctx).Warn("skipping asset",
				slog.String("id", r.String(asset.FieldID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// GetAsset returns one asset, or ErrNotFound.
func (c *Client) GetAsset(ctx context.Context, id int64) (asset.Asset, error) {
	var out asset.Asset
	err := c.do(ctx, http.MethodGet, assetPath(id), nil, &out)
	if StatusOf(err) == http.StatusNotFound {
		return asset.Asset{}, fmt.Errorf("asset %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return asset.Asset{}, err
	}
	return out, nil
}

// CreateAsset stores a new asset. Any id in the record is ignored and empty
// values are sent as null.
func (c *Client) CreateAsset(ctx context.Context, rec asset.Record) (asset.Asset, error) {
	payload := asset.Sanitize(rec.Without(asset.FieldID))
	var out asset.Asset
	if err := c.do(ctx, http.MethodPost, "/assets", payload, &out); err != nil {
		return asset.Asset{}, err
	}
	return out, nil
}

// UpdateAsset applies a partial edit. The id and the category are never sent.
func (c *Client) UpdateAsset(ctx context.Context, id int64, rec asset.Record) (asset.Asset, error) {
	payload := asset.Sanitize(rec.Without(asset.FieldID, asset.FieldCategory))
	var out asset.Asset
	err := c.do(ctx, http.MethodPut, assetPath(id), payload, &out)
	if StatusOf(err) == http.StatusNotFound {
		return asset.Asset{}, fmt.Errorf("asset %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return asset.Asset{}, err
	}
	return out, nil
}

// DeleteAsset removes an asset.
func (c *Client) DeleteAsset(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, assetPath(id), nil, nil)
	if StatusOf(err) == http.StatusNotFound {
		return fmt.Errorf("asset %d: %w", id, ErrNotFound)
	}
	return err
}

// ImportAssets submits records in one bulk call.
func (c *Client) ImportAssets(ctx context.Context, recs []asset.Record) (ImportResult, error) {
	payload := make([]asset.Record, len(recs))
	for i, r := range recs {
		payload[i] = r.Without(asset.FieldID)
	}
	var out ImportResult
	if err := c.do(ctx, http.MethodPost, "/assets/import", payload, &out); err != nil {
		return ImportResult{}, err
	}
	return out, nil
}

// ListHistory returns the usage history of one asset.
func (c *Client) ListHistory(ctx context.Context, assetID int64) ([]asset.History, error) {
	var out []asset.History
	if err := c.do(ctx, http.MethodGet, assetPath(assetID)+"/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddHistory appends a history entry.
func (c *Client) AddHistory(ctx context.Context, d asset.HistoryDraft) (asset.History, error) {
	var out asset.History
	if err := c.do(ctx, http.MethodPost, assetPath(d.AssetID)+"/history", d, &out); err != nil {
		return asset.History{}, err
	}
	return out, nil
}

func assetPath(id int64) string {
	return "/assets/" + url.PathEscape(strconv.FormatInt(id, 10))
}
