package view

import (
	"context"
	"errors"
	"strings"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/asset"
)

// FieldInput is one rendered form control.
type FieldInput struct {
	asset.FieldSpec
	Value string
	Error string
}

// FormScreen creates or edits an asset. The controls come from the category's
// field set, the same set the detail page uses.
type FormScreen struct {
	Category asset.Category
	Asset    asset.Asset

	Errors asset.ValidationErrors
	Error  string

	// Saved holds the store's copy after a successful submit.
	Saved asset.Asset

	NotFound bool
}

// NewAssetForm returns a create form with a fresh draft for the category.
func NewAssetForm(c asset.Category) *FormScreen {
	return &FormScreen{Category: c, Asset: asset.NewDraft(c)}
}

// EditAssetForm loads an existing asset into an edit form.
func EditAssetForm(ctx context.Context, store Store, id int64) (*FormScreen, error) {
	a, err := store.GetAsset(ctx, id)
	switch {
	case errors.Is(err, api.ErrNotFound):
		return &FormScreen{NotFound: true, Error: MsgAssetNotFound}, nil
	case err != nil:
		if e := authErr(err); e != nil {
			return nil, e
		}
		return &FormScreen{Error: MsgDetailFailed}, nil
	}
	return &FormScreen{Category: a.Category, Asset: a}, nil
}

// Editing reports whether the form edits a stored asset.
func (s *FormScreen) Editing() bool {
	return s.Asset.Persisted()
}

// Fields returns the controls in display order with current values and errors.
func (s *FormScreen) Fields() []FieldInput {
	specs := asset.FieldsFor(s.Category)
	out := make([]FieldInput, len(specs))
	for i, spec := range specs {
		v, _ := s.Asset.Value(spec.Name)
		out[i] = FieldInput{FieldSpec: spec, Value: v, Error: s.Errors.For(spec.Name)}
	}
	return out
}

// Apply copies submitted values into the asset. Only fields of the category's
// field set are read; the id and the category are never taken from input.
func (s *FormScreen) Apply(values map[string]string) {
	for _, spec := range asset.FieldsFor(s.Category) {
		v, ok := values[spec.Name]
		if !ok {
			continue
		}
		if spec.Kind != asset.KindTextArea {
			v = strings.TrimSpace(v)
		}
		// Names come from the field set, so Set cannot reject them.
		_ = s.Asset.Set(spec.Name, v)
	}
}

// Submit validates the asset and writes it. It reports whether the write
// succeeded; otherwise Errors or Error explain why and the form stays open.
func (s *FormScreen) Submit(ctx context.Context, store Store) (bool, error) {
	s.Errors = nil
	s.Error = ""

	if err := asset.Validate(s.Asset); err != nil {
		var verrs asset.ValidationErrors
		if errors.As(err, &verrs) {
			s.Errors = verrs
		}
		s.Error = MapError(err).Message
		return false, nil
	}

	var (
		saved asset.Asset
		err   error
	)
	if s.Editing() {
		saved, err = store.UpdateAsset(ctx, s.Asset.ID, s.Asset.Record())
	} else {
		saved, err = store.CreateAsset(ctx, s.Asset.Record())
	}
	if err != nil {
		if e := authErr(err); e != nil {
			return false, e
		}
		if errors.Is(err, api.ErrNotFound) {
			s.Error = MsgAssetNotFound
		} else {
			s.Error = MsgSaveFailed
		}
		return false, nil
	}

	s.Saved = saved
	return true, nil
}
