package asset

import (
	"fmt"
	"strconv"
)

// Backend field names. These double as form input names and spreadsheet headers.
const (
	FieldID           = "id"
	FieldCategory     = "category"
	FieldName         = "nama_aset"
	FieldStatus       = "status"
	FieldNote         = "catatan"
	FieldImageURL     = "gambar_url"
	FieldPurchaseDate = "tgl_pembelian"

	FieldUnitCode     = "unit_code"
	FieldUnitName     = "nama_unit"
	FieldUnitType     = "jenis_unit"
	FieldModel        = "model"
	FieldSerialNumber = "serial_number"
	FieldAccountingNo = "no_asset_acc"
	FieldUR           = "ur"
	FieldPO           = "po"
	FieldLocation     = "lokasi"
)

// Details is the category-specific payload of an asset.
// It is implemented by *RigDetails and *StandardDetails only.
type Details interface {
	// Get returns the value of a variant field and whether the field belongs to
	// this variant at all.
	Get(field string) (string, bool)

	// Set assigns a variant field. It reports false for fields of other variants.
	Set(field, value string) bool

	details()
}

// RigDetails carries the fields of a Radio RIG installation.
type RigDetails struct {
	UnitCode     string
	UnitName     string
	UnitType     string
	Model        string
	SerialNumber string
	AccountingNo string
	UR           string
	PO           string
}

func (*RigDetails) details() {}

func (d *RigDetails) slot(field string) *string {
	switch field {
	case FieldUnitCode:
		return &d.UnitCode
	case FieldUnitName:
		return &d.UnitName
	case FieldUnitType:
		return &d.UnitType
	case FieldModel:
		return &d.Model
	case FieldSerialNumber:
		return &d.SerialNumber
	case FieldAccountingNo:
		return &d.AccountingNo
	case FieldUR:
		return &d.UR
	case FieldPO:
		return &d.PO
	}
	return nil
}

func (d *RigDetails) Get(field string) (string, bool) {
	if p := d.slot(field); p != nil {
		return *p, true
	}
	return "", false
}

func (d *RigDetails) Set(field, value string) bool {
	p := d.slot(field)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// StandardDetails carries the fields shared by Radio HT, Laptop, Printer,
// Komputer and Lainnya assets.
type StandardDetails struct {
	Model        string
	SerialNumber string
	Location     string
}

func (*StandardDetails) details() {}

func (d *StandardDetails) slot(field string) *string {
	switch field {
	case FieldModel:
		return &d.Model
	case FieldSerialNumber:
		return &d.SerialNumber
	case FieldLocation:
		return &d.Location
	}
	return nil
}

func (d *StandardDetails) Get(field string) (string, bool) {
	if p := d.slot(field); p != nil {
		return *p, true
	}
	return "", false
}

func (d *StandardDetails) Set(field, value string) bool {
	p := d.slot(field)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// NewDetails returns an empty payload of the kind the category requires.
func NewDetails(c Category) Details {
	if c.IsRig() {
		return &RigDetails{}
	}
	return &StandardDetails{}
}

// Asset is a tracked physical item. ID is zero until the store assigns one.
type Asset struct {
	ID           int64
	Category     Category
	Name         string
	Status       Status
	Note         string
	ImageURL     string
	PurchaseDate string
	Details      Details
}

// NewDraft returns a blank asset for the given category with status Aktif.
func NewDraft(c Category) Asset {
	return Asset{
		Category: c,
		Status:   StatusActive,
		Details:  NewDetails(c),
	}
}

// Persisted reports whether the store has assigned an ID.
func (a Asset) Persisted() bool {
	return a.ID != 0
}

// Value returns the string value of a field and whether it is present. A field is
// present when it belongs to the asset's field set and is not empty.
func (a Asset) Value(field string) (string, bool) {
	var v string
	switch field {
	case FieldID:
		if a.ID == 0 {
			return "", false
		}
		return strconv.FormatInt(a.ID, 10), true
	case FieldCategory:
		v = string(a.Category)
	case FieldName:
		v = a.Name
	case FieldStatus:
		v = string(a.Status)
	case FieldNote:
		v = a.Note
	case FieldImageURL:
		v = a.ImageURL
	case FieldPurchaseDate:
		v = a.PurchaseDate
	default:
		if a.Details == nil {
			return "", false
		}
		got, ok := a.Details.Get(field)
		if !ok {
			return "", false
		}
		v = got
	}
	return v, v != ""
}

// Has reports whether the field is present on this asset.
func (a Asset) Has(field string) bool {
	_, ok := a.Value(field)
	return ok
}

// Display returns the field value, or "-" when the field is absent.
func (a Asset) Display(field string) string {
	if v, ok := a.Value(field); ok {
		return v
	}
	return "-"
}

// Set assigns a field by its backend name. The ID and the category cannot be
// changed; fields outside the category's field set are rejected.
func (a *Asset) Set(field, value string) error {
	switch field {
	case FieldID:
		return fmt.Errorf("%w: %s is assigned by the store", ErrImmutableField, field)
	case FieldCategory:
		if Category(value) != a.Category {
			return fmt.Errorf("%w: %s is %q", ErrImmutableField, field, a.Category)
		}
		return nil
	case FieldName:
		a.Name = value
	case FieldStatus:
		a.Status = Status(value)
	case FieldNote:
		a.Note = value
	case FieldImageURL:
		a.ImageURL = value
	case FieldPurchaseDate:
		a.PurchaseDate = value
	default:
		if a.Details == nil {
			a.Details = NewDetails(a.Category)
		}
		if !a.Details.Set(field, value) {
			return fmt.Errorf("%w: %s for %s", ErrUnknownField, field, a.Category)
		}
	}
	return nil
}

// Keys returns every backend field of this asset in canonical order:
// id, category, then the category's field set.
func (a Asset) Keys() []string {
	specs := FieldsFor(a.Category)
	keys := make([]string, 0, len(specs)+2)
	keys = append(keys, FieldID, FieldCategory)
	for _, s := range specs {
		keys = append(keys, s.Name)
	}
	return keys
}

// Rig returns the Radio RIG payload, or nil for other categories.
func (a Asset) Rig() *RigDetails {
	d, _ := a.Details.(*RigDetails)
	return d
}
