package asset

// validate.go checks assets and history entries before they are written.
//
// Rules are expressed as struct tags for go-playground/validator. Failures are
// translated to [ValidationErrors], one entry per field, carrying the backend
// field name and a message suitable for the form.

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("asset_status", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
	mustRegister("asset_category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	mustRegister("unit_type", func(fl validator.FieldLevel) bool {
		return IsUnitType(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("asset: register validation %s: %v", tag, err))
	}
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string // backend field name
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors collects every invalid field of one write.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// For returns the message recorded for field, if any.
func (es ValidationErrors) For(field string) string {
	for _, e := range es {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

type assetInput struct {
	Category     string `json:"category" validate:"required,asset_category"`
	Name         string `json:"nama_aset" validate:"required,max=255"`
	Status       string `json:"status" validate:"required,asset_status"`
	PurchaseDate string `json:"tgl_pembelian" validate:"omitempty,datetime=2006-01-02"`
	ImageURL     string `json:"gambar_url" validate:"omitempty,url"`
	UnitType     string `json:"jenis_unit" validate:"omitempty,unit_type"`
}

// Validate checks an asset before create or update. Only the name and the status
// are required; variant fields are optional for every category.
func Validate(a Asset) error {
	in := assetInput{
		Category:     string(a.Category),
		Name:         strings.TrimSpace(a.Name),
		Status:       string(a.Status),
		PurchaseDate: a.PurchaseDate,
		ImageURL:     a.ImageURL,
	}
	if rig := a.Rig(); rig != nil {
		in.UnitType = rig.UnitType
	}
	return translate(validate.Struct(in))
}

// ValidateHistory checks a history entry before it is added.
func ValidateHistory(d HistoryDraft) error {
	d.User = strings.TrimSpace(d.User)
	d.Status = strings.TrimSpace(d.Status)
	return translate(validate.Struct(d))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Value:   fmt.Sprint(fe.Value()),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "asset_status":
		return "status tidak valid"
	case "asset_category":
		return "kategori tidak dikenal"
	case "unit_type":
		return "jenis unit tidak dikenal"
	case "datetime":
		return "format tanggal harus YYYY-MM-DD"
	case "url":
		return "URL tidak valid"
	case "max":
		return "terlalu panjang"
	case "gt":
		return "harus lebih besar dari " + fe.Param()
	}
	return "tidak valid"
}
