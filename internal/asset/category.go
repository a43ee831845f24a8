package asset

import (
	"fmt"
	"strings"
)

// Category classifies an asset and selects its variant payload.
type Category string

const (
	CategoryRadioHT  Category = "Radio HT"
	CategoryRadioRig Category = "Radio RIG"
	CategoryLaptop   Category = "Laptop"
	CategoryPrinter  Category = "Printer"
	CategoryComputer Category = "Komputer"
	CategoryOther    Category = "Lainnya"
)

// Categories lists every category in dashboard order.
var Categories = []Category{
	CategoryRadioHT,
	CategoryRadioRig,
	CategoryLaptop,
	CategoryPrinter,
	CategoryComputer,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsRig reports whether assets of this category carry a [RigDetails] payload.
func (c Category) IsRig() bool {
	return c == CategoryRadioRig
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a label to a Category. Matching ignores surrounding
// whitespace and letter case so "radio rig" and "Radio RIG" are the same category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
