package asset

import "strings"

// Criteria narrows an asset list. Empty criteria pass everything.
type Criteria struct {
	Category Category
	Search   string
	UnitType string // honoured only when Category is Radio RIG
}

// searchFields are matched, case-insensitively, against Criteria.Search.
var searchFields = []string{FieldName, FieldSerialNumber, FieldModel}

// Filter applies, in order: category equality, free-text search over name,
// serial number and model, then unit type equality for Radio RIG. It returns a
// new slice and leaves assets untouched.
func Filter(assets []Asset, c Criteria) []Asset {
	needle := strings.ToLower(c.Search)
	byUnit := c.Category.IsRig() && c.UnitType != ""

	out := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if c.Category != "" && a.Category != c.Category {
			continue
		}
		if needle != "" && !matchesSearch(a, needle) {
			continue
		}
		if byUnit {
			if v, _ := a.Value(FieldUnitType); v != c.UnitType {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(a Asset, needle string) bool {
	for _, f := range searchFields {
		if v, ok := a.Value(f); ok && strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
