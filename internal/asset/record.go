package asset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is the flat, backend-shaped form of an asset or a partial edit.
// A nil value marks a field as explicitly absent.
type Record map[string]any

// String returns the value under key rendered as text; absent values give "".
func (r Record) String(key string) string {
	return cellString(r[key])
}

// Without returns a copy of r with the given keys removed.
func (r Record) Without(keys ...string) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Record flattens the asset. Unassigned IDs are omitted and empty fields are nil.
func (a Asset) Record() Record {
	r := make(Record, len(a.Keys()))
	for _, k := range a.Keys() {
		switch k {
		case FieldID:
			if a.ID != 0 {
				r[k] = a.ID
			}
		default:
			if v, ok := a.Value(k); ok {
				r[k] = v
			} else {
				r[k] = nil
			}
		}
	}
	return r
}

// FromRecord builds an asset from a backend record. The category decides the
// variant; keys outside the category's field set are ignored.
func FromRecord(r Record) (Asset, error) {
	cat, err := ParseCategory(r.String(FieldCategory))
	if err != nil {
		return Asset{}, err
	}

	a := Asset{Category: cat, Details: NewDetails(cat)}
	if raw, ok := r[FieldID]; ok && raw != nil {
		id, err := parseID(raw)
		if err != nil {
			return Asset{}, err
		}
		a.ID = id
	}

	for k, v := range r {
		if k == FieldID || k == FieldCategory {
			continue
		}
		if err := a.Set(k, cellString(v)); err != nil {
			// Stores attach bookkeeping columns (created_at, ...) we do not model.
			continue
		}
	}
	return a, nil
}

// MarshalJSON encodes the asset as its flat record.
func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Record())
}

// UnmarshalJSON decodes a flat backend record.
func (a *Asset) UnmarshalJSON(b []byte) error {
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	got, err := FromRecord(r)
	if err != nil {
		return err
	}
	*a = got
	return nil
}

// Sanitize returns a copy of r in which every empty string is replaced by nil.
// Keys that are missing stay missing, nil stays nil and non-empty values are kept.
func Sanitize(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		if s, ok := v.(string); ok && s == "" {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return out
}

func parseID(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("invalid number: id %v is not an integer", n)
		}
		return int64(n), nil
	case interface{ Int64() (int64, error) }:
		return n.Int64()
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number: id %q", n)
		}
		return id, nil
	}
	return 0, fmt.Errorf("invalid number: id of type %T", v)
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
