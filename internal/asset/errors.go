package asset

import "errors"

var (
	// ErrUnknownCategory is returned for category labels outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownStatus is returned for status labels outside the fixed enumeration.
	ErrUnknownStatus = errors.New("invalid enum: unknown status")

	// ErrUnknownField is returned when a field does not belong to the asset's variant.
	ErrUnknownField = errors.New("unknown field")

	// ErrImmutableField is returned on attempts to change the ID or the category.
	ErrImmutableField = errors.New("field is immutable")
)
