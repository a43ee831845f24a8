package asset

import "fmt"

// Status is the lifecycle state of an asset. The values are the backend's labels.
type Status string

const (
	StatusActive      Status = "Aktif"
	StatusRepair      Status = "Perbaikan"
	StatusInactive    Status = "Non-Aktif"
	StatusLost        Status = "Hilang"
	StatusDamaged     Status = "Rusak"
	StatusTransferred Status = "Mutasi"
)

// Statuses is the full enumeration in form order.
var Statuses = []Status{
	StatusActive,
	StatusRepair,
	StatusInactive,
	StatusLost,
	StatusDamaged,
	StatusTransferred,
}

// Valid reports whether s is part of the enumeration.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus returns the Status for an exact backend label.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func statusLabels() []string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}
