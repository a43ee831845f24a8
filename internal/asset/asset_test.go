package asset

import (
	"errors"
	"testing"
)

func rigAsset() Asset {
	a := NewDraft(CategoryRadioRig)
	a.ID = 7
	a.Name = "RIG Dump Truck 12"
	a.Details = &RigDetails{
		UnitCode:     "DT-012",
		UnitName:     "Dump Truck 12",
		UnitType:     "R100",
		Model:        "Motorola XTL",
		SerialNumber: "SN-RIG-001",
	}
	return a
}

func TestNewDraft(t *testing.T) {
	for _, c := range Categories {
		t.Run(string(c), func(t *testing.T) {
			d := NewDraft(c)
			if d.Category != c {
				t.Errorf("Category = %q, want %q", d.Category, c)
			}
			if d.Status != StatusActive {
				t.Errorf("Status = %q, want %q", d.Status, StatusActive)
			}
			if d.Persisted() {
				t.Error("draft should not carry an ID")
			}
			_, isRig := d.Details.(*RigDetails)
			if isRig != c.IsRig() {
				t.Errorf("rig payload = %v, want %v", isRig, c.IsRig())
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Radio RIG", CategoryRadioRig, false},
		{"  radio ht ", CategoryRadioHT, false},
		{"KOMPUTER", CategoryComputer, false},
		{"Server", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValueAndDisplay(t *testing.T) {
	a := rigAsset()

	if v, ok := a.Value(FieldUnitType); !ok || v != "R100" {
		t.Errorf("Value(jenis_unit) = %q, %v", v, ok)
	}
	if a.Has(FieldLocation) {
		t.Error("rig asset should not have lokasi")
	}
	if got := a.Display(FieldLocation); got != "-" {
		t.Errorf("Display(lokasi) = %q, want placeholder", got)
	}
	if got := a.Display(FieldPO); got != "-" {
		t.Errorf("Display(po) = %q, want placeholder for empty field", got)
	}
	if got := a.Display(FieldID); got != "7" {
		t.Errorf("Display(id) = %q, want 7", got)
	}

	var zero Asset
	if zero.Has(FieldModel) {
		t.Error("asset without payload must not report variant fields")
	}
}

func TestSet(t *testing.T) {
	a := NewDraft(CategoryLaptop)

	if err := a.Set(FieldLocation, "Gudang A"); err != nil {
		t.Fatalf("Set(lokasi) error = %v", err)
	}
	if got := a.Display(FieldLocation); got != "Gudang A" {
		t.Errorf("lokasi = %q", got)
	}

	if err := a.Set(FieldUnitCode, "X"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(unit_code) on laptop error = %v, want ErrUnknownField", err)
	}
	if err := a.Set(FieldCategory, string(CategoryPrinter)); !errors.Is(err, ErrImmutableField) {
		t.Errorf("changing category error = %v, want ErrImmutableField", err)
	}
	if err := a.Set(FieldCategory, string(CategoryLaptop)); err != nil {
		t.Errorf("re-setting same category error = %v", err)
	}
	if err := a.Set(FieldID, "99"); !errors.Is(err, ErrImmutableField) {
		t.Errorf("Set(id) error = %v, want ErrImmutableField", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	a := rigAsset()
	a.Note = "dipasang 2023"

	got, err := FromRecord(a.Record())
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	for _, k := range a.Keys() {
		if got.Display(k) != a.Display(k) {
			t.Errorf("%s = %q, want %q", k, got.Display(k), a.Display(k))
		}
	}
}

func TestRecordAbsentFieldsAreNil(t *testing.T) {
	r := NewDraft(CategoryPrinter).Record()

	if _, ok := r[FieldID]; ok {
		t.Error("draft record must not carry an id")
	}
	v, ok := r[FieldLocation]
	if !ok || v != nil {
		t.Errorf("lokasi = %v (present %v), want explicit nil", v, ok)
	}
	if _, ok := r[FieldUnitCode]; ok {
		t.Error("printer record must not carry rig fields")
	}
}

func TestFromRecord(t *testing.T) {
	r := Record{
		"id":            float64(12),
		"category":      "Radio HT",
		"nama_aset":     "HT Motorola",
		"status":        "Perbaikan",
		"serial_number": "HT-77",
		"lokasi":        nil,
		"created_at":    "2024-01-02T00:00:00Z",
	}
	a, err := FromRecord(r)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if a.ID != 12 || a.Status != StatusRepair || a.Display(FieldSerialNumber) != "HT-77" {
		t.Errorf("unexpected asset: %+v", a)
	}
	if a.Has(FieldLocation) {
		t.Error("nil lokasi should be absent")
	}

	if _, err := FromRecord(Record{"nama_aset": "x"}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("missing category error = %v, want ErrUnknownCategory", err)
	}
	if _, err := FromRecord(Record{"category": "Laptop", "id": 1.5}); err == nil {
		t.Error("fractional id should fail")
	}
}

func TestJSON(t *testing.T) {
	in := []byte(`{"id":3,"category":"Radio RIG","nama_aset":"RIG 3","status":"Aktif","jenis_unit":"LV","ur":null}`)

	var a Asset
	if err := json.Unmarshal(in, &a); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if a.Rig() == nil || a.Rig().UnitType != "LV" {
		t.Fatalf("expected rig payload with LV, got %+v", a.Details)
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var back Asset
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-Unmarshal error = %v", err)
	}
	if back.ID != 3 || back.Name != "RIG 3" || back.Rig().UnitType != "LV" {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestSanitize(t *testing.T) {
	in := Record{
		"nama_aset": "Laptop Dell",
		"lokasi":    "",
		"catatan":   nil,
		"model":     "Latitude",
	}
	out := Sanitize(in)

	if v, ok := out["lokasi"]; !ok || v != nil {
		t.Errorf("empty lokasi = %v (present %v), want nil", v, ok)
	}
	if v, ok := out["catatan"]; !ok || v != nil {
		t.Errorf("absent catatan = %v (present %v), want nil", v, ok)
	}
	if out["nama_aset"] != "Laptop Dell" || out["model"] != "Latitude" {
		t.Errorf("non-empty fields changed: %v", out)
	}
	if _, ok := out["serial_number"]; ok {
		t.Error("missing keys must stay missing")
	}
	if in["lokasi"] != "" {
		t.Error("Sanitize must not modify its input")
	}
}
