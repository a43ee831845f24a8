package asset

// Kind is the input widget used for a field.
type Kind string

const (
	KindText     Kind = "text"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindTextArea Kind = "textarea"
)

// FieldSpec describes one editable/displayable field.
type FieldSpec struct {
	Name        string   // backend field name
	Label       string   // label shown in forms and detail pages
	Kind        Kind     // input widget
	Options     []string // fixed option set for KindSelect
	Required    bool     // form refuses to submit without a value
	Placeholder string
}

var rigFields = []FieldSpec{
	{Name: FieldUnitCode, Label: "Unit Code", Kind: KindText},
	{Name: FieldUnitName, Label: "Nama Unit", Kind: KindText},
	{Name: FieldUnitType, Label: "Jenis Unit", Kind: KindSelect, Options: UnitTypes},
	{Name: FieldModel, Label: "Model", Kind: KindText},
	{Name: FieldSerialNumber, Label: "Serial Number", Kind: KindText},
	{Name: FieldAccountingNo, Label: "No Asset Acc", Kind: KindText},
	{Name: FieldUR, Label: "UR", Kind: KindText},
	{Name: FieldPO, Label: "PO", Kind: KindText},
}

var standardFields = []FieldSpec{
	{Name: FieldModel, Label: "Model", Kind: KindText},
	{Name: FieldSerialNumber, Label: "Serial Number", Kind: KindText},
	{Name: FieldLocation, Label: "Lokasi", Kind: KindText},
}

// sharedFields is appended to every variant, in this order.
var sharedFields = []FieldSpec{
	{Name: FieldName, Label: "Nama Aset", Kind: KindText, Required: true},
	{Name: FieldStatus, Label: "Status", Kind: KindSelect, Options: statusLabels(), Required: true},
	{Name: FieldPurchaseDate, Label: "Tanggal Pembelian", Kind: KindDate},
	{Name: FieldNote, Label: "Catatan", Kind: KindTextArea},
	{Name: FieldImageURL, Label: "URL Gambar", Kind: KindText, Placeholder: "https://picsum.photos/400/300"},
}

// FieldsFor returns the ordered field set for a category: the variant fields
// followed by the shared fields. The returned slice is a fresh copy.
func FieldsFor(c Category) []FieldSpec {
	variant := standardFields
	if c.IsRig() {
		variant = rigFields
	}
	out := make([]FieldSpec, 0, len(variant)+len(sharedFields))
	out = append(out, variant...)
	out = append(out, sharedFields...)
	return out
}

// LookupField returns the FieldSpec of a field within a category's field set.
func LookupField(c Category, name string) (FieldSpec, bool) {
	for _, s := range FieldsFor(c) {
		if s.Name == name {
			return s, true
		}
	}
	return FieldSpec{}, false
}

// DetailRow is one label/value pair of a read-only detail page.
type DetailRow struct {
	Name  string
	Label string
	Value string
}

// DetailRows renders an asset for read-only display using the same field set as
// the edit form. Absent values render as "-".
func DetailRows(a Asset) []DetailRow {
	specs := FieldsFor(a.Category)
	rows := make([]DetailRow, len(specs))
	for i, s := range specs {
		rows[i] = DetailRow{Name: s.Name, Label: s.Label, Value: a.Display(s.Name)}
	}
	return rows
}

// Column is a list-table column.
type Column struct {
	Name  string
	Label string
}

// ListColumns returns the asset-list columns for a category. Jenis Unit is only
// shown for Radio RIG.
func ListColumns(c Category) []Column {
	cols := []Column{{Name: FieldName, Label: "Nama Aset"}}
	if c.IsRig() {
		cols = append(cols, Column{Name: FieldUnitType, Label: "Jenis Unit"})
	}
	return append(cols,
		Column{Name: FieldModel, Label: "Model"},
		Column{Name: FieldSerialNumber, Label: "Serial Number"},
		Column{Name: FieldStatus, Label: "Status"},
	)
}
