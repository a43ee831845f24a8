package sheet

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/itams/internal/asset"
)

const (
	// SheetName is the name of the single sheet written by Export.
	SheetName = "Assets"

	// ExportFileName is the download name of an exported workbook.
	ExportFileName = "IT_Assets_Report.xlsx"

	// ContentType is the MIME type of .xlsx workbooks.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Export writes assets as a workbook to w.
func Export(w io.Writer, assets []asset.Asset) error {
	records := make([]asset.Record, len(assets))
	for i, a := range assets {
		records[i] = a.Record()
	}
	return ExportRecords(w, records)
}

// ExportRecords writes records as a workbook to w. The header row is the union
// of all keys in the order they first appear; absent values are left blank.
func ExportRecords(w io.Writer, records []asset.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := Header(records)
	if err := writeRow(f, 1, toCells(header)); err != nil {
		return err
	}

	for i, r := range records {
		cells := make([]any, len(header))
		for j, key := range header {
			if v, ok := r[key]; ok && v != nil {
				cells[j] = v
			}
		}
		if err := writeRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Header returns the union of record keys in first-appearance order. Keys of a
// single record are taken in asset field order when they are known fields.
func Header(records []asset.Record) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	for _, r := range records {
		for _, k := range orderedKeys(r) {
			add(k)
		}
	}
	return out
}

// orderedKeys lists the keys of r: id and category first, then the category's
// field set, then any remaining keys sorted by name.
func orderedKeys(r asset.Record) []string {
	keys := make([]string, 0, len(r))
	used := make(map[string]bool, len(r))
	take := func(k string) {
		if _, ok := r[k]; ok && !used[k] {
			used[k] = true
			keys = append(keys, k)
		}
	}

	take(asset.FieldID)
	take(asset.FieldCategory)
	if c, err := asset.ParseCategory(r.String(asset.FieldCategory)); err == nil {
		for _, s := range asset.FieldsFor(c) {
			take(s.Name)
		}
	}

	var rest []string
	for k := range r {
		if !used[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func writeRow(f *excelize.File, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	return nil
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
