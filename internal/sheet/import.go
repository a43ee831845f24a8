package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/itams/internal/asset"
)

var (
	// ErrInvalidFormat is returned when the input is not a readable workbook.
	ErrInvalidFormat = errors.New("invalid workbook format")

	// ErrNoRows is returned when the first sheet has no header or no data rows.
	ErrNoRows = errors.New("workbook has no data rows")
)

// Import reads the first sheet of a workbook. The first row names the fields;
// every later non-blank row becomes one record. Blank cells are omitted and the
// id column is dropped.
func Import(r io.Reader) ([]asset.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]asset.Record, error) {
	// Skip leading blank rows to find the header.
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = CleanCell(h)
	}

	var out []asset.Record
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(asset.Record, len(row))
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			key := header[i]
			if key == "" || key == asset.FieldID {
				continue
			}
			if v := cellValue(cell); v != "" {
				rec[key] = v
			}
		}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}
