package sheet

import "strings"

// CleanCell removes common spreadsheet artifacts from a header cell:
//   - a leading byte order mark
//   - surrounding whitespace
//   - the Excel text-formula wrapper ="..."
//   - surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// cellValue returns a data cell as written. Quotes and padding are part of
// the value; a cell holding only whitespace is empty.
func cellValue(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// isBlankRow reports whether every cell is empty.
func isBlankRow(row []string) bool {
	for _, c := range row {
		if cellValue(c) != "" {
			return false
		}
	}
	return true
}
