// Package sheet moves asset records in and out of .xlsx workbooks.
//
// Export writes one sheet named "Assets" whose header row is the union of the
// record keys in first-appearance order. Import reads the first sheet of a
// workbook back into records, dropping identifiers so the store assigns new ones.
// Neither side validates rows; that is left to the store.
package sheet
