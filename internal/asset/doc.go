// Package asset holds the inventory data model shared by the web console and the CLI.
//
// An [Asset] is a tagged union keyed by its [Category]. Every asset carries the shared
// base fields (name, status, note, image URL, purchase date) plus exactly one
// [Details] payload: [RigDetails] for Radio RIG units and [StandardDetails] for every
// other category. The payload kind is decided by the category alone and the category
// never changes once the store has assigned an ID.
//
// # Field sets
//
// [FieldsFor] returns the ordered field descriptors for a category. Detail pages,
// edit forms, spreadsheet columns and JSON records all iterate the same list, so the
// read-only and editable renderings cannot drift apart.
//
// # Records
//
// [Record] is the flat, backend-shaped representation (`nama_aset`, `jenis_unit`, ...).
// A nil value is the explicit "absent" marker; [Sanitize] rewrites empty strings to
// nil before a record is sent to the store so that "cleared" and "unedited" differ.
//
// # Filtering
//
// [Filter] narrows an in-memory collection by category, free-text search and (for
// Radio RIG only) unit type. It never mutates its input.
package asset
