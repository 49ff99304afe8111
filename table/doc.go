// Package table implements the in-memory CSV table model.
//
// A Table owns a single byte arena holding the decoded file contents; every
// cell is a view into that arena, carved out by the scan package. Parsing is
// destructive (quoted fields are unescaped in place), and nothing is copied:
// arena and table share one lifetime.
//
// Row 0 is always the header. Loading enforces the rectangular shape
// invariant: every row must have exactly the header's field count, and a
// mismatch aborts the load with a ShapeError. After a successful load the
// table can be cleaned up structurally (PruneColumns, PruneRows, DeleteRow),
// queried (FieldName, CellValue), and serialized back out with canonical
// re-quoting (WriteFile, Bytes).
//
// File access and diagnostics are injected capabilities (fsio.FileSystem,
// logging.Logger); the model itself never touches globals.
package table
