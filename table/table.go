package table

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/csvtable/fsio"
	"github.com/arloliu/csvtable/internal/hash"
	"github.com/arloliu/csvtable/logging"
)

// Table is a rectangular CSV table held fully in memory.
//
// The zero value is not usable; construct with Load or Parse. A Table must
// not be used by more than one goroutine at a time.
type Table struct {
	// buf is the owned arena. All cells alias it; releasing one releases
	// the other.
	buf []byte

	// cells[0] is the header row; cells[1:] are data rows.
	cells [][][]byte

	fs     fsio.FileSystem
	logger logging.Logger
}

func newTable() *Table {
	return &Table{
		fs:     fsio.OS{},
		logger: logging.Nop(),
	}
}

// FieldCount returns the number of columns, derived from the header row.
func (t *Table) FieldCount() int {
	if len(t.cells) == 0 {
		return 0
	}

	return len(t.cells[0])
}

// RowCount returns the number of data rows, excluding the header.
func (t *Table) RowCount() int {
	if len(t.cells) == 0 {
		return 0
	}

	return len(t.cells) - 1
}

// FieldName returns the header name of column i.
//
// The index must be in [0, FieldCount()); violating the bounds is a caller
// bug and panics.
func (t *Table) FieldName(i int) string {
	if i < 0 || i >= t.FieldCount() {
		panic(fmt.Sprintf("csvtable: field index %d out of range [0,%d)", i, t.FieldCount()))
	}

	return view(t.cells[0][i])
}

// CellValue returns the value at data row r, column f. Row indices exclude
// the header: row 0 is the first data row.
//
// Indices must be in range; violating the bounds is a caller bug and panics.
func (t *Table) CellValue(r, f int) string {
	if r < 0 || r >= t.RowCount() {
		panic(fmt.Sprintf("csvtable: row index %d out of range [0,%d)", r, t.RowCount()))
	}
	if f < 0 || f >= t.FieldCount() {
		panic(fmt.Sprintf("csvtable: field index %d out of range [0,%d)", f, t.FieldCount()))
	}

	return view(t.cells[r+1][f])
}

// DeleteRow removes data row r. Indices exclude the header.
func (t *Table) DeleteRow(r int) {
	if r < 0 || r >= t.RowCount() {
		panic(fmt.Sprintf("csvtable: row index %d out of range [0,%d)", r, t.RowCount()))
	}

	t.cells = append(t.cells[:r+1], t.cells[r+2:]...)
}

// Fingerprint returns a 64-bit content hash covering every cell including
// the header, sensitive to both values and shape. Two tables with identical
// rows and columns fingerprint identically regardless of how their source
// files were quoted.
func (t *Table) Fingerprint() uint64 {
	d := hash.NewDigest()
	for _, row := range t.cells {
		for _, field := range row {
			d.WriteField(field)
		}
		d.EndRow()
	}

	return d.Sum64()
}

// release discards all partial state after a failed load.
func (t *Table) release() {
	t.buf = nil
	t.cells = nil
}

// view exposes a cell as a string without copying. The string aliases the
// arena and shares its lifetime.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
