package table

import (
	"fmt"
	"path/filepath"

	"github.com/arloliu/csvtable/compress"
	"github.com/arloliu/csvtable/errs"
	"github.com/arloliu/csvtable/format"
	"github.com/arloliu/csvtable/internal/options"
	"github.com/arloliu/csvtable/scan"
)

// ShapeError reports a row whose field count differs from the header row.
// It wraps errs.ErrFieldCountMismatch for errors.Is matching.
type ShapeError struct {
	// Row is the absolute record index in the file, header included.
	Row int

	// Found is the field count of the offending row.
	Found int

	// Expected is the header's field count.
	Expected int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("incorrect number of fields on row %d: found %d, expected %d",
		e.Row, e.Found, e.Expected)
}

func (e *ShapeError) Unwrap() error {
	return errs.ErrFieldCountMismatch
}

// Load reads the CSV file at path into a new Table.
//
// Paths ending in a recognized compression suffix (.gz, .zst, .lz4, .s2) are
// decompressed transparently. The flags control post-load normalization; use
// format.Default for the common case and format.None to load verbatim.
//
// Load either succeeds completely or fails with no partial state: an IO
// failure, an empty file, or a ShapeError all leave nothing behind.
func Load(path string, flags format.LoadFlag, opts ...Option) (*Table, error) {
	t := newTable()
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	codec, inner := compress.ForPath(path)

	size, err := t.fs.Size(path)
	if err != nil {
		t.logger.Errorf("unable to open %q for reading: %v", path, err)

		return nil, err
	}
	t.logger.Infof("loading CSV %q (%d bytes)", filepath.Base(inner), size)

	data, err := t.fs.ReadFile(path)
	if err != nil {
		t.logger.Errorf("unable to open %q for reading: %v", path, err)

		return nil, err
	}

	if data, err = codec.Decompress(data); err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	if err := t.parse(data, flags); err != nil {
		return nil, err
	}

	return t, nil
}

// Parse builds a Table from raw CSV bytes already in memory.
//
// The Table takes ownership of data as its arena: parsing rewrites it in
// place and the caller must not touch it afterwards. Semantics otherwise
// match Load.
func Parse(data []byte, flags format.LoadFlag, opts ...Option) (*Table, error) {
	t := newTable()
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	if err := t.parse(data, flags); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table) parse(data []byte, flags format.LoadFlag) error {
	if len(data) == 0 {
		return errs.ErrEmptyFile
	}

	t.buf = data

	lines := scan.NewLineScanner(data)
	for i := 0; ; i++ {
		line, ok := lines.Next()
		if !ok {
			break
		}

		row := make([][]byte, 0, t.FieldCount())
		fields := scan.NewFieldScanner(line)
		for {
			field, ok := fields.Next()
			if !ok {
				break
			}
			row = append(row, field)
		}

		t.cells = append(t.cells, row)

		if len(row) != len(t.cells[0]) {
			shapeErr := &ShapeError{Row: i, Found: len(row), Expected: len(t.cells[0])}
			t.logger.Errorf("%v", shapeErr)
			t.release()

			return shapeErr
		}
	}

	// Normalization order is fixed: columns, rows, then header synthesis.
	if flags.HasPruneEmptyColumns() {
		t.PruneColumns()
	}
	t.PruneRows(flags)

	if flags.HasHeaderlessSingleField() {
		header := [][]byte{[]byte("name")}
		t.cells = append([][][]byte{header}, t.cells...)
	}

	return nil
}
