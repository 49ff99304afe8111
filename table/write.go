package table

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/csvtable/compress"
	"github.com/arloliu/csvtable/internal/pool"
)

// recordSeparator terminates every serialized row, the final row included.
const recordSeparator = "\r\n"

// WriteFile serializes the table to path, header row first.
//
// An existing file is only replaced when overwrite is set; otherwise the
// write is refused with errs.ErrFileExists and nothing is touched. A
// recognized compression suffix on path compresses the output transparently,
// mirroring Load.
func (t *Table) WriteFile(path string, overwrite bool) error {
	codec, _ := compress.ForPath(path)

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)
	t.appendTo(buf)

	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	if err := t.fs.WriteFile(path, data, overwrite); err != nil {
		t.logger.Errorf("unable to write %q: %v", path, err)

		return err
	}

	return nil
}

// Bytes returns the serialized table as a fresh slice.
func (t *Table) Bytes() []byte {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)
	t.appendTo(buf)

	return append([]byte(nil), buf.Bytes()...)
}

// DumpTo writes a human-readable rendition of the table to w, one line per
// row. With withRowIndex set, each line is prefixed by its absolute row
// index, header included.
func (t *Table) DumpTo(w io.Writer, withRowIndex bool) error {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	for r, row := range t.cells {
		if withRowIndex {
			_, _ = fmt.Fprintf(buf, "[%d]: ", r)
		}
		appendRow(buf, row)
		_, _ = buf.WriteString("\n")
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("dump table: %w", err)
	}

	return nil
}

func (t *Table) appendTo(buf *pool.ByteBuffer) {
	for _, row := range t.cells {
		appendRow(buf, row)
		_, _ = buf.WriteString(recordSeparator)
	}
}

func appendRow(buf *pool.ByteBuffer, row [][]byte) {
	for i, field := range row {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		appendField(buf, field)
	}
}

// appendField emits one field with canonical quoting: a field containing a
// comma or a quote is wrapped in quotes with embedded quotes doubled, any
// other field is emitted verbatim. This is the exact inverse of the field
// scanner's unescaping.
func appendField(buf *pool.ByteBuffer, field []byte) {
	if !bytes.ContainsAny(field, `,"`) {
		_, _ = buf.Write(field)

		return
	}

	_ = buf.WriteByte('"')
	for _, c := range field {
		if c == '"' {
			_, _ = buf.WriteString(`""`)
		} else {
			_ = buf.WriteByte(c)
		}
	}
	_ = buf.WriteByte('"')
}
