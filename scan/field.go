package scan

var fieldDelim = []byte{','}

// FieldScanner extracts the comma-separated fields of a single record line,
// honoring double-quote quoting.
//
// An unquoted field runs to the next comma or end of line. A field beginning
// with '"' runs to the next quote that is not doubled; an embedded "" pair is
// collapsed to one literal quote. Collapsing rewrites the line in place (the
// unescaped field is shorter than its quoted form), so the scanner must own
// scanning of the line exclusively.
//
// Every line yields at least one field: an empty line yields a single empty
// field. The field after the last comma is yielded even when empty.
type FieldScanner struct {
	sp   *Splitter
	done bool
}

// NewFieldScanner creates a FieldScanner over one record line. The line must
// not contain the record separator.
func NewFieldScanner(line []byte) *FieldScanner {
	return &FieldScanner{sp: NewSplitter(line)}
}

// Next returns the next unescaped field and true, or nil and false after the
// final field. Returned slices are views into the line.
func (f *FieldScanner) Next() ([]byte, bool) {
	if f.done {
		return nil, false
	}

	if c, ok := f.sp.Peek(); ok && c == '"' {
		return f.quoted(), true
	}

	if tok, ok := f.sp.Next(fieldDelim); ok {
		return tok, true
	}

	// No comma remains: the leftover is the final field.
	f.done = true

	return f.sp.Rest(), true
}

// quoted consumes one quoted field starting at the cursor.
//
// Two cursors walk the buffer: src reads, dst compacts escaped quotes in
// place. dst trails src by at least one byte (the opening quote), so the
// copy never overtakes unread input. The closing quote and the comma that
// follows it are consumed; bytes between them are discarded. A field with no
// closing quote is closed by the end of the line.
func (f *FieldScanner) quoted() []byte {
	buf := f.sp.buf
	start := f.sp.pos
	dst := start
	src := start + 1

	for src < len(buf) {
		c := buf[src]
		if c == '"' {
			if src+1 < len(buf) && buf[src+1] == '"' {
				// Escaped quote: keep one.
				buf[dst] = '"'
				dst++
				src += 2

				continue
			}

			// Closing quote.
			src++

			break
		}

		buf[dst] = c
		dst++
		src++
	}

	field := buf[start:dst]
	f.sp.pos = src

	// Position at the next field; with no comma left this was the last field.
	if _, ok := f.sp.Next(fieldDelim); !ok {
		f.done = true
	}

	return field
}
