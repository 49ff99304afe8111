package scan

// LineScanner splits a buffer into records.
//
// A record ends at "\n", "\r\n", or a bare "\r"; the three endings may be
// mixed within one buffer. Consecutive endings produce empty records, which
// the table layer needs to see so empty-row pruning can act on them. A final
// record without a trailing ending is still returned; a trailing ending does
// not produce a final empty record.
type LineScanner struct {
	buf []byte
	pos int
}

// NewLineScanner creates a LineScanner positioned at the start of buf.
func NewLineScanner(buf []byte) *LineScanner {
	return &LineScanner{buf: buf}
}

// Next returns the next record and true, or nil and false after the last
// record. The returned slice is a view into the buffer, line ending excluded.
func (s *LineScanner) Next() ([]byte, bool) {
	if s.pos >= len(s.buf) {
		return nil, false
	}

	start := s.pos
	for i := s.pos; i < len(s.buf); i++ {
		switch s.buf[i] {
		case '\n':
			s.pos = i + 1
			return s.buf[start:i], true
		case '\r':
			// CRLF counts as one ending.
			if i+1 < len(s.buf) && s.buf[i+1] == '\n' {
				s.pos = i + 2
			} else {
				s.pos = i + 1
			}

			return s.buf[start:i], true
		}
	}

	s.pos = len(s.buf)

	return s.buf[start:], true
}
