package scan

import "bytes"

// Splitter carves delimiter-separated tokens out of a single byte buffer.
//
// The cursor state is explicit: construct one Splitter per buffer and call
// Next repeatedly. Tokens are views into the buffer, valid for the buffer's
// lifetime.
//
// Next never returns the trailing remainder beyond the last delimiter; a
// caller that treats the remainder as a final token reads it from Rest.
type Splitter struct {
	buf []byte
	pos int
}

// NewSplitter creates a Splitter positioned at the start of buf.
func NewSplitter(buf []byte) *Splitter {
	return &Splitter{buf: buf}
}

// Next returns the token ending at the next occurrence of the literal
// delimiter and advances the cursor past the delimiter.
//
// Returns false when the unconsumed remainder contains no delimiter; the
// cursor is left unchanged so Rest still reports the remainder. The delimiter
// must be non-empty.
//
// Parameters:
//   - delim: Literal delimiter byte sequence to search for
//
// Returns:
//   - []byte: Token view ending at the delimiter (may be empty)
//   - bool: false when no delimiter remains
func (s *Splitter) Next(delim []byte) ([]byte, bool) {
	if len(delim) == 0 || s.pos >= len(s.buf) {
		return nil, false
	}

	i := bytes.Index(s.buf[s.pos:], delim)
	if i < 0 {
		return nil, false
	}

	tok := s.buf[s.pos : s.pos+i]
	s.pos += i + len(delim)

	return tok, true
}

// Rest returns the unconsumed remainder of the buffer without advancing.
func (s *Splitter) Rest() []byte {
	return s.buf[s.pos:]
}

// Peek returns the byte at the cursor, or false when the buffer is exhausted.
func (s *Splitter) Peek() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}

	return s.buf[s.pos], true
}

// Done reports whether the cursor has consumed the entire buffer.
func (s *Splitter) Done() bool {
	return s.pos >= len(s.buf)
}
