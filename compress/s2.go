package compress

import (
	"bytes"

	"github.com/klauspost/compress/s2"
)

// S2Codec reads and writes S2 streams (.s2 files). S2 is a Snappy-compatible
// format balancing speed and ratio.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 stream codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress wraps data in an S2 stream.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress unpacks an S2 stream.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	r := s2.NewReader(bytes.NewReader(data))

	out, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
