package compress

import (
	"bytes"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec reads and writes LZ4 frames (.lz4 files).
//
// LZ4 trades compression ratio for very fast decompression; it suits tables
// that are reloaded often.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 frame codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress wraps data in an LZ4 frame.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress unpacks an LZ4 frame.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))

	out, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
