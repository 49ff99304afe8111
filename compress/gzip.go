package compress

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec reads and writes standard gzip members (.gz files).
//
// Gzip is the interchange default: slowest of the supported codecs but
// readable by everything. Output is a single member with no header metadata.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec with the default compression level.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress wraps data in a gzip member.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates a gzip member, validating its checksum.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
