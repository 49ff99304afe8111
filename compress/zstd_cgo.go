//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"

	"github.com/arloliu/csvtable/errs"
)

// Compress encodes data as a single zstd frame using the libzstd bindings.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decodes a zstd frame using the libzstd bindings.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, err
	}
	if len(out) > maxDecompressedSize {
		return nil, errs.ErrDecompressSizeExceeded
	}

	return out, nil
}
