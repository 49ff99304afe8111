package compress

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/csvtable/errs"
)

// maxDecompressedSize caps the output of any Decompress call. CSV tables are
// loaded whole into memory, so a runaway frame must fail instead of
// exhausting the process.
const maxDecompressedSize = 1 << 30 // 1GiB

// Compressor compresses a fully serialized file body.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations validate the framing and return an error on corrupted or
// foreign input rather than producing garbage.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// ForPath returns the codec matching path's compression suffix and the path
// with that suffix removed.
//
// Recognized suffixes are ".gz", ".zst", ".lz4", and ".s2". Any other path
// maps to the no-op codec and is returned unchanged, so callers can route
// every read and write through the returned codec unconditionally.
func ForPath(path string) (Codec, string) {
	for suffix, codec := range suffixCodecs {
		if strings.HasSuffix(path, suffix) {
			return codec, strings.TrimSuffix(path, suffix)
		}
	}

	return NewNoOpCodec(), path
}

// ForSuffix returns the codec registered for the given suffix (including the
// leading dot), or errs.ErrUnknownCodec.
func ForSuffix(suffix string) (Codec, error) {
	codec, ok := suffixCodecs[suffix]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCodec, suffix)
	}

	return codec, nil
}

var suffixCodecs = map[string]Codec{
	".gz":  NewGzipCodec(),
	".zst": NewZstdCodec(),
	".lz4": NewLZ4Codec(),
	".s2":  NewS2Codec(),
}

// readAll drains r with the decompression size cap applied.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDecompressedSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDecompressedSize {
		return nil, errs.ErrDecompressSizeExceeded
	}

	return data, nil
}
