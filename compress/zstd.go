package compress

// ZstdCodec reads and writes Zstandard frames (.zst files).
//
// Zstd offers the best compression ratio of the supported codecs and is the
// recommended choice for archived tables. The implementation is selected at
// build time: pure Go without cgo, gozstd with cgo.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
