// Package compress provides the compression codecs csvtable reads and writes
// compressed CSV files with.
//
// Codecs operate on whole files: Compress wraps the serialized table in the
// algorithm's standard framing (gzip member, zstd frame, LZ4 frame, S2
// stream), so the output is interchangeable with the corresponding command
// line tools. Decompress reverses it.
//
// The codec for a file is chosen by path suffix:
//
//	codec, inner := compress.ForPath("units.csv.zst")
//	// codec is the zstd codec, inner is "units.csv"
//
// Paths without a recognized suffix get the no-op codec, so callers can run
// every load and write through ForPath unconditionally.
//
// Zstd has two implementations selected at build time: a pure Go codec
// (klauspost/compress/zstd) for cgo-free builds, and a gozstd-backed codec
// when cgo is available.
package compress
