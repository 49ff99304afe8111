// Package errs defines the sentinel errors shared across csvtable packages.
//
// All values are plain sentinel errors created with errors.New, intended to be
// matched with errors.Is. Structured errors elsewhere in the module (such as
// table.ShapeError) wrap one of these sentinels so callers can branch on the
// category without depending on the concrete error type.
package errs

import "errors"

// Load errors.
var (
	// ErrFieldCountMismatch indicates a row whose field count differs from the
	// header row. Loading aborts and no table is constructed.
	ErrFieldCountMismatch = errors.New("field count differs from header")

	// ErrEmptyFile indicates the source file contained no bytes.
	ErrEmptyFile = errors.New("file is empty")
)

// File errors.
var (
	// ErrFileNotFound indicates the requested path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileExists indicates a write target already exists and overwriting
	// was not requested.
	ErrFileExists = errors.New("file already exists")
)

// Codec errors.
var (
	// ErrUnknownCodec indicates a compression suffix with no registered codec.
	ErrUnknownCodec = errors.New("unknown compression codec")

	// ErrDecompressSizeExceeded indicates decompressed output exceeded the
	// safety limit.
	ErrDecompressSizeExceeded = errors.New("decompressed size exceeds safety limit")
)
