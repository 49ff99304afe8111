// Package scan implements the low-level tokenizers csvtable parses with.
//
// All scanners operate over a single mutable byte buffer owned by the caller
// (the table arena). Tokens are sub-slices of that buffer, never copies: they
// stay valid exactly as long as the arena does. Quoted-field unescaping
// rewrites the buffer in place, so the raw input is not recoverable after
// scanning.
//
// The package provides three layers:
//
//   - Splitter: a literal-delimiter token scanner with an explicit cursor.
//   - LineScanner: a record splitter accepting LF, CRLF, and bare CR endings.
//   - FieldScanner: a quote-aware comma field extractor built on Splitter.
package scan
