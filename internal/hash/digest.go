// Package hash computes content fingerprints for tables.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/csvtable/endian"
)

// Digest accumulates an xxHash64 over a sequence of fields.
//
// Each field is framed with a little-endian uint32 length prefix before it is
// fed to the hash, so ("ab","c") and ("a","bc") produce different sums. Row
// boundaries are framed the same way through EndRow.
type Digest struct {
	d      *xxhash.Digest
	engine endian.EndianEngine
	prefix [4]byte
}

// rowMark is the length prefix reserved for row boundaries; no real field can
// carry it since the decompression cap keeps fields far below 4GiB.
const rowMark = ^uint32(0)

// NewDigest creates an empty field digest.
func NewDigest() *Digest {
	return &Digest{
		d:      xxhash.New(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// WriteField feeds one field into the digest.
func (d *Digest) WriteField(field []byte) {
	d.engine.PutUint32(d.prefix[:], uint32(len(field)))
	_, _ = d.d.Write(d.prefix[:])
	_, _ = d.d.Write(field)
}

// EndRow marks a row boundary, making the digest shape-sensitive.
func (d *Digest) EndRow() {
	d.engine.PutUint32(d.prefix[:], rowMark)
	_, _ = d.d.Write(d.prefix[:])
}

// Sum64 returns the accumulated hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
