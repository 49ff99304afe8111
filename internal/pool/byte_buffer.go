// Package pool provides pooled byte buffers for table serialization.
package pool

import (
	"io"
	"sync"
)

const (
	// TableBufferDefaultSize is the starting capacity of pooled buffers,
	// sized for typical static tables.
	TableBufferDefaultSize = 16 * 1024

	// TableBufferMaxThreshold is the largest buffer the pool retains;
	// anything bigger is dropped for the GC to reclaim.
	TableBufferMaxThreshold = 512 * 1024
)

// ByteBuffer is an append-only byte accumulator with pooled backing storage.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the accumulated bytes.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of accumulated bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer, retaining capacity for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)

	return nil
}

// Write appends data, growing as needed. The error is always nil; the
// signature satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteString appends s.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)

	return len(s), nil
}

// WriteTo writes the accumulated bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

// Grow ensures capacity for at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	grown := make([]byte, len(bb.B), len(bb.B)+max(n, TableBufferDefaultSize))
	copy(grown, bb.B)
	bb.B = grown
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, TableBufferDefaultSize)}
	},
}

// GetBuffer obtains an empty ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	buf, _ := bufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutBuffer returns a ByteBuffer to the pool. Oversized buffers are dropped
// so one huge table does not pin memory for the rest of the process.
func PutBuffer(buf *ByteBuffer) {
	if buf == nil || cap(buf.B) > TableBufferMaxThreshold {
		return
	}

	bufferPool.Put(buf)
}
