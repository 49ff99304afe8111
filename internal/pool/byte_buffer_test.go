package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := &ByteBuffer{}

	n, err := bb.Write([]byte("a,b"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, bb.WriteByte(','))

	n, err = bb.WriteString("c")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Equal(t, "a,b,c", string(bb.Bytes()))
	require.Equal(t, 5, bb.Len())
}

func TestByteBufferReset(t *testing.T) {
	bb := &ByteBuffer{}
	_, _ = bb.WriteString("content")

	before := cap(bb.B)
	bb.Reset()

	require.Zero(t, bb.Len())
	require.Equal(t, before, cap(bb.B))
}

func TestByteBufferGrow(t *testing.T) {
	bb := &ByteBuffer{}
	_, _ = bb.WriteString("abc")

	bb.Grow(100)
	require.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 100)
	require.Equal(t, "abc", string(bb.Bytes()))
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := &ByteBuffer{}
	_, _ = bb.WriteString("x,y\r\n")

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "x,y\r\n", out.String())
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer()
	require.NotNil(t, buf)
	require.Zero(t, buf.Len())

	_, _ = buf.WriteString("recycled")
	PutBuffer(buf)

	again := GetBuffer()
	require.Zero(t, again.Len())
	PutBuffer(again)

	// Oversized buffers are dropped, nil is tolerated.
	PutBuffer(&ByteBuffer{B: make([]byte, 0, TableBufferMaxThreshold+1)})
	PutBuffer(nil)
}
