package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := GetBuffer()
	defer PutBuffer(bb)

	require.Zero(t, bb.Len())

	n, err := bb.Write([]byte("calibration"))
	require.NoError(t, err)
	require.Equal(t, 11, n)
	require.Equal(t, []byte("calibration"), bb.Bytes())

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestPutBufferDropsOversized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, snapshotMaxRetained+1)}
	// Must not panic; buffer is silently dropped.
	PutBuffer(bb)
	PutBuffer(nil)
}

func TestGetBufferReturnsEmpty(t *testing.T) {
	bb := GetBuffer()
	_, _ = bb.Write([]byte("stale"))
	PutBuffer(bb)

	got := GetBuffer()
	require.Zero(t, got.Len())
	PutBuffer(got)
}
