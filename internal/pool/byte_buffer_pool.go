// Package pool provides reusable byte buffers for snapshot encoding.
package pool

import "sync"

const (
	// snapshotDefaultSize is the initial capacity of pooled buffers; typical
	// encoded sessions are a few KiB.
	snapshotDefaultSize = 4 * 1024
	// snapshotMaxRetained is the largest buffer returned to the pool.
	// Oversized buffers are dropped to keep the pool footprint bounded.
	snapshotMaxRetained = 1024 * 1024
)

// ByteBuffer is a growable byte slice with an explicit Reset, suitable for
// pooling across snapshot encodings.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while retaining its capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends p to the buffer, implementing io.Writer. It never fails.
func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.B = append(bb.B, p...)
	return len(p), nil
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, snapshotDefaultSize)}
	},
}

// GetBuffer obtains an empty buffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a buffer to the pool for reuse.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > snapshotMaxRetained {
		return
	}
	bufferPool.Put(bb)
}
