// Package pool provides pooled scratch buffers for snapshot encoding.
package pool

import (
	"sync"
)

const (
	SnapshotBufferDefaultSize  = 1024 * 16  // 16KiB
	SnapshotBufferMaxThreshold = 1024 * 512 // 512KiB
)

// ByteBuffer is a growable byte slice.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a buffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

func (bb *ByteBuffer) Bytes() []byte { return bb.B }
func (bb *ByteBuffer) Len() int      { return len(bb.B) }
func (bb *ByteBuffer) Cap() int      { return cap(bb.B) }
func (bb *ByteBuffer) Reset()        { bb.B = bb.B[:0] }

// Grow makes room for at least n more bytes without changing the length.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := SnapshotBufferDefaultSize
	if cap(bb.B) > 4*SnapshotBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// Write appends data. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool pools buffers, dropping those that grew past a threshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with defaultSize capacity.
// Buffers larger than maxThreshold are not returned to the pool; zero keeps
// every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var snapshotPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)

// GetSnapshotBuffer returns a buffer from the shared snapshot pool.
func GetSnapshotBuffer() *ByteBuffer {
	return snapshotPool.Get()
}

// PutSnapshotBuffer returns bb to the shared snapshot pool.
func PutSnapshotBuffer(bb *ByteBuffer) {
	snapshotPool.Put(bb)
}
