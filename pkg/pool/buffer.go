package pool

import "sync"

// BufferPool manages a pool of byte slices used as copy buffers when
// streaming file contents in and out of archives.
type BufferPool struct {
	size int       // Size of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool with a specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a buffer from the pool.
func (bp *BufferPool) Get() []byte {
	return *(bp.pool.Get().(*[]byte))
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf []byte) {
	// Don't pool buffers of foreign sizes.
	if cap(buf) != bp.size {
		return
	}

	buf = buf[:bp.size]
	bp.pool.Put(&buf)
}
