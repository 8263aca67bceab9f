package buffers

import (
	"sync"
	"sync/atomic"
)

const (
	// BufferSize is the size of the buffer used when copying between streams
	BufferSize = 32 * 1024

	// EncodeChunkSize is the default number of raw bytes read per chunk when encoding
	EncodeChunkSize = 768

	// DecodeChunkSize is the default number of encoded bytes read per chunk when decoding
	DecodeChunkSize = 512

	// MaxChunkSize is the largest chunk a session will accept. Pooled buffers which grew larger
	// are dropped instead of being returned to the pool.
	MaxChunkSize = 16 * 1024 * 1024
)

// Buffer is a scratch byte buffer which can be reused between sessions
type Buffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewBuffer creates a new, empty Buffer with the specified capacity
func NewBuffer(size int) *Buffer {
	return &Buffer{
		B: make([]byte, 0, size),
	}
}

func (b *Buffer) Bytes() []byte {
	return b.B
}

func (b *Buffer) Len() int {
	return len(b.B)
}

func (b *Buffer) Cap() int {
	return cap(b.B)
}

// Reset empties the buffer but keeps the allocated memory
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Chunk returns a slice of exactly n bytes backed by the buffer, growing it if needed. The
// content of the returned slice is undefined.
func (b *Buffer) Chunk(n int) []byte {
	if cap(b.B) < n {
		b.B = make([]byte, 0, n)
	}
	return b.B[:n]
}

// Pool keeps scratch buffers for reuse. It's safe for concurrent use.
type Pool struct {
	outstanding  int64 // first field for 64-bit alignment of atomic access
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a pool handing out buffers with the given initial capacity. Buffers with a
// capacity above maxThreshold are not kept when returned (0 means no limit).
func NewPool(size int, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() interface{} {
				return NewBuffer(size)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get takes a buffer from the pool. Every buffer must be given back with Put.
func (p *Pool) Get() *Buffer {
	atomic.AddInt64(&p.outstanding, 1)
	b, _ := p.pool.Get().(*Buffer)
	return b
}

// Put returns the buffer to the pool
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	atomic.AddInt64(&p.outstanding, -1)

	if p.maxThreshold > 0 && cap(b.B) > p.maxThreshold {
		return
	}
	b.Reset()
	p.pool.Put(b)
}

// Outstanding returns the number of buffers taken from the pool and not yet returned
func (p *Pool) Outstanding() int64 {
	return atomic.LoadInt64(&p.outstanding)
}

var defaultPool = NewPool(BufferSize, MaxChunkSize)

// Default returns the process-wide buffer pool
func Default() *Pool {
	return defaultPool
}
