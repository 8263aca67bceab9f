package streams

import (
	"github.com/bokysan/b64stream/internal/util/buffers"
	"io"
)

// copyBuffer copies src to dst through a scratch buffer borrowed from the default pool
func copyBuffer(dst io.Writer, src io.Reader) (int64, error) {
	pool := buffers.Default()
	b := pool.Get()
	defer pool.Put(b)
	return io.CopyBuffer(dst, src, b.Chunk(buffers.BufferSize))
}
