package session

import (
	"github.com/bokysan/b64stream/internal/util/buffers"
	"github.com/bokysan/b64stream/internal/util/enc"
)

const (
	encodeChunkSize = buffers.EncodeChunkSize
	decodeChunkSize = buffers.DecodeChunkSize
)

// Option configures a Session
type Option func(s *Session)

// WithSeparator sets the separator inserted into encoded output. It's ignored when decoding, as
// the decoder skips separators anyway.
func WithSeparator(sep *enc.Separator) Option {
	return func(s *Session) {
		s.sep = sep
	}
}

// WithChunkSize overrides the number of bytes read from the input in one go
func WithChunkSize(size int) Option {
	return func(s *Session) {
		s.chunkSize = size
	}
}

// WithPool sets the pool the session borrows its scratch buffers from
func WithPool(pool *buffers.Pool) Option {
	return func(s *Session) {
		s.pool = pool
	}
}
