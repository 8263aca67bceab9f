package session

import (
	"context"
	"github.com/bokysan/b64stream/internal/streams"
	"github.com/bokysan/b64stream/internal/util/enc"
)

// EncodeFile encodes the whole input into out and returns out on success
func EncodeFile(ctx context.Context, out streams.Output, in streams.Input, sep *enc.Separator, opts ...Option) (streams.Output, error) {
	return run(ctx, Encode, out, in, append([]Option{WithSeparator(sep)}, opts...)...)
}

// DecodeFile decodes the whole input into out and returns out on success
func DecodeFile(ctx context.Context, out streams.Output, in streams.Input, opts ...Option) (streams.Output, error) {
	return run(ctx, Decode, out, in, opts...)
}

func run(ctx context.Context, mode Mode, out streams.Output, in streams.Input, opts ...Option) (streams.Output, error) {
	s, err := New(mode, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}
