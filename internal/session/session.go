package session

import (
	"context"
	"fmt"
	"github.com/bokysan/b64stream/internal/streams"
	"github.com/bokysan/b64stream/internal/util/buffers"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Stats describes the work done by a session
type Stats struct {
	// Chunks is the number of non-empty chunks read from the input
	Chunks int
	// Read is the number of bytes read from the input
	Read int64
	// Written is the number of bytes written to the output
	Written int64
	// Digest is the xxhash64 of the raw (unencoded) side of the conversion
	Digest uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("chunks=%d read=%d written=%d xxhash=%016x", s.Chunks, s.Read, s.Written, s.Digest)
}

// Session converts one input stream into one output stream, chunk by chunk. The output is
// identical to converting the whole input at once with enc.Encode / enc.Decode.
//
// A session runs once. It is not safe for concurrent use.
type Session struct {
	mode      Mode
	in        streams.Input
	out       streams.Output
	sep       *enc.Separator
	chunkSize int
	pool      *buffers.Pool

	state    State
	position int64
	encoder  enc.EncoderSpill
	decoder  enc.DecoderSpill
	digest   *xxhash.Digest
	stats    Stats
}

// New creates a session reading from in and writing to out
func New(mode Mode, in streams.Input, out streams.Output, opts ...Option) (*Session, error) {
	if mode != Encode && mode != Decode {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "unknown mode %v", mode)
	}
	if in == nil {
		return nil, errors.Wrap(enc.ErrInvalidArgument, "no input")
	}
	if out == nil {
		return nil, errors.Wrap(enc.ErrInvalidArgument, "no output")
	}

	s := &Session{
		mode:      mode,
		in:        in,
		out:       out,
		chunkSize: mode.ChunkSize(),
		pool:      buffers.Default(),
		digest:    xxhash.New(),
	}
	for _, o := range opts {
		o(s)
	}

	if s.chunkSize <= 0 || s.chunkSize > buffers.MaxChunkSize {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "chunk size %d out of range (1-%d)", s.chunkSize, buffers.MaxChunkSize)
	}
	if s.pool == nil {
		return nil, errors.Wrap(enc.ErrInvalidArgument, "no buffer pool")
	}
	return s, nil
}

func (s *Session) String() string {
	return fmt.Sprintf("%v(%v->%v)", s.mode, s.in, s.out)
}

// State returns the current lifecycle stage
func (s *Session) State() State {
	return s.state
}

// Stats returns the counters collected so far
func (s *Session) Stats() Stats {
	res := s.stats
	res.Digest = s.digest.Sum64()
	return res
}

func (s *Session) transition(next State) {
	if s.state == next {
		return
	}
	log.WithFields(log.Fields{
		"mode":     s.mode.String(),
		"position": s.position,
	}).Tracef("[Session] %v: %v -> %v", s, s.state, next)
	s.state = next
}

// size returns the current size of the input, or -1 if the input is not a regular file
func (s *Session) size() (int64, error) {
	fi, err := s.in.Stat()
	if err != nil {
		return -1, errors.Wrapf(ErrIO, "could not stat %v: %v", s.in, err)
	}
	if !fi.Mode().IsRegular() {
		return -1, nil
	}
	return fi.Size(), nil
}

// Run reads the input until the end, writing the converted data to the output as it goes. On
// success the output is returned for further use. On failure no output is returned; whatever was
// written before the failure stays written.
//
// Cancelling ctx stops the session before the next chunk is read.
func (s *Session) Run(ctx context.Context) (output streams.Output, err error) {
	if s.state != StateOpen {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "session is %v", s.state)
	}

	chunkBuf := s.pool.Get()
	defer s.pool.Put(chunkBuf)
	outBuf := s.pool.Get()
	defer s.pool.Put(outBuf)

	defer func() {
		if err != nil {
			s.transition(StateFailed)
			log.WithError(err).Debugf("[Session] %v failed after %v", s, s.Stats())
			output = nil
		}
	}()

	if _, err := s.size(); err != nil {
		return nil, err
	}

	chunk := chunkBuf.Chunk(s.chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		s.transition(StateReading)
		n, rerr := s.in.Read(chunk)
		if n > 0 {
			s.transition(StateProcessing)
			if err := s.process(outBuf, chunk[:n]); err != nil {
				return nil, err
			}
		}
		if rerr == io.EOF || (n <= 0 && rerr == nil) {
			break
		}
		if rerr != nil {
			return nil, errors.Wrapf(ErrIO, "could not read from %v: %v", s.in, rerr)
		}
	}

	if err := s.finish(outBuf); err != nil {
		return nil, err
	}
	s.transition(StateDone)
	log.Debugf("[Session] %v done: %v", s, s.Stats())
	return s.out, nil
}

// process converts one chunk and writes the result out
func (s *Session) process(outBuf *buffers.Buffer, chunk []byte) error {
	s.stats.Chunks++
	s.stats.Read += int64(len(chunk))

	var res []byte
	var err error
	switch s.mode {
	case Encode:
		total, serr := s.size()
		if serr != nil {
			return serr
		}
		_, _ = s.digest.Write(chunk)
		res, err = enc.EncodeChunk(outBuf.B[:0], chunk, s.position, total, &s.encoder, s.sep)
	case Decode:
		res, err = enc.DecodeChunk(outBuf.B[:0], chunk, &s.decoder)
		if err == nil {
			_, _ = s.digest.Write(res)
		}
	}
	if err != nil {
		return err
	}
	outBuf.B = res
	s.position += int64(len(chunk))

	return s.write(res)
}

// finish flushes the state carried over from the last chunk
func (s *Session) finish(outBuf *buffers.Buffer) error {
	switch s.mode {
	case Encode:
		res := enc.FinishEncode(outBuf.B[:0], &s.encoder, s.sep)
		outBuf.B = res
		return s.write(res)
	case Decode:
		return enc.FinishDecode(&s.decoder)
	}
	return nil
}

func (s *Session) write(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := s.out.Write(data)
	s.stats.Written += int64(n)
	if err != nil {
		return errors.Wrapf(ErrIO, "could not write to %v: %v", s.out, err)
	}
	if n < len(data) {
		return errors.Wrapf(ErrIO, "could not write to %v: %v (%d of %d bytes)", s.out, io.ErrShortWrite, n, len(data))
	}
	return nil
}
