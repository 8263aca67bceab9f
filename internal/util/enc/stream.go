package enc

import (
	"github.com/pkg/errors"
)

// EncoderSpill carries the state of one streaming encode session from one EncodeChunk call to
// the next: the 0-2 input bytes which did not complete a group, the separator column and the
// number of input bytes consumed so far. The zero value is an empty spill at position 0.
type EncoderSpill struct {
	buf      [rawBlock - 1]byte
	n        int
	column   int
	position int64
	final    bool
}

// Len returns the number of bytes waiting for the next chunk
func (s *EncoderSpill) Len() int {
	return s.n
}

// Position returns the absolute stream position the next chunk must start at
func (s *EncoderSpill) Position() int64 {
	return s.position
}

// Final returns true once the last (possibly padded) group of the stream has been emitted
func (s *EncoderSpill) Final() bool {
	return s.final
}

func (s *EncoderSpill) Reset() {
	*s = EncoderSpill{}
}

// DecoderSpill carries the 0-3 filtered alphabet characters which did not complete a group at
// the end of a chunk. The zero value is an empty spill.
type DecoderSpill struct {
	buf   [encodedBlock - 1]byte
	n     int
	final bool
}

// Len returns the number of characters waiting for the next chunk
func (s *DecoderSpill) Len() int {
	return s.n
}

// Bytes returns a copy of the characters waiting for the next chunk
func (s *DecoderSpill) Bytes() []byte {
	return append([]byte{}, s.buf[:s.n]...)
}

// Final returns true once a padded group has been decoded, e.g. no more data is expected
func (s *DecoderSpill) Final() bool {
	return s.final
}

func (s *DecoderSpill) Reset() {
	*s = DecoderSpill{}
}

// grow makes sure dst can take n more bytes without reallocating
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}
	res := make([]byte, len(dst), len(dst)+n)
	copy(res, dst)
	return res
}

// EncodeChunk encodes the next chunk of a stream and appends the text to dst.
//
// position is the absolute offset of the chunk within the stream and must match the number of
// bytes already consumed by spill. total is the size of the whole stream or a negative number if
// the size is not known. A group is only padded when it is the last group of the stream, which
// is the case when the chunk reaches total. Otherwise the 1-2 bytes which do not complete a group
// stay in spill and are prepended to the next chunk. Use FinishEncode to flush the spill if
// total was not known.
func EncodeChunk(dst, chunk []byte, position, total int64, spill *EncoderSpill, sep *Separator) ([]byte, error) {
	if chunk == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no chunk to encode")
	}
	if spill == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no encoder spill")
	}
	if position != spill.position {
		return nil, errors.Wrapf(ErrInvalidArgument, "chunk starts at position %d, expected %d", position, spill.position)
	}
	if spill.final && len(chunk) > 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "stream continues past its size of %d bytes", spill.position)
	}

	size := EncodedLen(spill.n+len(chunk), sep)
	if size < 0 || size > MaxAllocation {
		return nil, errors.Wrapf(ErrAllocation, "cannot allocate encode output for %d bytes (limit %d)", size, MaxAllocation)
	}
	if sep.enabled() {
		size += len(sep.Separator)
	}
	dst = grow(dst, size)

	w := &lineWriter{sep: sep, column: spill.column}
	src := chunk
	if spill.n > 0 {
		var b [rawBlock]byte
		copy(b[:], spill.buf[:spill.n])
		k := copy(b[spill.n:], src)
		src = src[k:]
		if spill.n+k == rawBlock {
			dst = w.appendGroup(dst, encodeGroup(b, rawBlock))
			spill.n = 0
		} else {
			spill.n = copy(spill.buf[:], b[:spill.n+k])
		}
	}
	if spill.n == 0 {
		dst, src = w.encodeBlocks(dst, src)
		spill.n = copy(spill.buf[:], src)
	}

	end := position + int64(len(chunk))
	spill.position = end
	if total >= 0 && end >= total {
		dst = w.encodeTail(dst, spill.buf[:spill.n])
		spill.n = 0
		spill.final = true
	}
	spill.column = w.column

	return dst, nil
}

// FinishEncode flushes the spill at the end of the stream, padding the last group. It does
// nothing if EncodeChunk already reached the end of the stream.
func FinishEncode(dst []byte, spill *EncoderSpill, sep *Separator) []byte {
	if spill == nil || spill.final {
		return dst
	}
	w := &lineWriter{sep: sep, column: spill.column}
	dst = w.encodeTail(dst, spill.buf[:spill.n])
	spill.n = 0
	spill.column = w.column
	spill.final = true
	return dst
}

// DecodeChunk decodes the next chunk of Base64 text and appends the bytes to dst. Characters
// which are not in the alphabet are skipped. The characters held in spill are decoded first;
// the 0-3 characters at the end which do not complete a group become the new spill.
func DecodeChunk(dst, chunk []byte, spill *DecoderSpill) ([]byte, error) {
	if chunk == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no chunk to decode")
	}
	if spill == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no decoder spill")
	}

	n := countAlphabet(chunk)
	if n == 0 {
		return dst, nil
	}
	if spill.final {
		return nil, errors.Wrapf(ErrMalformedInput, "%d characters after the padded group", n)
	}

	size := DecodedLen(spill.n + n)
	if size > MaxAllocation {
		return nil, errors.Wrapf(ErrAllocation, "cannot allocate decode output for %d bytes (limit %d)", size, MaxAllocation)
	}
	dst = grow(dst, size)

	var g [encodedBlock]byte
	k := copy(g[:], spill.buf[:spill.n])
	for _, c := range chunk {
		if !IsAlphabetChar(c) {
			continue
		}
		if spill.final {
			return nil, errors.Wrap(ErrMalformedInput, "data after the padded group")
		}
		g[k] = c
		k++
		if k == encodedBlock {
			var err error
			if dst, spill.final, err = decodeGroup(dst, g[:]); err != nil {
				return nil, err
			}
			k = 0
		}
	}
	spill.n = copy(spill.buf[:], g[:k])

	return dst, nil
}

// FinishDecode checks the spill at the end of the stream. Leftover characters mean the input
// was truncated, which is reported instead of being dropped or zero-padded.
func FinishDecode(spill *DecoderSpill) error {
	if spill == nil {
		return errors.Wrap(ErrInvalidArgument, "no decoder spill")
	}
	if spill.n > 0 {
		return errors.Wrapf(ErrMalformedInput, "input truncated: %d characters %q do not complete a group", spill.n, spill.buf[:spill.n])
	}
	return nil
}
