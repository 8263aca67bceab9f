package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

const (
	rawBlock     = 3
	encodedBlock = 4

	maxInt = int(^uint(0) >> 1)
)

// Separator describes the text inserted into encoded output every Columns characters, e.g. a
// CRLF every 76 characters for mail transport. A nil Separator, an empty separator or a
// non-positive column count disables the insertion.
type Separator struct {
	Separator []byte
	Columns   int
}

// NewSeparator is a shorthand for creating a Separator from a string
func NewSeparator(separator string, columns int) *Separator {
	return &Separator{
		Separator: []byte(separator),
		Columns:   columns,
	}
}

func (s *Separator) enabled() bool {
	return s != nil && len(s.Separator) > 0 && s.Columns > 0
}

func (s *Separator) String() string {
	if !s.enabled() {
		return "none"
	}
	return fmt.Sprintf("%q every %d", s.Separator, s.Columns)
}

// EncodedLen returns the length of the Base64 encoding of n bytes, including separators. It
// returns -1 if the length does not fit into an int.
func EncodedLen(n int, sep *Separator) int {
	if n < 0 {
		return -1
	}
	groups := n / rawBlock
	if n%rawBlock != 0 {
		groups++
	}
	if groups > maxInt/encodedBlock {
		return -1
	}
	chars := groups * encodedBlock
	if !sep.enabled() {
		return chars
	}
	lines := chars / sep.Columns
	if lines > 0 && len(sep.Separator) > (maxInt-chars)/lines {
		return -1
	}
	return chars + lines*len(sep.Separator)
}

// DecodedLen returns the maximum number of bytes n alphabet characters decode to
func DecodedLen(n int) int {
	return n / encodedBlock * rawBlock
}

func allocate(size int, what string) ([]byte, error) {
	if size < 0 || size > MaxAllocation {
		return nil, errors.Wrapf(ErrAllocation, "cannot allocate %s buffer for %d bytes (limit %d)", what, size, MaxAllocation)
	}
	return make([]byte, 0, size), nil
}

// lineWriter appends encoded characters to a buffer and takes care of the separator insertion.
// The column survives between calls so that the streaming encoder wraps lines exactly like the
// whole-buffer one.
type lineWriter struct {
	sep    *Separator
	column int
}

func (w *lineWriter) appendGroup(dst []byte, group [encodedBlock]byte) []byte {
	if !w.sep.enabled() {
		return append(dst, group[:]...)
	}
	for _, c := range group {
		dst = append(dst, c)
		w.column++
		if w.column == w.sep.Columns {
			dst = append(dst, w.sep.Separator...)
			w.column = 0
		}
	}
	return dst
}

// encodeGroup packs n (1..3) bytes into four symbols. Missing bytes are treated as zero and the
// corresponding symbols are replaced by the padding character.
func encodeGroup(b [rawBlock]byte, n int) [encodedBlock]byte {
	group := [encodedBlock]byte{
		EncodeSymbol(b[0] >> 2),
		EncodeSymbol((b[0]&0x03)<<4 | b[1]>>4),
		EncodeSymbol((b[1]&0x0f)<<2 | b[2]>>6),
		EncodeSymbol(b[2] & 0x3f),
	}
	if n < 3 {
		group[3] = PaddingChar
	}
	if n < 2 {
		group[2] = PaddingChar
	}
	return group
}

// encodeBlocks encodes all complete groups of src and returns the unencoded remainder (0-2 bytes)
func (w *lineWriter) encodeBlocks(dst, src []byte) ([]byte, []byte) {
	for len(src) >= rawBlock {
		dst = w.appendGroup(dst, encodeGroup([rawBlock]byte{src[0], src[1], src[2]}, rawBlock))
		src = src[rawBlock:]
	}
	return dst, src
}

// encodeTail encodes the final, short group of a stream
func (w *lineWriter) encodeTail(dst, tail []byte) []byte {
	if len(tail) == 0 {
		return dst
	}
	var b [rawBlock]byte
	copy(b[:], tail)
	return w.appendGroup(dst, encodeGroup(b, len(tail)))
}

// decodeGroup unpacks four filtered alphabet characters and appends up to three bytes to dst.
// The second return value is true when the group ended with padding, e.g. it must have been the
// last group of the input.
func decodeGroup(dst []byte, g []byte) ([]byte, bool, error) {
	v0, ok0 := DecodeSymbol(g[0])
	v1, ok1 := DecodeSymbol(g[1])
	if !ok0 || !ok1 {
		return dst, false, errors.Wrapf(ErrMalformedInput, "padding at the start of group %q", g)
	}
	dst = append(dst, v0<<2|v1>>4)

	if IsPadding(g[2]) {
		if !IsPadding(g[3]) {
			return dst, false, errors.Wrapf(ErrMalformedInput, "data after padding in group %q", g)
		}
		return dst, true, nil
	}
	v2, _ := DecodeSymbol(g[2])
	dst = append(dst, (v1&0x0f)<<4|v2>>2)

	if IsPadding(g[3]) {
		return dst, true, nil
	}
	v3, _ := DecodeSymbol(g[3])
	dst = append(dst, (v2&0x03)<<6|v3)
	return dst, false, nil
}

// Encode converts a complete buffer into Base64 text, inserting the separator (if any) every
// sep.Columns characters.
func Encode(src []byte, sep *Separator) ([]byte, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no input buffer to encode")
	}
	dst, err := allocate(EncodedLen(len(src), sep), "encode output")
	if err != nil {
		return nil, err
	}

	w := &lineWriter{sep: sep}
	dst, tail := w.encodeBlocks(dst, src)
	return w.encodeTail(dst, tail), nil
}

// Decode converts Base64 text into bytes. Any byte which is not an alphabet character is
// skipped, so line breaks and other whitespace are allowed anywhere in the input.
func Decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no input buffer to decode")
	}
	n := countAlphabet(src)
	if n == 0 || n%encodedBlock != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "found %d alphabet characters, expected a positive multiple of %d", n, encodedBlock)
	}

	filtered, err := allocate(n, "decode scratch")
	if err != nil {
		return nil, err
	}
	filtered = filterAlphabet(filtered, src)

	dst, err := allocate(DecodedLen(n), "decode output")
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i += encodedBlock {
		var padded bool
		if dst, padded, err = decodeGroup(dst, filtered[i:i+encodedBlock]); err != nil {
			return nil, err
		}
		if padded && i+encodedBlock < n {
			return nil, errors.Wrapf(ErrMalformedInput, "%d characters after the padded group", n-i-encodedBlock)
		}
	}
	return dst, nil
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet and padding. If
// Separator is set, encoded output is wrapped accordingly.
type Base64Encoder struct {
	Separator *Separator
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v, %v)", b.Name(), string(b.Code()), b.Separator)
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) ([]byte, error) {
	return Encode(data, b.Separator)
}

func (b *Base64Encoder) Decode(data []byte) ([]byte, error) {
	return Decode(data)
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return rawBlock
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return encodedBlock
}

func (b *Base64Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("Man"),
		[]byte("Ma"),
		[]byte("M"),
		[]byte(cb64),
	}
}
