package enc

// Encoder converts complete, already-resident buffers. Streaming conversions go through
// EncodeChunk / DecodeChunk instead.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) ([]byte, error)

	// Decode is the reverse proces of encoding
	Decode([]byte) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output by this encoder for every input block
	BlocksizeEncoded() int

	// Return a list of test patterns for the specified encoding
	TestPatterns() [][]byte
}
