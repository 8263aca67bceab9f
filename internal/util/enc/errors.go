package enc

import "errors"

// Error kinds reported by the codec. They are always returned wrapped (with a stack and some
// context) so use errors.Is to check for them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAllocation      = errors.New("allocation failure")
	ErrMalformedInput  = errors.New("malformed input")
)

// MaxAllocation is the largest output buffer the codec will try to allocate in one call
var MaxAllocation = 1 << 30
