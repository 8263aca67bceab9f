package enc

const (
	// cb64 is the standard Base64 alphabet, indexed by 6-bit value
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// PaddingChar fills the tail of the final group when the input is not a multiple of 3 bytes
	PaddingChar byte = '='

	// invalidSymbol marks bytes in the decode table which are not data symbols
	invalidSymbol byte = 0xff
)

var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalidSymbol
	}
	for i := 0; i < len(cb64); i++ {
		decodeMap[cb64[i]] = byte(i)
	}
}

// EncodeSymbol will return the alphabet character for the given 6-bit value. Only the lower six
// bits of the argument are taken into account.
func EncodeSymbol(v byte) byte {
	return cb64[v&0x3f]
}

// DecodeSymbol is the inverse of EncodeSymbol. For the padding character and for any byte which
// is not part of the alphabet it returns false instead of failing; callers are expected to
// filter the input with IsAlphabetChar first.
func DecodeSymbol(c byte) (byte, bool) {
	v := decodeMap[c]
	return v, v != invalidSymbol
}

// IsAlphabetChar returns true for the 64 data symbols and the padding character
func IsAlphabetChar(c byte) bool {
	return decodeMap[c] != invalidSymbol || c == PaddingChar
}

func IsPadding(c byte) bool {
	return c == PaddingChar
}

// filterAlphabet appends to dst only the bytes of src which belong to the alphabet. Whitespace,
// line separators and any other foreign bytes are dropped.
func filterAlphabet(dst, src []byte) []byte {
	for _, c := range src {
		if IsAlphabetChar(c) {
			dst = append(dst, c)
		}
	}
	return dst
}

// countAlphabet returns the number of bytes in src which would survive filterAlphabet
func countAlphabet(src []byte) int {
	n := 0
	for _, c := range src {
		if IsAlphabetChar(c) {
			n++
		}
	}
	return n
}
