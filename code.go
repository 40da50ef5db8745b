package huffpack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a Code can hold.  A Huffman tree built
// from 32-bit frequencies cannot get anywhere near this deep.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit, i.e. the edge leaving the root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is too long: got %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d of code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Append returns the Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "Code is already %d bits long", hc.Size)
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the Code, counting from the first.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit Code", i, hc.Size)
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// HasPrefix returns true iff the bits of prefix are the first bits of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Bitstring returns the bits as a plain string of '0' and '1' characters.
func (hc Code) Bitstring() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Bitstring())
}

var _ fmt.Stringer = Code{}
