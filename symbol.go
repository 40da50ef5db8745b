package huffpack

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Symbol represents one Unicode code point of the input alphabet.  Negative
// symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is stored in leaves whose symbol has not been assigned yet.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff s can be stored in a blob and read back.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol && utf8.ValidRune(rune(s))
}

// String returns the quoted character, e.g. 'a'.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	return strconv.QuoteRune(rune(s))
}
