package huffpack

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned when asked to build a code for input
	// that contains no symbols at all.
	ErrEmptyAlphabet = errors.New("huffpack: cannot build a Huffman tree for an empty alphabet")

	// ErrCorrupt is returned when a blob is truncated or otherwise does not
	// describe a valid tree and payload.
	ErrCorrupt = errors.New("huffpack: corrupt or truncated input")

	// ErrUnmappedSymbol is returned when the text being encoded contains a
	// symbol that the code table has no code for.  Compress never triggers
	// this; it indicates that the table and the text do not belong together.
	ErrUnmappedSymbol = errors.New("huffpack: symbol missing from code table")

	// ErrInvalidText is returned when the text to compress is not valid
	// UTF-8, since such text cannot be reproduced code point by code point.
	ErrInvalidText = errors.New("huffpack: text is not valid UTF-8")
)
