package huffpack

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Compress encodes text as a self-describing Huffman-coded blob.
//
// Text must be valid UTF-8 and non-empty.  Empty text fails with
// ErrEmptyAlphabet.
//
func Compress(text string) ([]byte, error) {
	blob, _, err := compress(text)
	return blob, err
}

// Stats describes the result of a Compress call.
type Stats struct {
	// Symbols is the number of code points in the input.
	Symbols uint32

	// DistinctSymbols is the size of the input's alphabet.
	DistinctSymbols int

	// ShapeBits is the number of bits used to describe the tree shape.
	ShapeBits uint64

	// PayloadBits is the number of bits used to code the input.
	PayloadBits uint64

	// InputBytes is the length of the input in bytes.
	InputBytes int

	// OutputBytes is the length of the blob in bytes.
	OutputBytes int
}

// Ratio returns OutputBytes divided by InputBytes.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d symbols (%d distinct), %d -> %d bytes (%.1f%%), shape %d bits, payload %d bits",
		s.Symbols, s.DistinctSymbols, s.InputBytes, s.OutputBytes, 100*s.Ratio(), s.ShapeBits, s.PayloadBits)
}

// CompressStats is like Compress, but also reports statistics about the
// resulting blob.
func CompressStats(text string) ([]byte, Stats, error) {
	return compress(text)
}

func compress(text string) ([]byte, Stats, error) {
	var stats Stats
	if !utf8.ValidString(text) {
		return nil, stats, ErrInvalidText
	}

	freqs := CountFrequencies(text)
	total := freqs.Total()
	if total > math.MaxUint32 {
		return nil, stats, fmt.Errorf("huffpack: text has %d symbols, max %d", total, uint64(math.MaxUint32))
	}

	root, err := BuildTree(freqs)
	if err != nil {
		return nil, stats, err
	}
	table := NewCodeTable(root)

	bw := NewBitWriter()
	if err := bw.WriteU32(uint32(total)); err != nil {
		return nil, stats, err
	}

	mark := bw.BitLen()
	if err := root.WriteShape(bw); err != nil {
		return nil, stats, err
	}
	stats.ShapeBits = bw.BitLen() - mark
	if err := bw.Align(); err != nil {
		return nil, stats, err
	}

	if err := root.WriteSymbols(bw); err != nil {
		return nil, stats, err
	}

	mark = bw.BitLen()
	if err := EncodePayload(bw, text, table); err != nil {
		return nil, stats, err
	}
	stats.PayloadBits = bw.BitLen() - mark

	blob, err := bw.Bytes()
	if err != nil {
		return nil, stats, err
	}

	stats.Symbols = uint32(total)
	stats.DistinctSymbols = len(freqs)
	stats.InputBytes = len(text)
	stats.OutputBytes = len(blob)
	return blob, stats, nil
}

// Decompress reconstructs the text that Compress encoded into blob.
//
// Truncated or malformed blobs fail with an error wrapping ErrCorrupt.
//
func Decompress(blob []byte) (string, error) {
	br := NewBitReader(blob)

	count, err := br.ReadU32()
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", fmt.Errorf("%w: symbol count is 0", ErrCorrupt)
	}

	// A tree can't have more leaves than the text has symbols.
	maxLeaves := int(count)
	if maxLeaves < 0 || maxLeaves > utf8.MaxRune+1 {
		maxLeaves = utf8.MaxRune + 1
	}

	root, err := ReadShape(br, maxLeaves)
	if err != nil {
		return "", err
	}
	br.Align()

	root, err = Populate(root, br)
	if err != nil {
		return "", err
	}

	text, err := DecodePayload(br, root, count)
	if err != nil {
		return "", err
	}
	br.Align()

	if n := br.Len(); n != 0 {
		return "", fmt.Errorf("%w: %d bytes of trailing data", ErrCorrupt, n)
	}
	return text, nil
}
