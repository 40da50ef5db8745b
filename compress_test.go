package huffpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTexts = []string{
	"a",
	"zzzz",
	"ab",
	"mmmmaao",
	"ll tt oo aa",
	"The cake is a lie!",
	"the quick brown fox jumps over the lazy dog",
	"Ünïcödé: 日本語のテキスト, emoji 🎉🎉🎉, and combining é.",
	"line one\nline two\r\n\ttabbed\x00nul",
	strings.Repeat("abracadabra ", 200),
	strings.Repeat("x", 1000) + "y",
}

func TestCompress_Layout(t *testing.T) {
	blob, err := Compress("mmmmaao")
	require.NoError(t, err)

	// 4 (count) + 1 (shape) + 3*4 (symbols) + 2 (payload)
	expect := []byte{
		0, 0, 0, 7,
		56,
		0, 0, 0, 'o',
		0, 0, 0, 'a',
		0, 0, 0, 'm',
		10, 192,
	}
	assert.Equal(t, expect, blob)
	assert.Len(t, blob, 19)
}

func TestCompress_SingleSymbolLayout(t *testing.T) {
	blob, err := Compress("aaaa")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 4, 0x80, 0, 0, 0, 'a', 0x00}, blob)
}

func TestCompress_Empty(t *testing.T) {
	blob, err := Compress("")
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
	assert.Nil(t, blob)
}

func TestCompress_InvalidUTF8(t *testing.T) {
	_, err := Compress("ab\xffcd")
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestRoundTrip(t *testing.T) {
	for _, text := range testTexts {
		blob, err := Compress(text)
		require.NoError(t, err, "text %q", text)

		actual, err := Decompress(blob)
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, text, actual)
	}
}

func TestCompressStats(t *testing.T) {
	blob, stats, err := CompressStats("mmmmaao")
	require.NoError(t, err)

	assert.Equal(t, Stats{
		Symbols:         7,
		DistinctSymbols: 3,
		ShapeBits:       5,
		PayloadBits:     10,
		InputBytes:      7,
		OutputBytes:     19,
	}, stats)
	assert.Len(t, blob, stats.OutputBytes)
	assert.InDelta(t, 19.0/7.0, stats.Ratio(), 1e-9)
	assert.Equal(t, "7 symbols (3 distinct), 7 -> 19 bytes (271.4%), shape 5 bits, payload 10 bits", stats.String())
}

func TestCompress_Shrinks(t *testing.T) {
	text := strings.Repeat("it was the best of times, it was the worst of times, ", 100)
	blob, stats, err := CompressStats(text)
	require.NoError(t, err)
	assert.Less(t, len(blob), len(text))
	assert.Less(t, stats.Ratio(), 1.0)
}

func TestDecompress_Truncated(t *testing.T) {
	for _, text := range []string{"mmmmaao", "aaaa", "ll tt oo aa"} {
		blob, err := Compress(text)
		require.NoError(t, err)

		for n := 0; n < len(blob); n++ {
			_, err := Decompress(blob[:n])
			assert.ErrorIs(t, err, ErrCorrupt, "text %q truncated to %d bytes", text, n)
		}
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	type testRow struct {
		name string
		blob []byte
	}

	testData := [...]testRow{
		{name: "zero count", blob: []byte{0, 0, 0, 0}},
		{name: "too many leaves", blob: []byte{0, 0, 0, 1, 0x60, 0, 0, 0, 'a', 0, 0, 0, 'b', 0x80}},
		{name: "invalid code point", blob: []byte{0, 0, 0, 1, 0x80, 0, 0x11, 0, 0, 0x00}},
		{name: "duplicate symbol", blob: []byte{0, 0, 0, 2, 0x60, 0, 0, 0, 'a', 0, 0, 0, 'a', 0x80}},
		{name: "single symbol coded as 1", blob: []byte{0, 0, 0, 1, 0x80, 0, 0, 0, 'a', 0x80}},
		{name: "count exceeds payload", blob: []byte{0, 0, 0, 9, 0x80, 0, 0, 0, 'a', 0x00}},
		{name: "trailing data", blob: []byte{0, 0, 0, 1, 0x80, 0, 0, 0, 'a', 0x00, 0x00}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			text, err := Decompress(row.blob)
			assert.ErrorIs(t, err, ErrCorrupt)
			assert.Empty(t, text)
		})
	}
}
