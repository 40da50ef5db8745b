package huffpack

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies("mmmmaao")
	assert.Equal(t, Frequencies{'m': 4, 'a': 2, 'o': 1}, freqs)
	_, found := freqs['f']
	assert.False(t, found)
	assert.Equal(t, []Symbol{'a', 'm', 'o'}, freqs.Symbols())
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies("")
	assert.Empty(t, freqs)
	assert.Equal(t, uint64(0), freqs.Total())
}

func TestCountFrequencies_Total(t *testing.T) {
	for _, text := range testTexts {
		freqs := CountFrequencies(text)
		assert.Equal(t, uint64(utf8.RuneCountInString(text)), freqs.Total(), "text %q", text)

		distinct := make(map[rune]struct{})
		for _, ch := range text {
			distinct[ch] = struct{}{}
			assert.Contains(t, freqs, Symbol(ch))
		}
		assert.Len(t, freqs, len(distinct), "text %q", text)
	}
}

func TestCountFrequencies_CodePoints(t *testing.T) {
	freqs := CountFrequencies("héé日本")
	assert.Equal(t, Frequencies{'h': 1, 'é': 2, '日': 1, '本': 1}, freqs)
}
