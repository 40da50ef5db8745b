package huffpack

import (
	"sort"
)

// Frequencies maps each distinct Symbol to its number of occurrences.
type Frequencies map[Symbol]uint32

// CountFrequencies scans text and counts each code point.  The result is
// empty iff text is empty.
func CountFrequencies(text string) Frequencies {
	freqs := make(Frequencies)
	for _, ch := range text {
		freqs[Symbol(ch)]++
	}
	return freqs
}

// Total returns the sum of all counts, i.e. the length of the counted text
// in code points.
func (freqs Frequencies) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += uint64(freq)
	}
	return sum
}

// Symbols returns the distinct symbols in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}
