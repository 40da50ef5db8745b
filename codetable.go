package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol at a leaf of a Huffman tree to its Code.
type CodeTable map[Symbol]Code

// NewCodeTable walks the tree rooted at root and records the root-to-leaf
// path of every leaf, with a right edge contributing a 1 bit and a left edge
// a 0 bit.
//
// If root is itself a leaf, its path would be empty, which is not a usable
// codeword; the lone symbol is assigned the 1-bit code "0" instead.
//
func NewCodeTable(root *Node) CodeTable {
	table := make(CodeTable)
	if root.IsLeaf() {
		table[root.Symbol] = MakeCode(1, 0)
		return table
	}
	fillCodes(table, root, Code{})
	return table
}

func fillCodes(table CodeTable, node *Node, prefix Code) {
	if node.IsLeaf() {
		_, dupe := table[node.Symbol]
		assert.Assertf(!dupe, "symbol %d appears at more than one leaf", int32(node.Symbol))
		table[node.Symbol] = prefix
		return
	}
	assert.Assertf(node.Right != nil && node.Left != nil, "internal node with only one child")
	fillCodes(table, node.Right, prefix.Append(true))
	fillCodes(table, node.Left, prefix.Append(false))
}

// Encode returns the Code for symbol.
func (table CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc, found := table[symbol]
	return hc, found
}

// MinSize is the bit length of the shortest code.
func (table CodeTable) MinSize() byte {
	var minSize byte
	first := true
	for _, hc := range table {
		if first || hc.Size < minSize {
			minSize = hc.Size
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (table CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range table {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// EncodedBits returns the number of payload bits needed to encode text that
// has the given symbol frequencies.  Symbols without a code are ignored.
func (table CodeTable) EncodedBits(freqs Frequencies) uint64 {
	var sum uint64
	for symbol, freq := range freqs {
		sum += uint64(table[symbol].Size) * uint64(freq)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.  Symbols are listed in ascending order.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, symbol := range table.symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString is like Dump, but returns the result as a string.
func (table CodeTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = table.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the table.
func (table CodeTable) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", len(table), table.MinSize(), table.MaxSize())
}

func (table CodeTable) symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

var _ fmt.Stringer = CodeTable(nil)
