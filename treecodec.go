package huffpack

import (
	"fmt"
	"strings"
)

// WriteShape serializes the topology of the tree rooted at n: one bit per
// node in right-before-left preorder, 1 for a leaf and 0 for an internal
// node.  Symbols are not written; see WriteSymbols.
func (n *Node) WriteShape(bw *BitWriter) error {
	if n.IsLeaf() {
		return bw.WriteBit(true)
	}
	if err := bw.WriteBit(false); err != nil {
		return err
	}
	if err := n.Right.WriteShape(bw); err != nil {
		return err
	}
	return n.Left.WriteShape(bw)
}

// ShapeString returns the bits WriteShape would write, as a string of '0'
// and '1' characters.
func (n *Node) ShapeString() string {
	var sb strings.Builder
	n.Walk(func(node *Node, _ int) bool {
		if node.IsLeaf() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		return true
	})
	return sb.String()
}

// WriteSymbols serializes the symbol of every leaf as a 32-bit code point,
// in the same right-before-left preorder that WriteShape uses.  The Nth
// symbol written belongs to the Nth leaf of the shape.
func (n *Node) WriteSymbols(bw *BitWriter) error {
	for _, leaf := range n.Leaves() {
		if err := bw.WriteU32(uint32(leaf.Symbol)); err != nil {
			return err
		}
	}
	return nil
}

// ReadShape reconstructs a tree topology written by WriteShape.  The leaves
// of the result hold InvalidSymbol until Populate fills them in.
//
// A shape with more than maxLeaves leaves, or one that nests deeper than
// any Code can reach, is rejected with ErrCorrupt.
//
func ReadShape(br *BitReader, maxLeaves int) (*Node, error) {
	var numLeaves int
	return readShape(br, 0, &numLeaves, maxLeaves)
}

func readShape(br *BitReader, depth int, numLeaves *int, maxLeaves int) (*Node, error) {
	if depth > maxBitsPerCode {
		return nil, fmt.Errorf("%w: tree shape is deeper than %d levels at bit offset %d", ErrCorrupt, maxBitsPerCode, br.Offset())
	}

	isLeaf, err := br.ReadBit()
	if err != nil {
		return nil, err
	}

	if isLeaf {
		*numLeaves++
		if *numLeaves > maxLeaves {
			return nil, fmt.Errorf("%w: tree shape has more than %d leaves", ErrCorrupt, maxLeaves)
		}
		return NewLeaf(InvalidSymbol, 0), nil
	}

	right, err := readShape(br, depth+1, numLeaves, maxLeaves)
	if err != nil {
		return nil, err
	}
	left, err := readShape(br, depth+1, numLeaves, maxLeaves)
	if err != nil {
		return nil, err
	}
	return NewInternal(right, left), nil
}

// Populate assigns symbols to the leaves of a tree returned by ReadShape,
// reading one 32-bit code point per leaf in right-before-left preorder.
// The tree is modified in place and returned.
//
// A code point that is not a valid Symbol, or that appears at two leaves,
// is rejected with ErrCorrupt.
//
func Populate(root *Node, br *BitReader) (*Node, error) {
	leaves := root.Leaves()
	if err := br.need(32*uint64(len(leaves)), "symbol list"); err != nil {
		return nil, err
	}

	seen := make(map[Symbol]struct{}, len(leaves))
	for index, leaf := range leaves {
		word, err := br.ReadU32()
		if err != nil {
			return nil, err
		}
		symbol := Symbol(word)
		if word > uint32(MaxSymbol) || !symbol.IsValid() {
			return nil, fmt.Errorf("%w: leaf %d has invalid code point %#x", ErrCorrupt, index, word)
		}
		if _, dupe := seen[symbol]; dupe {
			return nil, fmt.Errorf("%w: leaf %d repeats symbol %s", ErrCorrupt, index, symbol)
		}
		seen[symbol] = struct{}{}
		leaf.Symbol = symbol
	}
	return root, nil
}
