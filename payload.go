package huffpack

import (
	"fmt"
	"strings"
)

// EncodePayload writes the code of every symbol of text, in order.
func EncodePayload(bw *BitWriter, text string, table CodeTable) error {
	for index, ch := range text {
		hc, found := table.Encode(Symbol(ch))
		if !found {
			return fmt.Errorf("%w: %s at byte offset %d", ErrUnmappedSymbol, Symbol(ch), index)
		}
		if err := bw.WriteCode(hc); err != nil {
			return err
		}
	}
	return nil
}

// DecodePayload reads exactly count symbols by walking the tree from root,
// taking the right child on a 1 bit and the left child on a 0 bit, and
// starting over at root after each leaf.
//
// If root is a leaf, every symbol is the 1-bit code "0", as assigned by
// NewCodeTable.
//
func DecodePayload(br *BitReader, root *Node, count uint32) (string, error) {
	// Every code is at least one bit long.
	if err := br.need(uint64(count), "payload"); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(int(count))
	for i := uint32(0); i < count; i++ {
		node := root
		if node.IsLeaf() {
			bit, err := br.ReadBit()
			if err != nil {
				return "", err
			}
			if bit {
				return "", fmt.Errorf("%w: symbol %d of a single-symbol payload is coded as 1", ErrCorrupt, i)
			}
		}
		for !node.IsLeaf() {
			bit, err := br.ReadBit()
			if err != nil {
				return "", fmt.Errorf("symbol %d of %d: %w", i, count, err)
			}
			if bit {
				node = node.Right
			} else {
				node = node.Left
			}
		}
		sb.WriteRune(rune(node.Symbol))
	}
	return sb.String(), nil
}
