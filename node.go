package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is one node of a Huffman tree.
//
// A leaf has a Symbol and no children.  An internal node has InvalidSymbol
// and exactly two children, and its Freq is the sum of theirs.  Each node
// owns its children; subtrees are never shared.
//
type Node struct {
	Symbol Symbol
	Freq   uint32
	Right  *Node
	Left   *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, freq uint32) *Node {
	return &Node{Symbol: symbol, Freq: freq}
}

// NewInternal constructs an internal node that takes ownership of right and
// left.  Its frequency is the saturating sum of theirs.
func NewInternal(right, left *Node) *Node {
	freq := right.Freq + left.Freq
	if freq < right.Freq {
		freq = ^uint32(0)
	}
	return &Node{Symbol: InvalidSymbol, Freq: freq, Right: right, Left: left}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Right == nil && n.Left == nil
}

// Walk visits n and its descendants in right-before-left preorder, passing
// each node's depth.  Walking stops early if fn returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	if n.IsLeaf() {
		return true
	}
	return n.Right.walk(fn, depth+1) && n.Left.walk(fn, depth+1)
}

// Leaves returns the leaves in right-before-left preorder.  This is the
// order in which the symbols of the tree are serialized.
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.IsLeaf() {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	var maxDepth int
	n.Walk(func(node *Node, depth int) bool {
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	return maxDepth
}

// Dump writes a programmer-readable, indented view of the tree to the given
// writer.  Right children are listed before left children.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.Walk(func(node *Node, depth int) bool {
		buf.WriteString(strings.Repeat("\t", depth))
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "Leaf(%s, %d)\n", node.Symbol, node.Freq)
		} else {
			fmt.Fprintf(&buf, "Internal(%d)\n", node.Freq)
		}
		return true
	})
	return buf.WriteTo(w)
}

// DebugString is like Dump, but returns the result as a string.
func (n *Node) DebugString() string {
	var buf strings.Builder
	_, _ = n.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the tree rooted at n.
func (n *Node) String() string {
	leaves := len(n.Leaves())
	return fmt.Sprintf("(Huffman tree with %d leaves, depth %d, weight %d)", leaves, n.Depth(), n.Freq)
}
