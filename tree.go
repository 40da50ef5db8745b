package huffpack

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Huffman tree from the given symbol frequencies.
//
// The tree is deterministic.  Leaves are first ordered by (frequency,
// symbol) ascending and numbered in that order; the priority queue then
// orders nodes by (frequency, number) ascending, and every merged node is
// numbered after all nodes that exist before it.  The first node popped in
// each round becomes the right child, the second the left child.
//
// A single distinct symbol yields a tree that is just one leaf.  No symbols
// at all yields ErrEmptyAlphabet.
//
func BuildTree(freqs Frequencies) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: materialize the leaves in their base order.

	leaves := make(byFreq, 0, len(freqs))
	for symbol, freq := range freqs {
		assert.Assertf(symbol.IsValid(), "invalid symbol %d in frequency table", int32(symbol))
		assert.Assertf(freq != 0, "symbol %d has a frequency of 0", int32(symbol))
		leaves = append(leaves, NewLeaf(symbol, freq))
	}
	leaves.Sort()

	// Step 2: build a minheap, numbering the leaves as we go.

	h := nodeHeap{list: make([]queueItem, 0, len(leaves))}
	for _, leaf := range leaves {
		h.list = append(h.list, queueItem{node: leaf, seq: uint32(len(h.list))})
	}
	h.Init()
	nextSeq := uint32(len(h.list))

	// Step 3: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap, until only the root is left.

	for h.Len() > 1 {
		right := heap.Pop(&h).(queueItem)
		left := heap.Pop(&h).(queueItem)
		heap.Push(&h, queueItem{node: NewInternal(right.node, left.node), seq: nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(queueItem).node
	assert.Assertf(nextSeq == uint32(2*len(leaves)-1), "expected %d nodes, built %d", 2*len(leaves)-1, nextSeq)
	return root, nil
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// type byFreq {{{

type byFreq []*Node

func (list byFreq) Len() int {
	return len(list)
}

func (list byFreq) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreq) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.Symbol < b.Symbol
}

func (list byFreq) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byFreq(nil)

// }}}
