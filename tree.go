package hmc

import (
	"container/heap"
)

// buildTree counts symbol frequencies in text and builds the Huffman coding
// tree by greedy merge: seed a min-heap with one leaf per distinct symbol,
// weighted by its count, then repeatedly pop the two lightest entries and
// push back an internal node carrying their combined weight, until a single
// entry (the root) remains.  A text with exactly one distinct symbol never
// merges, so its root is a bare leaf.
//
// buildTree returns ErrEmptyInput when text contains no symbols.
//
// Entries of equal weight pop most-recent-first: leaves are seeded in order
// of first appearance in the text, merged nodes are numbered after all
// leaves, and the entry with the highest sequence number wins a tie.  The
// policy is arbitrary but fixed, so a given text always produces the same
// tree and therefore the same container bytes.
func buildTree(text string) (*node, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	freqs := make(map[rune]int)
	var order []rune
	for _, r := range text {
		if freqs[r] == 0 {
			order = append(order, r)
		}
		freqs[r]++
	}

	h := new(mergeHeap)
	h.list = make([]mergeEntry, 0, len(order))
	for seq, r := range order {
		h.list = append(h.list, mergeEntry{node: newLeaf(r), weight: freqs[r], seq: seq})
	}
	h.Init()

	seq := len(order)
	for h.Len() > 1 {
		a := heap.Pop(h).(mergeEntry)
		b := heap.Pop(h).(mergeEntry)
		heap.Push(h, mergeEntry{
			node:   newInternal(a.node, b.node),
			weight: a.weight + b.weight,
			seq:    seq,
		})
		seq++
	}
	return heap.Pop(h).(mergeEntry).node, nil
}

// type mergeEntry + type mergeHeap {{{

type mergeEntry struct {
	node   *node
	weight int
	seq    int
}

type mergeHeap struct {
	list []mergeEntry
}

func (h *mergeHeap) Init() {
	heap.Init(h)
}

func (h *mergeHeap) Len() int {
	return len(h.list)
}

func (h *mergeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *mergeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq > b.seq
}

func (h *mergeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(mergeEntry))
}

func (h *mergeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*mergeHeap)(nil)

// }}}
