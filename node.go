package hmc

// node is one node of a Huffman coding tree.  A leaf holds exactly one
// symbol and has no children; an internal node has exactly two children and
// no symbol.  No other shape occurs: a node never has only one child.
//
// Each node exclusively owns its children, so a tree is a strict hierarchy
// with no sharing and no cycles.
type node struct {
	symbol      rune
	left, right *node
}

func newLeaf(symbol rune) *node {
	return &node{symbol: symbol}
}

func newInternal(left, right *node) *node {
	return &node{left: left, right: right}
}

// leaf reports whether n is a leaf.
func (n *node) leaf() bool {
	return n.left == nil
}
