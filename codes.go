package hmc

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// CodeTable maps each symbol of the input alphabet to its bit-string code,
// e.g. "0" or "1101".  Codes are prefix-free: no symbol's code is a prefix
// of another's.  A table derived from a single-symbol tree assigns that
// symbol the empty code; callers that pack codes into bits must handle the
// zero-length case themselves.
type CodeTable map[rune]string

// assignCodes walks the tree depth-first and records the root-to-leaf path
// of every symbol, appending "0" for each left descent and "1" for each
// right descent.
func assignCodes(root *node) CodeTable {
	codes := make(CodeTable)

	type frame struct {
		n    *node
		path string
	}
	stack := []frame{{root, ""}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.n.leaf() {
			codes[top.n.symbol] = top.path
			continue
		}
		stack = append(stack, frame{top.n.right, top.path + "1"})
		stack = append(stack, frame{top.n.left, top.path + "0"})
	}
	return codes
}

// Dump writes a programmer-readable debugging dump of the code table to the
// given writer, one symbol per line in ascending symbol order.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	symbols := make([]rune, 0, len(ct))
	for symbol := range ct {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\t%q: %q\n", symbol, ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
