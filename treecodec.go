package hmc

import (
	"fmt"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// serializeTree encodes the shape and symbols of a coding tree as a packed
// bit sequence: a leaf is the bit 1 followed by the UTF-8 encoding of its
// symbol, and an internal node is the bit 0 followed by the serialization
// of its left child and then its right child, all in preorder.  The
// sequence is zero-padded to a byte boundary.  The pad length is not
// recorded anywhere: the section's byte length alone bounds
// deserializeTree, so trailing pad bits are never misread as structure.
func serializeTree(root *node) []byte {
	bw := newBitWriter()
	writeNode(bw, root)
	data, _ := bw.finalize()
	return data
}

func writeNode(bw *bitWriter, n *node) {
	if n.leaf() {
		assert.Assertf(utf8.ValidRune(n.symbol), "symbol %U is not a valid Unicode scalar value", n.symbol)
		bw.writeBit(true)
		var enc [utf8.UTFMax]byte
		size := utf8.EncodeRune(enc[:], n.symbol)
		for _, b := range enc[:size] {
			bw.writeByte(b)
		}
		return
	}
	bw.writeBit(false)
	writeNode(bw, n.left)
	writeNode(bw, n.right)
}

// deserializeTree rebuilds a coding tree from the bit sequence produced by
// serializeTree, consuming it in a single forward pass.
//
// Padding bits at the end of the section are indistinguishable from real 0
// bits, so a 0 bit read while the byte cursor sits in the final byte of the
// section is treated as exhausted input rather than as an internal node: a
// real internal node there would need at least 18 further bits for its two
// children, which cannot fit in the final byte.
func deserializeTree(data []byte) (*node, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty tree section", ErrDecode)
	}
	br := newBitReader(data)
	return readNode(br, len(data)-1)
}

func readNode(br *bitReader, lastByte int) (*node, error) {
	onLastByte := br.byteIndex() == lastByte
	bit, err := br.readBit()
	if err != nil {
		return nil, fmt.Errorf("%w: tree bits exhausted", ErrDecode)
	}

	if bit {
		symbol, err := readSymbol(br)
		if err != nil {
			return nil, err
		}
		return newLeaf(symbol), nil
	}

	if onLastByte {
		return nil, fmt.Errorf("%w: tree bits exhausted", ErrDecode)
	}
	left, err := readNode(br, lastByte)
	if err != nil {
		return nil, err
	}
	right, err := readNode(br, lastByte)
	if err != nil {
		return nil, err
	}
	return newInternal(left, right), nil
}

// readSymbol reads one UTF-8 encoded symbol, inspecting the lead byte to
// decide how many continuation bytes follow.
func readSymbol(br *bitReader) (rune, error) {
	lead, err := br.readByte()
	if err != nil {
		return 0, fmt.Errorf("%w: tree bits exhausted", ErrDecode)
	}

	var size int
	switch {
	case lead&0x80 == 0x00:
		size = 1
	case lead&0xE0 == 0xC0:
		size = 2
	case lead&0xF0 == 0xE0:
		size = 3
	case lead&0xF8 == 0xF0:
		size = 4
	default:
		return 0, fmt.Errorf("%w: invalid symbol lead byte 0x%02x", ErrDecode, lead)
	}

	enc := make([]byte, 1, utf8.UTFMax)
	enc[0] = lead
	for i := 1; i < size; i++ {
		b, err := br.readByte()
		if err != nil {
			return 0, fmt.Errorf("%w: tree bits exhausted", ErrDecode)
		}
		enc = append(enc, b)
	}

	symbol, n := utf8.DecodeRune(enc)
	if n != size {
		return 0, fmt.Errorf("%w: invalid symbol encoding % 02x", ErrDecode, enc)
	}
	return symbol, nil
}
