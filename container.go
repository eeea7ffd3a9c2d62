package hmc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Error kinds reported by the codec.  Every failure is a deterministic
// function of the input; nothing is transient or worth retrying.
var (
	// ErrEmptyInput is returned by Encode and QuickEncode when the input
	// text contains no symbols.
	ErrEmptyInput = errors.New("hmc: empty input")

	// ErrMalformedInput is returned by Decode when the container is too
	// short to hold the fixed header, its declared tree length overruns
	// the buffer, or its pad count is out of range.
	ErrMalformedInput = errors.New("hmc: malformed container")

	// ErrDecode is returned by Decode when the container parses but its
	// contents are corrupt: the tree bits run out early, or the payload
	// bit walk does not end on a leaf.
	ErrDecode = errors.New("hmc: corrupt data")
)

const (
	// treeLenSize is the width of the big-endian tree-length field that
	// opens a container.
	treeLenSize = 2

	// padSize is the width of the pad-count field between the tree
	// section and the payload.
	padSize = 1

	// minContainerSize is the smallest parseable container: the
	// tree-length field, at least one tree byte, and the pad count.
	minContainerSize = treeLenSize + 1 + padSize
)

// Encode compresses text into a self-contained binary container:
//
//	[0:2)     tree length L, uint16 big-endian
//	[2:2+L)   serialized coding tree, bit-packed MSB-first
//	[2+L]     pad count 0..7: low-order padding bits in the final payload byte
//	[2+L+1:)  payload bits, packed MSB-first
//
// The container carries everything Decode needs; no side channel is
// required.  Encode returns ErrEmptyInput when text is empty.
func Encode(text string) ([]byte, error) {
	root, err := buildTree(text)
	if err != nil {
		return nil, err
	}

	treeBytes := serializeTree(root)
	if len(treeBytes) > math.MaxUint16 {
		return nil, fmt.Errorf("hmc: serialized tree is %d bytes, limit %d", len(treeBytes), math.MaxUint16)
	}

	codes := assignCodes(root)
	bw := newBitWriter()
	if root.leaf() {
		// A lone leaf carries the empty code, which no amount of bit
		// consumption can recover.  Spend one zero bit per symbol so
		// the symbol count survives in the payload length.
		for range text {
			bw.writeBit(false)
		}
	} else {
		for _, symbol := range text {
			for _, bit := range codes[symbol] {
				bw.writeBit(bit == '1')
			}
		}
	}
	payload, pad := bw.finalize()

	out := make([]byte, treeLenSize, treeLenSize+len(treeBytes)+padSize+len(payload))
	binary.BigEndian.PutUint16(out, uint16(len(treeBytes)))
	out = append(out, treeBytes...)
	out = append(out, pad)
	out = append(out, payload...)
	return out, nil
}

// Decode reconstructs the text held in a container produced by Encode.  It
// returns ErrMalformedInput when the container cannot be parsed at all and
// ErrDecode when it parses but holds corrupt or truncated data.
func Decode(data []byte) (string, error) {
	if len(data) < minContainerSize {
		return "", fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedInput, len(data), minContainerSize)
	}
	treeLen := int(binary.BigEndian.Uint16(data))
	if treeLenSize+treeLen+padSize > len(data) {
		return "", fmt.Errorf("%w: tree size mismatch: %d bytes declared, %d available",
			ErrMalformedInput, treeLen, len(data)-treeLenSize-padSize)
	}
	treeBytes := data[treeLenSize : treeLenSize+treeLen]
	pad := data[treeLenSize+treeLen]
	if pad > 7 {
		return "", fmt.Errorf("%w: pad count %d out of range", ErrMalformedInput, pad)
	}
	payload := data[treeLenSize+treeLen+padSize:]
	if len(payload) == 0 && pad != 0 {
		return "", fmt.Errorf("%w: pad count %d with empty payload", ErrMalformedInput, pad)
	}

	root, err := deserializeTree(treeBytes)
	if err != nil {
		return "", err
	}

	// The pad count applies to the final payload byte only.
	nbits := len(payload)*8 - int(pad)

	if root.leaf() {
		// Lone-leaf tree: the payload is one zero bit per symbol.
		return strings.Repeat(string(root.symbol), nbits), nil
	}

	var sb strings.Builder
	br := newBitReader(payload)
	cur := root
	for i := 0; i < nbits; i++ {
		bit, err := br.readBit()
		if err != nil {
			return "", fmt.Errorf("%w: payload bits exhausted", ErrDecode)
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur.leaf() {
			sb.WriteRune(cur.symbol)
			cur = root
		}
	}
	if cur != root {
		return "", fmt.Errorf("%w: payload ends in the middle of a code", ErrDecode)
	}
	return sb.String(), nil
}

// QuickEncode builds the code table for text and returns it together with
// the encoded payload as a literal string of '0' and '1' characters.  It is
// a diagnostic: the result is human-readable and is not the binary
// container (use Encode for that).  QuickEncode returns ErrEmptyInput when
// text is empty.
func QuickEncode(text string) (CodeTable, string, error) {
	root, err := buildTree(text)
	if err != nil {
		return nil, "", err
	}

	codes := assignCodes(root)
	var sb strings.Builder
	for _, symbol := range text {
		sb.WriteString(codes[symbol])
	}
	return codes, sb.String(), nil
}
