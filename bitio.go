package hmc

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// bitWriter accumulates individual bits and packs them into bytes, MSB-first
// within each byte.  The zero value is not usable; call newBitWriter.
type bitWriter struct {
	buf   bytes.Buffer
	w     *bitio.Writer
	nbits int
}

func newBitWriter() *bitWriter {
	bw := new(bitWriter)
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// writeBit appends a single bit.
func (bw *bitWriter) writeBit(bit bool) {
	// writes to a bytes.Buffer cannot fail
	_ = bw.w.WriteBool(bit)
	bw.nbits++
}

// writeByte appends 8 bits at the current bit position, which need not be
// byte-aligned.
func (bw *bitWriter) writeByte(b byte) {
	_ = bw.w.WriteBits(uint64(b), 8)
	bw.nbits += 8
}

// finalize pads the accumulated bit sequence with zero bits up to a byte
// boundary and returns the packed bytes together with the number of padding
// bits added (0 if the sequence was already aligned).  The bitWriter must
// not be used after finalize.
func (bw *bitWriter) finalize() (data []byte, pad byte) {
	skipped, _ := bw.w.Align()
	assert.Assertf(skipped < 8, "pad count %d out of range", skipped)
	assert.Assertf((bw.nbits+int(skipped))%8 == 0, "%d bits written, %d padded: not byte-aligned", bw.nbits, skipped)
	return bw.buf.Bytes(), skipped
}

// bitReader reads an immutable byte slice one bit at a time, MSB-first
// within each byte, tracking a byte cursor and a sub-byte bit cursor.
// Reading past the end of the slice returns io.EOF.  There is no
// backtracking: the cursor only moves forward.
type bitReader struct {
	r    *bitio.Reader
	pos  int // bits consumed so far
	size int // total bits available
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{
		r:    bitio.NewReader(bytes.NewReader(data)),
		size: len(data) * 8,
	}
}

// readBit returns the next bit, advancing the cursor.
func (br *bitReader) readBit() (bool, error) {
	if br.pos >= br.size {
		return false, io.EOF
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.pos++
	return bit, nil
}

// readByte reads the next 8 bits regardless of byte alignment, returning
// io.EOF if fewer than 8 bits remain.
func (br *bitReader) readByte() (byte, error) {
	if br.size-br.pos < 8 {
		return 0, io.EOF
	}
	b, err := br.r.ReadBits(8)
	if err != nil {
		return 0, err
	}
	br.pos += 8
	return byte(b), nil
}

// byteIndex returns the index of the byte holding the bit the cursor points
// at.
func (br *bitReader) byteIndex() int {
	return br.pos / 8
}
