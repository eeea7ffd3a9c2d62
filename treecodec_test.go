package hmc

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestSerializeTree_LoneLeaf(t *testing.T) {
	// bit 1, then 'a' = 01100001, then 7 pad bits
	expectData := []byte{0xb0, 0x80}
	actualData := serializeTree(newLeaf('a'))
	if !bytes.Equal(expectData, actualData) {
		t.Errorf("wrong data:\n\texpect: %#v\n\tactual: %#v", expectData, actualData)
	}
}

func TestTreeCodec_RoundTrip(t *testing.T) {
	testData := [...]string{
		"ab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"café",
		"日本語",
		"a🙂b🙂🙂",
		"x",
	}
	for _, text := range testData {
		t.Run(text, func(t *testing.T) {
			expect, err := buildTree(text)
			if err != nil {
				t.Fatalf("buildTree failed: %v", err)
			}
			actual, err := deserializeTree(serializeTree(expect))
			if err != nil {
				t.Fatalf("deserializeTree failed: %v", err)
			}
			if !reflect.DeepEqual(expect, actual) {
				t.Error("deserialized tree differs from the original")
			}
		})
	}
}

func TestDeserializeTree_Corrupt(t *testing.T) {
	type testRow struct {
		name string
		data []byte
	}

	testData := [...]testRow{
		{name: "empty section", data: []byte{}},
		// single byte of zero bits: the end-of-section guard must stop
		// the walk instead of recursing into the padding
		{name: "all padding", data: []byte{0x00}},
		// leaf marker with a truncated symbol byte
		{name: "truncated leaf", data: []byte{0x80}},
		// leaf whose symbol lead byte 0xff is not valid UTF-8
		{name: "invalid lead byte", data: []byte{0xff, 0x80}},
		// internal node whose right child is missing
		{name: "missing right child", data: []byte{0x2c, 0x20, 0x00}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := deserializeTree(row.data)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrDecode, err)
			}
		})
	}
}
