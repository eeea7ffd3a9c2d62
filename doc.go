// Package hmc implements static whole-input Huffman coding of Unicode text.
// The coding tree built from the input's symbol frequencies is serialized
// alongside the encoded payload into a compact binary container, so that a
// container is decodable on its own without any external metadata.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hmc
