// Package huffpack compresses text with a Huffman code and restores it.
//
// A compressed blob is self-describing: it carries the symbol count, the
// shape of the Huffman tree, the symbols at the tree's leaves, and finally
// the coded payload.  All fields are written most significant bit first.
//
//     [u32 symbol count]
//     [tree shape, 1 bit per node, right-before-left preorder]
//     [pad to byte boundary]
//     [u32 code point] x number of leaves, right-before-left preorder
//     [payload, one code per input symbol]
//     [pad to byte boundary]
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
