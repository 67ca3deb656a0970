// Package huffman implements Huffman prefix coding over arbitrary ordered
// symbols (bytes, runes, ints, strings).
//
// Encode counts symbol frequencies, builds the code tree by repeatedly merging
// the two lightest subtrees, derives a code per symbol by walking root to leaf
// ('0' = left, '1' = right) and concatenates the codes in input order. Decode
// walks the same tree bit by bit and emits a symbol at every leaf.
//
// Determinism:
//
//   - Subtrees are ordered by (weight asc, order asc). Leaves take their rank
//     in ascending symbol order; the k-th merged node takes order len(leaves)+k,
//     so on equal weight leaves win over merged nodes and older merges win
//     over newer ones.
//   - The first subtree taken from the queue becomes the left child ("0"),
//     the second the right child ("1").
//
// Edge cases:
//
//   - Empty input encodes to "" with a nil tree; "" decodes to an empty
//     result with any tree, including nil.
//   - A single distinct symbol yields a tree that is just one leaf. Its code
//     is "0" and every occurrence costs one bit; decoding such a tree emits
//     the symbol for every '0' and rejects '1'.
//   - Decoding stops with ErrTruncated when the bits end between leaves, so
//     a mismatched tree is reported rather than silently dropping output.
//
// Complexity:
//
//   - BuildTree: O(k log k) for k distinct symbols.
//   - Encode:    O(n + k log k).
//   - Decode:    O(bits).
//
// The code table can be persisted with Tree.Codes and turned back into a
// decoding tree with FromCodes; the package itself defines no file format.
package huffman
