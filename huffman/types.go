package huffman

import (
	"cmp"
	"errors"
	"maps"
	"slices"
)

// Sentinel errors returned by the package.
var (
	// ErrEmptyInput indicates BuildTree received an empty frequency table.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrBadFrequency indicates a symbol with a zero or negative count.
	ErrBadFrequency = errors.New("huffman: frequency must be positive")

	// ErrNilTree indicates non-empty bits were passed with a nil tree.
	ErrNilTree = errors.New("huffman: tree is nil")

	// ErrInvalidBit indicates a character other than '0' or '1' in a bitstring or code.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrNoSuchCode indicates the bits walk off the tree, or a symbol has no code.
	ErrNoSuchCode = errors.New("huffman: no code for input")

	// ErrTruncated indicates the bitstring ended between two leaves.
	ErrTruncated = errors.New("huffman: bitstring not exhausted at a leaf boundary")

	// ErrInvalidCode indicates an empty code in a code table.
	ErrInvalidCode = errors.New("huffman: invalid code")

	// ErrNotPrefixFree indicates one code in a table is a prefix of another.
	ErrNotPrefixFree = errors.New("huffman: codes are not prefix-free")

	// ErrInvalidUTF8 indicates EncodeString received bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("huffman: text is not valid UTF-8")
)

// Node is one vertex of a code tree. Leaves carry a Symbol; internal nodes
// carry the zero Symbol. Internal nodes built by BuildTree have both
// children; those rebuilt by FromCodes from an incomplete table may have one
// nil child. Weight is the total frequency of the leaves below the node
// (0 for trees rebuilt by FromCodes).
type Node[S cmp.Ordered] struct {
	Symbol S
	Weight int
	Left   *Node[S]
	Right  *Node[S]
}

// IsLeaf reports whether n has no children.
func (n *Node[S]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is an immutable code tree together with its derived code table.
// Obtain one from BuildTree, Encode or FromCodes; the zero Tree is empty and
// decodes nothing (ErrNilTree).
type Tree[S cmp.Ordered] struct {
	root  *Node[S]
	codes map[S]string
}

// newTree wraps root and derives the code table.
func newTree[S cmp.Ordered](root *Node[S]) *Tree[S] {
	t := &Tree[S]{root: root, codes: make(map[S]string)}
	if root.IsLeaf() {
		t.codes[root.Symbol] = "0"
		return t
	}
	var walk func(n *Node[S], prefix []byte)
	walk = func(n *Node[S], prefix []byte) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			t.codes[n.Symbol] = string(prefix)
			return
		}
		walk(n.Left, append(prefix, '0'))
		walk(n.Right, append(prefix, '1'))
	}
	walk(root, make([]byte, 0, 16))

	return t
}

// Root returns the root node. Callers must not modify the tree through it.
func (t *Tree[S]) Root() *Node[S] { return t.root }

// Codes returns a copy of the symbol → code table.
func (t *Tree[S]) Codes() map[S]string { return maps.Clone(t.codes) }

// Code returns the code of s.
func (t *Tree[S]) Code(s S) (string, bool) {
	c, ok := t.codes[s]
	return c, ok
}

// Symbols returns the encoded symbols in ascending order.
func (t *Tree[S]) Symbols() []S {
	return slices.Sorted(maps.Keys(t.codes))
}

// Weight returns the total frequency stored at the root, 0 for an empty tree.
func (t *Tree[S]) Weight() int {
	if t.empty() {
		return 0
	}
	return t.root.Weight
}

// empty reports a nil or zero Tree.
func (t *Tree[S]) empty() bool { return t == nil || t.root == nil }

// Depth returns the length of the longest code. A single-leaf tree has depth 0
// even though its only code is one bit long.
func (t *Tree[S]) Depth() int {
	if t.empty() || t.root.IsLeaf() {
		return 0
	}
	depth := 0
	for _, c := range t.codes {
		depth = max(depth, len(c))
	}
	return depth
}
