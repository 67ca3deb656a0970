package huffman

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// FromCodes rebuilds a decoding tree from a symbol → code table such as one
// returned by Tree.Codes. Weights of the rebuilt nodes are zero.
//
// A table with one symbol coded "0" rebuilds the single-leaf tree. Codes must
// be non-empty (ErrInvalidCode), consist of '0' and '1' (ErrInvalidBit) and be
// prefix-free (ErrNotPrefixFree). The table need not be complete: bits that
// walk into a missing branch fail Decode with ErrNoSuchCode.
func FromCodes[S cmp.Ordered](codes map[S]string) (*Tree[S], error) {
	if len(codes) == 0 {
		return nil, ErrEmptyInput
	}
	symbols := slices.Sorted(maps.Keys(codes))
	if len(symbols) == 1 && codes[symbols[0]] == "0" {
		return newTree(&Node[S]{Symbol: symbols[0]}), nil
	}

	b := codeBuilder[S]{root: &Node[S]{}, leaves: make(map[*Node[S]]bool, len(codes))}
	for _, s := range symbols {
		if err := b.insert(s, codes[s]); err != nil {
			return nil, err
		}
	}

	return newTree(b.root), nil
}

// codeBuilder grows a tree one code at a time. leaves records nodes that
// already hold a symbol, since a freshly created internal node has no
// children either.
type codeBuilder[S cmp.Ordered] struct {
	root   *Node[S]
	leaves map[*Node[S]]bool
}

// insert adds the path for code and places s at its end.
func (b *codeBuilder[S]) insert(s S, code string) error {
	if code == "" {
		return fmt.Errorf("%w: symbol %v has an empty code", ErrInvalidCode, s)
	}

	cur := b.root
	for i := 0; i < len(code); i++ {
		var next **Node[S]
		switch code[i] {
		case '0':
			next = &cur.Left
		case '1':
			next = &cur.Right
		default:
			return fmt.Errorf("%w: %q in code of %v", ErrInvalidBit, code[i], s)
		}

		last := i == len(code)-1
		switch {
		case *next == nil:
			*next = &Node[S]{}
		case b.leaves[*next] || last:
			// An earlier code ends here, or this code ends above an earlier one.
			return fmt.Errorf("%w: code %q of %v", ErrNotPrefixFree, code, s)
		}
		cur = *next
	}
	cur.Symbol = s
	b.leaves[cur] = true

	return nil
}
