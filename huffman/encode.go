package huffman

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encode builds a tree from the frequencies of data and returns the
// concatenated codes of data in input order together with the tree.
// Empty input returns ("", nil, nil).
func Encode[S cmp.Ordered](data []S) (string, *Tree[S], error) {
	if len(data) == 0 {
		return "", nil, nil
	}
	t, err := BuildTree(Frequencies(data))
	if err != nil {
		return "", nil, err
	}
	bits, err := EncodeWith(data, t)
	if err != nil {
		return "", nil, err
	}

	return bits, t, nil
}

// EncodeWith encodes data with an existing tree. Every symbol of data must
// have a code in t (ErrNoSuchCode otherwise).
func EncodeWith[S cmp.Ordered](data []S, t *Tree[S]) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if t.empty() {
		return "", ErrNilTree
	}

	var sb strings.Builder
	for i, s := range data {
		code, ok := t.codes[s]
		if !ok {
			return "", fmt.Errorf("%w: symbol %v at position %d", ErrNoSuchCode, s, i)
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// Decode walks t bit by bit, emitting a symbol at every leaf.
//
// Errors:
//   - ErrNilTree: bits is non-empty and t is nil or empty.
//   - ErrInvalidBit: a character other than '0' or '1'.
//   - ErrNoSuchCode: a bit leads to a missing child (or '1' on a single-leaf tree).
//   - ErrTruncated: bits end before a leaf is reached.
func Decode[S cmp.Ordered](bits string, t *Tree[S]) ([]S, error) {
	if bits == "" {
		return []S{}, nil
	}
	if t.empty() {
		return nil, ErrNilTree
	}

	root := t.root
	if root.IsLeaf() {
		return decodeSingle(bits, root.Symbol)
	}

	out := make([]S, 0, len(bits)/max(1, t.Depth()))
	cur := root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, bits[i], i)
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNoSuchCode, i)
		}
		if cur.IsLeaf() {
			out = append(out, cur.Symbol)
			cur = root
		}
	}
	if cur != root {
		return nil, fmt.Errorf("%w: %d decoded symbols", ErrTruncated, len(out))
	}

	return out, nil
}

// decodeSingle handles the single-leaf tree: each '0' is one occurrence.
func decodeSingle[S cmp.Ordered](bits string, sym S) ([]S, error) {
	out := make([]S, 0, len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			out = append(out, sym)
		case '1':
			return nil, fmt.Errorf("%w: position %d", ErrNoSuchCode, i)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, bits[i], i)
		}
	}
	return out, nil
}

// EncodeString encodes the runes of s. s must be valid UTF-8
// (ErrInvalidUTF8), otherwise invalid bytes would decode as U+FFFD; use
// Encode on []byte for binary data.
func EncodeString(s string) (string, *Tree[rune], error) {
	if !utf8.ValidString(s) {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidUTF8, truncate(s, 16))
	}
	return Encode([]rune(s))
}

// truncate shortens s to at most n bytes for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// DecodeString decodes bits produced by EncodeString.
func DecodeString(bits string, t *Tree[rune]) (string, error) {
	runes, err := Decode(bits, t)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}
