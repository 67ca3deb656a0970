package huffman

import "cmp"

// Frequencies counts how often each symbol occurs in data.
func Frequencies[S cmp.Ordered](data []S) map[S]int {
	freq := make(map[S]int)
	for _, s := range data {
		freq[s]++
	}
	return freq
}
