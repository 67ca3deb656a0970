package huffman_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvkit/huffman"
)

// skewedBytes returns n bytes with a roughly geometric symbol distribution.
func skewedBytes(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rng.ExpFloat64() * 16)
	}
	return data
}

func BenchmarkEncode_64KiB(b *testing.B) {
	data := skewedBytes(64<<10, 1)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := huffman.Encode(data); err != nil {
			b.Fatalf("Encode: %v", err)
		}
	}
}

func BenchmarkDecode_64KiB(b *testing.B) {
	data := skewedBytes(64<<10, 1)
	bits, tree, err := huffman.Encode(data)
	if err != nil {
		b.Fatalf("Encode: %v", err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := huffman.Decode(bits, tree); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}
