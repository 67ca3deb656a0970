package huffman

import (
	"cmp"
	"container/heap"
	"fmt"
	"maps"
	"slices"
)

// BuildTree builds a Huffman code tree from a symbol → count table.
//
// Steps:
//  1. Validate: non-empty table (ErrEmptyInput), positive counts (ErrBadFrequency).
//  2. Rank symbols in ascending order; one leaf per symbol.
//  3. Pop the two lightest subtrees, merge them (first = left, second = right),
//     push the merge back; repeat until one subtree remains.
//
// A table with a single symbol yields a single-leaf tree.
func BuildTree[S cmp.Ordered](freq map[S]int) (*Tree[S], error) {
	// 1) Validate
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}
	symbols := slices.Sorted(maps.Keys(freq))
	for _, s := range symbols {
		if freq[s] <= 0 {
			return nil, fmt.Errorf("%w: symbol %v has count %d", ErrBadFrequency, s, freq[s])
		}
	}

	// 2) Leaves
	if len(symbols) == 1 {
		return newTree(&Node[S]{Symbol: symbols[0], Weight: freq[symbols[0]]}), nil
	}
	q := make(nodeQueue[S], 0, len(symbols))
	for rank, s := range symbols {
		q = append(q, &queueItem[S]{node: &Node[S]{Symbol: s, Weight: freq[s]}, order: rank})
	}
	heap.Init(&q)

	// 3) Merge
	order := len(symbols)
	for q.Len() > 1 {
		a := heap.Pop(&q).(*queueItem[S])
		b := heap.Pop(&q).(*queueItem[S])
		merged := &Node[S]{
			Weight: a.node.Weight + b.node.Weight,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&q, &queueItem[S]{node: merged, order: order})
		order++
	}

	return newTree(q[0].node), nil
}

// queueItem is a subtree waiting to be merged.
type queueItem[S cmp.Ordered] struct {
	node  *Node[S]
	order int
}

// nodeQueue implements heap.Interface ordered by (weight, order).
type nodeQueue[S cmp.Ordered] []*queueItem[S]

func (q nodeQueue[S]) Len() int { return len(q) }

func (q nodeQueue[S]) Less(i, j int) bool {
	if q[i].node.Weight != q[j].node.Weight {
		return q[i].node.Weight < q[j].node.Weight
	}
	return q[i].order < q[j].order
}

func (q nodeQueue[S]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue[S]) Push(x interface{}) {
	*q = append(*q, x.(*queueItem[S]))
}

func (q *nodeQueue[S]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
