package search

import (
	"container/heap"
	"slices"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

// node wraps a state with its parent back-reference, the action that
// produced it, and the accumulated path cost.
type node struct {
	state  world.State
	action world.Action // action applied to parent; unused on the root
	parent *node
	g      int    // cost so far
	f      int    // frontier priority: g for UCS, g+h for A*
	seq    uint64 // insertion order, breaks equal-priority ties FIFO
	index  int    // heap index
}

// actions reconstructs the root-to-n action sequence by walking parent
// links. The root itself yields an empty, non-nil sequence.
func (n *node) actions() []world.Action {
	out := []world.Action{}
	for cur := n; cur.parent != nil; cur = cur.parent {
		out = append(out, cur.action)
	}
	slices.Reverse(out)
	return out
}

// frontier is a min-heap over f. Nodes with equal f leave in insertion
// order, so equal-cost searches stay deterministic.
type frontier struct {
	heap frontierHeap
	seq  uint64
}

func (fr *frontier) push(n *node) {
	fr.seq++
	n.seq = fr.seq
	heap.Push(&fr.heap, n)
}

func (fr *frontier) pop() *node {
	return heap.Pop(&fr.heap).(*node)
}

func (fr *frontier) empty() bool {
	return fr.heap.Len() == 0
}

// frontierHeap implements heap.Interface.
type frontierHeap []*node

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *frontierHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}
