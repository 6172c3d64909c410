package search

import (
	"container/heap"

	"pacman/grid"
)

// node is one frontier entry: a state, the moves that reached it from the
// start, and their accumulated cost.
type node struct {
	state State
	path  []grid.Move
	cost  float64
}

// frontier is the queue discipline that tells the search methods apart.
type frontier interface {
	push(node)
	pop() node
	empty() bool
}

// stack pops last in, first out.
type stack []node

func (s *stack) push(n node) {
	*s = append(*s, n)
}

func (s *stack) pop() node {
	old := *s
	n := old[len(old)-1]
	*s = old[:len(old)-1]
	return n
}

func (s *stack) empty() bool {
	return len(*s) == 0
}

// fifo pops first in, first out.
type fifo []node

func (q *fifo) push(n node) {
	*q = append(*q, n)
}

func (q *fifo) pop() node {
	old := *q
	n := old[0]
	*q = old[1:]
	return n
}

func (q *fifo) empty() bool {
	return len(*q) == 0
}

// priorityFrontier pops the node with the least priority, computed once
// on push by a key function. Equal priorities pop in insertion order.
type priorityFrontier struct {
	key  func(node) float64
	heap rankedHeap
	seq  int
}

func newPriorityFrontier(key func(node) float64) *priorityFrontier {
	return &priorityFrontier{key: key}
}

func (p *priorityFrontier) push(n node) {
	heap.Push(&p.heap, ranked{node: n, priority: p.key(n), seq: p.seq})
	p.seq++
}

func (p *priorityFrontier) pop() node {
	return heap.Pop(&p.heap).(ranked).node
}

func (p *priorityFrontier) empty() bool {
	return p.heap.Len() == 0
}

type ranked struct {
	node
	priority float64
	seq      int
}

type rankedHeap []ranked

func (h rankedHeap) Len() int {
	return len(h)
}

func (h rankedHeap) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}
	return h[i].priority < h[j].priority
}

func (h rankedHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *rankedHeap) Push(x any) {
	*h = append(*h, x.(ranked))
}

func (h *rankedHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}
