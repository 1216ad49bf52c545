package search

import (
	"container/heap"

	"github.com/vovakirdan/gridpath/internal/grid"
)

type node struct {
	coord grid.Coord
	g     int
	h     int
	seq   int // insertion order
}

func (n node) f() int { return n.g + n.h }

// queue is a min-heap on f. Among equal f the most recently added node
// comes first.
type queue []node

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if fi, fj := q[i].f(), q[j].f(); fi != fj {
		return fi < fj
	}
	return q[i].seq > q[j].seq
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) {
	*q = append(*q, x.(node))
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// frontier holds discovered but unexpanded nodes.
type frontier struct {
	q    queue
	next int
}

func (fr *frontier) add(c grid.Coord, g, h int) {
	heap.Push(&fr.q, node{coord: c, g: g, h: h, seq: fr.next})
	fr.next++
}

func (fr *frontier) pop() node {
	return heap.Pop(&fr.q).(node)
}

func (fr *frontier) empty() bool {
	return fr.q.Len() == 0
}
