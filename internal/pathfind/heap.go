package pathfind

import "github.com/danieljhkim/gridcmd/internal/grid"

// searchNode is a frontier or closed entry of the search.
type searchNode struct {
	pos    grid.Coord
	parent *searchNode
	g, f   int
	seq    int // discovery order, breaks ties on f
	index  int // position in the heap, -1 once popped
}

// nodeHeap implements heap.Interface ordered by (f, seq).
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*h = old[:last]
	return n
}
