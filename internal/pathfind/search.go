// Package pathfind finds shortest 4-connected routes over an occupancy grid.
//
// The search is A* with unit edge costs and a Manhattan heuristic. Only Empty
// cells can be entered, so a target holding a Tile, Enemy or the Agent is
// never reached. The origin is exempt from that rule: when start equals
// target the path is [start] if that cell holds the Agent or is Empty, and
// there is no path once a Tile or Enemy has been toggled onto it.
//
// Results are deterministic: successors are generated Left, Right, Down, Up
// and frontier ties on f are broken by discovery order.
package pathfind

import (
	"container/heap"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

// Occupancy is the view of the grid the search needs.
type Occupancy interface {
	InBounds(c grid.Coord) bool
	Query(c grid.Coord) (grid.CellState, error)
}

// neighbourOffsets is the fixed successor order: Left, Right, Down, Up.
var neighbourOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, 1},
	{0, -1},
}

// Successors returns the enterable neighbours of c in successor order.
func Successors(occ Occupancy, c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		next := c.Add(d[0], d[1])
		if enterable(occ, next) {
			out = append(out, next)
		}
	}
	return out
}

func enterable(occ Occupancy, c grid.Coord) bool {
	if !occ.InBounds(c) {
		return false
	}
	state, err := occ.Query(c)
	return err == nil && state == grid.Empty
}

// originEligible reports whether the start cell may be used as the origin.
// The agent's own cell qualifies; an obstacle toggled onto it does not.
func originEligible(occ Occupancy, c grid.Coord) bool {
	if !occ.InBounds(c) {
		return false
	}
	state, err := occ.Query(c)
	if err != nil {
		return false
	}
	return state == grid.Empty || state == grid.Agent
}

// Find returns the shortest path from start to target, or false when no
// route exists. The path includes both endpoints.
func Find(occ Occupancy, start, target grid.Coord) (Path, bool) {
	if !occ.InBounds(start) || !occ.InBounds(target) {
		return nil, false
	}
	if start == target {
		if !originEligible(occ, start) {
			return nil, false
		}
		return Path{start}, true
	}

	open := &nodeHeap{}
	heap.Init(open)

	seq := 0
	startNode := &searchNode{
		pos: start,
		g:   0,
		f:   start.Manhattan(target),
		seq: seq,
	}
	heap.Push(open, startNode)

	known := map[grid.Coord]*searchNode{start: startNode}
	closed := make(map[grid.Coord]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if current.pos == target {
			return reconstruct(current), true
		}
		closed[current.pos] = true

		for _, next := range Successors(occ, current.pos) {
			if closed[next] {
				continue
			}
			g := current.g + 1

			neighbour, seen := known[next]
			if !seen {
				seq++
				neighbour = &searchNode{
					pos:    next,
					parent: current,
					g:      g,
					f:      g + next.Manhattan(target),
					seq:    seq,
				}
				known[next] = neighbour
				heap.Push(open, neighbour)
				continue
			}
			if g < neighbour.g {
				neighbour.parent = current
				neighbour.g = g
				neighbour.f = g + next.Manhattan(target)
				heap.Fix(open, neighbour.index)
			}
		}
	}

	return nil, false
}

func reconstruct(n *searchNode) Path {
	length := n.g + 1
	path := make(Path, length)
	for i := length - 1; n != nil; i-- {
		path[i] = n.pos
		n = n.parent
	}
	return path
}
