package generator

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
)

// primFrontier is the set of wall rooms two steps away from the carved
// region. The slice gives O(1) uniform picks, the set O(1) membership.
type primFrontier struct {
	cells   []maze.Position
	members mapset.Set[maze.Position]
}

func newPrimFrontier() *primFrontier {
	return &primFrontier{members: mapset.New[maze.Position]()}
}

func (f *primFrontier) add(p maze.Position) {
	if f.members.Has(p) {
		return
	}
	f.members.Put(p)
	f.cells = append(f.cells, p)
}

// take removes and returns the element at index i.
func (f *primFrontier) take(i int) maze.Position {
	p := f.cells[i]
	last := len(f.cells) - 1
	f.cells[i] = f.cells[last]
	f.cells = f.cells[:last]
	f.members.Remove(p)
	return p
}

// carvePrim grows the maze from start by repeatedly attaching a random
// frontier room to a random already-carved neighbor.
func (gen *generator) carvePrim(start maze.Position) {
	frontier := newPrimFrontier()
	gen.open(start)
	gen.extendFrontier(start, frontier)

	for len(frontier.cells) > 0 {
		current := frontier.take(gen.rng.Intn(len(frontier.cells)))

		neighbors := gen.carvedRooms(current)
		if len(neighbors) == 0 {
			continue
		}
		gen.connect(current, neighbors[gen.rng.Intn(len(neighbors))])
		gen.open(current)
		gen.extendFrontier(current, frontier)
	}
}

// extendFrontier adds every walled room two steps from p.
func (gen *generator) extendFrontier(p maze.Position, f *primFrontier) {
	for _, d := range maze.Directions {
		n := p.Add(d.Scale(2))
		if gen.interior(n) && gen.grid.IsWall(n) {
			f.add(n)
		}
	}
}

// carvedRooms lists the passage rooms two steps from p, in direction order.
func (gen *generator) carvedRooms(p maze.Position) []maze.Position {
	var out []maze.Position
	for _, d := range maze.Directions {
		n := p.Add(d.Scale(2))
		if gen.interior(n) && !gen.grid.IsWall(n) {
			out = append(out, n)
		}
	}
	return out
}
