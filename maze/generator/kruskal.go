package generator

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spakin/disjoint"
)

// edge joins two rooms that are two cells apart.
type edge struct {
	from maze.Position
	to   maze.Position
}

// carveKruskal opens every room, shuffles the edges between neighboring
// rooms and keeps each edge whose endpoints are not yet connected.
func (gen *generator) carveKruskal() {
	rooms := gen.rooms()
	sets := make(map[maze.Position]*disjoint.Element, len(rooms))
	edges := make([]edge, 0, 2*len(rooms))

	w, h := gen.grid.Width(), gen.grid.Height()
	for _, r := range rooms {
		sets[r] = disjoint.NewElement()
		gen.open(r)

		if r.X < w-2 {
			edges = append(edges, edge{from: r, to: maze.Position{X: r.X + 2, Y: r.Y}})
		}
		if r.Y < h-2 {
			edges = append(edges, edge{from: r, to: maze.Position{X: r.X, Y: r.Y + 2}})
		}
	}

	gen.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	for _, e := range edges {
		a, b := sets[e.from], sets[e.to]
		if a.Find() == b.Find() {
			continue
		}
		disjoint.Union(a, b)
		gen.connect(e.from, e.to)
	}
}
