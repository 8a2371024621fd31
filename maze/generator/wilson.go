package generator

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
)

// carveWilson builds a uniform spanning tree over the rooms with loop-erased
// random walks. Each walk starts at a room outside the tree and wanders until
// it hits the tree; only the last exit taken from every room is remembered,
// which erases the loops.
func (gen *generator) carveWilson() {
	rooms := gen.rooms()
	tree := mapset.New[maze.Position]()

	root := rooms[gen.rng.Intn(len(rooms))]
	gen.open(root)
	tree.Put(root)

	order := make([]maze.Position, len(rooms))
	copy(order, rooms)
	gen.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, start := range order {
		if tree.Has(start) {
			continue
		}

		exits := gen.randomWalk(start, tree)
		for p := start; !tree.Has(p); {
			d := exits[p]
			gen.open(p)
			gen.open(p.Add(d))
			tree.Put(p)
			p = p.Add(d.Scale(2))
		}
	}
}

// randomWalk walks from start until it reaches a room in tree and returns the
// last direction taken out of every room on the way.
func (gen *generator) randomWalk(start maze.Position, tree mapset.Set[maze.Position]) map[maze.Position]maze.Position {
	exits := make(map[maze.Position]maze.Position)
	for p := start; !tree.Has(p); {
		d := gen.randomRoomStep(p)
		exits[p] = d
		p = p.Add(d.Scale(2))
	}
	return exits
}

// randomRoomStep picks a direction that keeps a two-cell step inside the grid.
func (gen *generator) randomRoomStep(p maze.Position) maze.Position {
	var options []maze.Position
	for _, d := range maze.Directions {
		if gen.interior(p.Add(d.Scale(2))) {
			options = append(options, d)
		}
	}
	return options[gen.rng.Intn(len(options))]
}
