// Package generator carves mazes into a maze.Grid.
//
// Every algorithm works on the "every other cell is a node" lattice: cells
// with two odd coordinates are rooms, cells between them are the walls that
// get knocked down. Grids must therefore be odd-sized and at least 5×5.
//
// After any algorithm runs the outer ring is forced to wall, the 2×2
// neighborhoods of the start (1,1) and the end (width-2,height-2) are forced
// to passage, and the end cell is marked, so a path from start to end always
// exists.
//
// Generation is deterministic for a given seed.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Algorithm selects a carving strategy.
type Algorithm int

const (
	// Random picks one of DFS, Prim, Kruskal and RecursiveDivision with equal probability.
	Random Algorithm = iota
	DFS
	Prim
	Kruskal
	RecursiveDivision
	// Wilson is never chosen by Random; it has to be pinned.
	Wilson
)

const minDimension = 5

var (
	ErrNilGrid          = errors.New("generator: grid is nil")
	ErrGridTooSmall     = errors.New("generator: grid must be at least 5x5")
	ErrEvenDimension    = errors.New("generator: grid dimensions must be odd")
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

	randomChoices = [...]Algorithm{DFS, Prim, Kruskal, RecursiveDivision}

	algorithmNames = map[Algorithm]string{
		Random:            "random",
		DFS:               "dfs",
		Prim:              "prim",
		Kruskal:           "kruskal",
		RecursiveDivision: "division",
		Wilson:            "wilson",
	}
)

// String returns the short name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name back to an Algorithm. An empty name is Random.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random":
		return Random, nil
	case "dfs", "backtracker":
		return DFS, nil
	case "prim":
		return Prim, nil
	case "kruskal":
		return Kruskal, nil
	case "division", "recursive-division":
		return RecursiveDivision, nil
	case "wilson":
		return Wilson, nil
	}
	return Random, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options tunes generation.
type Options struct {
	// ExtraPassages lets recursive division occasionally open a second
	// passage through a dividing wall, which adds loops.
	ExtraPassages bool
}

// Option configures generation via functional arguments.
type Option func(*Options)

// WithExtraPassages toggles the extra recursive-division passages.
func WithExtraPassages(on bool) Option {
	return func(o *Options) {
		o.ExtraPassages = on
	}
}

// generator carries the state of a single Generate call.
type generator struct {
	grid *maze.Grid
	rng  *rand.Rand
	opts Options
}

// Generate resets g and carves a maze into it using algo, seeded by seed.
// It returns the algorithm that actually ran, which differs from algo only
// when algo is Random. Preconditions are checked before g is touched.
func Generate(g *maze.Grid, algo Algorithm, seed int64, opts ...Option) (Algorithm, error) {
	if err := Validate(g); err != nil {
		return algo, err
	}
	if _, ok := algorithmNames[algo]; !ok {
		return algo, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	gen := &generator{
		grid: g,
		rng:  rand.New(rand.NewSource(seed)),
		opts: o,
	}
	if algo == Random {
		algo = randomChoices[gen.rng.Intn(len(randomChoices))]
	}

	g.Reset()
	switch algo {
	case DFS:
		gen.carveDFS(g.Start())
	case Prim:
		gen.carvePrim(g.Start())
	case Kruskal:
		gen.carveKruskal()
	case RecursiveDivision:
		gen.carveDivision()
	case Wilson:
		gen.carveWilson()
	}
	gen.finish()

	return algo, nil
}

// Validate checks that g can be generated into.
func Validate(g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	w, h := g.Width(), g.Height()
	if w < minDimension || h < minDimension {
		return fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, w, h)
	}
	if w%2 == 0 || h%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEvenDimension, w, h)
	}
	return nil
}

// finish encloses the maze and forces the start and end neighborhoods open.
func (gen *generator) finish() {
	g := gen.grid
	w, h := g.Width(), g.Height()

	for x := 0; x < w; x++ {
		g.At(x, 0).Wall = true
		g.At(x, h-1).Wall = true
	}
	for y := 0; y < h; y++ {
		g.At(0, y).Wall = true
		g.At(w-1, y).Wall = true
	}

	for _, p := range []maze.Position{
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1},
		{X: w - 2, Y: h - 2}, {X: w - 2, Y: h - 3}, {X: w - 3, Y: h - 2},
	} {
		g.SetWall(p, false)
	}
	g.Cell(g.End()).End = true
}

// interior reports whether p is strictly inside the outer ring.
func (gen *generator) interior(p maze.Position) bool {
	return p.X >= 1 && p.X <= gen.grid.Width()-2 && p.Y >= 1 && p.Y <= gen.grid.Height()-2
}

// open turns p into a passage.
func (gen *generator) open(p maze.Position) {
	gen.grid.SetWall(p, false)
}

// connect opens the wall cell halfway between two rooms.
func (gen *generator) connect(a, b maze.Position) {
	gen.open(maze.Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2})
}

// rooms returns every odd-coordinate interior cell, row by row.
func (gen *generator) rooms() []maze.Position {
	var out []maze.Position
	for y := 1; y < gen.grid.Height()-1; y += 2 {
		for x := 1; x < gen.grid.Width()-1; x += 2 {
			out = append(out, maze.Position{X: x, Y: y})
		}
	}
	return out
}

// shuffledDirections returns a uniform random permutation of maze.Directions.
func (gen *generator) shuffledDirections() [4]maze.Position {
	dirs := maze.Directions
	gen.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs
}
