package generator_test

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/beka-birhanu/vinom-maze/pathfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	allAlgorithms = []generator.Algorithm{
		generator.DFS,
		generator.Prim,
		generator.Kruskal,
		generator.RecursiveDivision,
		generator.Wilson,
	}
	sizes = [][2]int{{5, 5}, {7, 7}, {15, 15}, {21, 21}, {9, 15}, {31, 11}}
	seeds = []int64{0, 1, 2, 42, 1337, -7}
)

func generate(t *testing.T, w, h int, algo generator.Algorithm, seed int64, opts ...generator.Option) (*maze.Grid, generator.Algorithm) {
	t.Helper()
	g, err := maze.NewGrid(w, h)
	require.NoError(t, err)
	used, err := generator.Generate(g, algo, seed, opts...)
	require.NoError(t, err)
	return g, used
}

func TestGenerateInvariants(t *testing.T) {
	for _, algo := range append(allAlgorithms, generator.Random) {
		t.Run(algo.String(), func(t *testing.T) {
			for _, size := range sizes {
				for _, seed := range seeds {
					g, _ := generate(t, size[0], size[1], algo, seed)
					assertEnclosed(t, g)
					assertCornersOpen(t, g)
					assertReachable(t, g)
				}
			}
		})
	}
}

func TestGenerateExtraPassages(t *testing.T) {
	for _, seed := range seeds {
		g, _ := generate(t, 21, 21, generator.RecursiveDivision, seed, generator.WithExtraPassages(true))
		assertEnclosed(t, g)
		assertCornersOpen(t, g)
		assertReachable(t, g)
	}
}

func TestPerfectMazesOpenEveryRoom(t *testing.T) {
	for _, algo := range []generator.Algorithm{generator.DFS, generator.Prim, generator.Kruskal, generator.Wilson} {
		t.Run(algo.String(), func(t *testing.T) {
			g, _ := generate(t, 15, 11, algo, 3)
			for y := 1; y < g.Height()-1; y += 2 {
				for x := 1; x < g.Width()-1; x += 2 {
					assert.False(t, g.At(x, y).Wall, "room (%d,%d) is a wall", x, y)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, algo := range append(allAlgorithms, generator.Random) {
		t.Run(algo.String(), func(t *testing.T) {
			a, usedA := generate(t, 21, 15, algo, 99)
			b, usedB := generate(t, 21, 15, algo, 99)
			assert.Equal(t, usedA, usedB)
			assert.Equal(t, a.Rows(), b.Rows())
		})
	}
}

func TestGenerateReusesGrid(t *testing.T) {
	g, _ := generate(t, 15, 15, generator.Prim, 5)
	first := g.Rows()

	_, err := generator.Generate(g, generator.Kruskal, 6)
	require.NoError(t, err)
	_, err = generator.Generate(g, generator.Prim, 5)
	require.NoError(t, err)
	assert.Equal(t, first, g.Rows())
}

func TestRandomChoosesCoreAlgorithms(t *testing.T) {
	seen := make(map[generator.Algorithm]int)
	for seed := int64(0); seed < 200; seed++ {
		_, used := generate(t, 7, 7, generator.Random, seed)
		seen[used]++
	}

	assert.Len(t, seen, 4)
	for _, algo := range []generator.Algorithm{generator.DFS, generator.Prim, generator.Kruskal, generator.RecursiveDivision} {
		assert.Positive(t, seen[algo], "%s never chosen", algo)
	}
	assert.Zero(t, seen[generator.Wilson])
}

func TestGeneratePreconditions(t *testing.T) {
	_, err := generator.Generate(nil, generator.DFS, 1)
	assert.ErrorIs(t, err, generator.ErrNilGrid)

	small, err := maze.NewGrid(3, 5)
	require.NoError(t, err)
	_, err = generator.Generate(small, generator.DFS, 1)
	assert.ErrorIs(t, err, generator.ErrGridTooSmall)

	even, err := maze.NewGrid(8, 9)
	require.NoError(t, err)
	even.SetWall(maze.Position{X: 1, Y: 1}, false)
	_, err = generator.Generate(even, generator.DFS, 1)
	assert.ErrorIs(t, err, generator.ErrEvenDimension)
	assert.False(t, even.At(1, 1).Wall, "grid touched on failed validation")

	g, err := maze.NewGrid(7, 7)
	require.NoError(t, err)
	_, err = generator.Generate(g, generator.Algorithm(42), 1)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]generator.Algorithm{
		"":                   generator.Random,
		"random":             generator.Random,
		"DFS":                generator.DFS,
		"backtracker":        generator.DFS,
		"prim":               generator.Prim,
		" kruskal ":          generator.Kruskal,
		"division":           generator.RecursiveDivision,
		"recursive-division": generator.RecursiveDivision,
		"wilson":             generator.Wilson,
	}
	for name, want := range cases {
		got, err := generator.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := generator.ParseAlgorithm("eller")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	for _, algo := range allAlgorithms {
		got, err := generator.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
}

func assertEnclosed(t *testing.T, g *maze.Grid) {
	t.Helper()
	w, h := g.Width(), g.Height()
	for x := 0; x < w; x++ {
		assert.True(t, g.At(x, 0).Wall)
		assert.True(t, g.At(x, h-1).Wall)
	}
	for y := 0; y < h; y++ {
		assert.True(t, g.At(0, y).Wall)
		assert.True(t, g.At(w-1, y).Wall)
	}
}

func assertCornersOpen(t *testing.T, g *maze.Grid) {
	t.Helper()
	w, h := g.Width(), g.Height()
	for _, p := range []maze.Position{
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1},
		{X: w - 2, Y: h - 2}, {X: w - 2, Y: h - 3}, {X: w - 3, Y: h - 2},
	} {
		assert.False(t, g.IsWall(p), "%v should be a passage", p)
	}
	assert.True(t, g.Cell(g.End()).End)
}

func assertReachable(t *testing.T, g *maze.Grid) {
	t.Helper()
	f, err := pathfinder.NewBFS(g)
	require.NoError(t, err)
	r := f.RunToCompletion()
	assert.Equal(t, pathfinder.Found, r.Outcome, "end unreachable in\n%s", g)
}
