package pathfinder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openFive = []string{
	"#####",
	"#S..#",
	"#...#",
	"#..E#",
	"#####",
}

func mustParse(t *testing.T, rows []string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseRows(rows)
	require.NoError(t, err)
	return g
}

func pos(x, y int) maze.Position { return maze.Position{X: x, Y: y} }

func TestOpenGridExample(t *testing.T) {
	t.Run("BFS", func(t *testing.T) {
		f, err := NewBFS(mustParse(t, openFive))
		require.NoError(t, err)

		r := f.RunToCompletion()
		assert.Equal(t, Found, r.Outcome)
		assert.Equal(t, []maze.Position{pos(1, 1), pos(2, 1), pos(3, 1), pos(3, 2), pos(3, 3)}, r.Path)
		assert.Equal(t, 9, f.ExploredCount())
		assert.Equal(t, StatusFound, f.Status())
		assert.Equal(t, pos(3, 3), f.CurrentExploringPosition())
	})

	t.Run("DFS", func(t *testing.T) {
		f, err := NewDFS(mustParse(t, openFive))
		require.NoError(t, err)

		r := f.RunToCompletion()
		assert.Equal(t, Found, r.Outcome)
		assert.Equal(t, []maze.Position{pos(1, 1), pos(2, 1), pos(3, 1), pos(3, 2), pos(3, 3)}, r.Path)
		assert.Equal(t, 5, f.ExploredCount())
	})
}

func TestNewErrors(t *testing.T) {
	_, err := NewBFS(nil)
	assert.ErrorIs(t, err, ErrNilGrid)
	_, err = NewDFS(nil)
	assert.ErrorIs(t, err, ErrNilGrid)

	_, err = New(Kind(9), mustParse(t, openFive))
	assert.ErrorIs(t, err, ErrUnknownKind)

	k, err := ParseKind(" DFS ")
	require.NoError(t, err)
	assert.Equal(t, KindDFS, k)
	_, err = ParseKind("astar")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestStateMachine(t *testing.T) {
	for _, kind := range []Kind{KindBFS, KindDFS} {
		t.Run(kind.String(), func(t *testing.T) {
			f, err := New(kind, mustParse(t, openFive))
			require.NoError(t, err)

			assert.Equal(t, StatusIdle, f.Status())
			assert.Equal(t, pos(1, 1), f.CurrentExploringPosition())
			assert.Empty(t, f.FinalPath())

			r := f.Step()
			assert.Equal(t, Continue, r.Outcome)
			assert.Equal(t, pos(1, 1), r.Current)
			assert.Equal(t, StatusRunning, f.Status())

			final := f.RunToCompletion()
			require.Equal(t, Found, final.Outcome)
			count := f.ExploredCount()

			again := f.Step()
			assert.Equal(t, final, again)
			assert.Equal(t, count, f.ExploredCount())

			f.Reset()
			assert.Equal(t, StatusIdle, f.Status())
			assert.Equal(t, 0, f.ExploredCount())
			assert.Empty(t, f.FinalPath())
		})
	}
}

func TestMonotonicExploration(t *testing.T) {
	for _, kind := range []Kind{KindBFS, KindDFS} {
		t.Run(kind.String(), func(t *testing.T) {
			g := randomGrid(rand.New(rand.NewSource(7)), 9, 9, 0.3)
			f, err := New(kind, g)
			require.NoError(t, err)

			for i := 1; ; i++ {
				r := f.Step()
				assert.Equal(t, i, f.ExploredCount())
				assert.Equal(t, r.Current, f.CurrentExploringPosition())
				if r.Outcome != Continue {
					break
				}
			}
		})
	}
}

func TestExhausted(t *testing.T) {
	g := mustParse(t, []string{
		"#####",
		"#S#.#",
		"###.#",
		"#..E#",
		"#####",
	})
	for _, kind := range []Kind{KindBFS, KindDFS} {
		t.Run(kind.String(), func(t *testing.T) {
			f, err := New(kind, g)
			require.NoError(t, err)

			r := f.RunToCompletion()
			assert.Equal(t, Exhausted, r.Outcome)
			assert.Nil(t, r.Path)
			assert.Equal(t, StatusExhausted, f.Status())
			assert.Equal(t, 1, f.ExploredCount())
			assert.Empty(t, f.FinalPath())

			assert.Equal(t, r, f.Step())
		})
	}
}

func TestIdempotentReset(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		g := randomGrid(rng, 11, 9, 0.25)
		for _, kind := range []Kind{KindBFS, KindDFS} {
			f, err := New(kind, g)
			require.NoError(t, err)

			first := f.RunToCompletion()
			count := f.ExploredCount()

			f.Reset()
			second := f.RunToCompletion()
			assert.Equal(t, first, second)
			assert.Equal(t, count, f.ExploredCount())
		}
	}
}

func TestBFSOptimality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		g := randomGrid(rng, 7, 7, 0.35)
		want := shortestDistance(g)

		bfs, err := NewBFS(g)
		require.NoError(t, err)
		dfs, err := NewDFS(g)
		require.NoError(t, err)

		rb := bfs.RunToCompletion()
		rd := dfs.RunToCompletion()

		if want < 0 {
			assert.Equal(t, Exhausted, rb.Outcome)
			assert.Equal(t, Exhausted, rd.Outcome)
			continue
		}

		require.Equal(t, Found, rb.Outcome, "\n%s", g)
		require.Equal(t, Found, rd.Outcome, "\n%s", g)
		assert.Equal(t, want, len(rb.Path)-1, "\n%s", g)
		assert.LessOrEqual(t, len(rb.Path), len(rd.Path))
		assertValidPath(t, g, rb.Path)
		assertValidPath(t, g, rd.Path)
	}
}

func TestHooks(t *testing.T) {
	var explored, discovered int
	var found []maze.Position
	f, err := NewBFS(mustParse(t, openFive),
		WithOnExplore(func(_ maze.Position, n int) { explored = n }),
		WithOnDiscover(func(_, _ maze.Position) { discovered++ }),
		WithOnFound(func(p []maze.Position) { found = p }),
		WithOnFound(nil),
	)
	require.NoError(t, err)

	r := f.RunToCompletion()
	assert.Equal(t, 9, explored)
	assert.Equal(t, 8, discovered)
	assert.Equal(t, r.Path, found)
}

func TestFinalPathIsCopy(t *testing.T) {
	f, err := NewBFS(mustParse(t, openFive))
	require.NoError(t, err)
	f.RunToCompletion()

	p := f.FinalPath()
	p[0] = pos(9, 9)
	assert.Equal(t, pos(1, 1), f.FinalPath()[0])
}

func TestReconstructPathPanicsOnBrokenChain(t *testing.T) {
	pred := map[maze.Position]maze.Position{pos(3, 3): pos(3, 2)}
	assert.Panics(t, func() { reconstructPath(pred, pos(1, 1), pos(3, 3)) })
}

func assertValidPath(t *testing.T, g *maze.Grid, path []maze.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.End(), path[len(path)-1])
	for i, p := range path {
		assert.False(t, g.IsWall(p), "wall on path at %v", p)
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dist := math.Abs(float64(p.X-prev.X)) + math.Abs(float64(p.Y-prev.Y))
		assert.Equal(t, 1.0, dist, "step %v -> %v", prev, p)
	}
}

// randomGrid returns an enclosed grid whose interior cells are walls with
// probability density, keeping start and end open.
func randomGrid(rng *rand.Rand, w, h int, density float64) *maze.Grid {
	g, err := maze.NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.SetWall(pos(x, y), rng.Float64() < density)
		}
	}
	g.SetWall(g.Start(), false)
	g.SetWall(g.End(), false)
	return g
}

// shortestDistance relaxes distances over every cell until nothing changes,
// independently of the queue-based search. It returns -1 when the end is
// unreachable.
func shortestDistance(g *maze.Grid) int {
	const inf = math.MaxInt32
	dist := make(map[maze.Position]int)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			dist[pos(x, y)] = inf
		}
	}
	dist[g.Start()] = 0

	for changed := true; changed; {
		changed = false
		for p, d := range dist {
			if d == inf || g.IsWall(p) {
				continue
			}
			for _, dir := range maze.Directions {
				n := p.Add(dir)
				if !g.Contains(n) || g.IsWall(n) {
					continue
				}
				if dist[n] > d+1 {
					dist[n] = d + 1
					changed = true
				}
			}
		}
	}

	if dist[g.End()] == inf {
		return -1
	}
	return dist[g.End()]
}
