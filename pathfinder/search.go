package pathfinder

import (
	"github.com/beka-birhanu/vinom-maze/maze"
)

// search is the bookkeeping shared by BFS and DFS. The frontier itself
// lives in the concrete type because only its discipline differs.
type search struct {
	grid  *maze.Grid
	start maze.Position
	end   maze.Position
	opts  Options

	visited     [][]bool
	predecessor map[maze.Position]maze.Position
	explored    int
	current     maze.Position
	path        []maze.Position
	status      Status
	last        StepResult
}

func newSearch(g *maze.Grid, opts []Option) (search, error) {
	if g == nil {
		return search{}, ErrNilGrid
	}
	if g.Width() < maze.MinDimension || g.Height() < maze.MinDimension {
		return search{}, maze.ErrInvalidDimensions
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := search{
		grid:  g,
		start: g.Start(),
		end:   g.End(),
		opts:  o,
	}
	s.visited = make([][]bool, g.Width())
	for x := range s.visited {
		s.visited[x] = make([]bool, g.Height())
	}
	s.reset()
	return s, nil
}

// reset returns the bookkeeping to its freshly constructed state.
func (s *search) reset() {
	for x := range s.visited {
		clear(s.visited[x])
	}
	s.predecessor = make(map[maze.Position]maze.Position)
	s.explored = 0
	s.current = s.start
	s.path = nil
	s.status = StatusIdle
	s.last = StepResult{}
}

// begin marks the start visited and moves the search to Running.
func (s *search) begin() {
	s.visited[s.start.X][s.start.Y] = true
	s.status = StatusRunning
}

// open reports whether p can still be added to the frontier.
func (s *search) open(p maze.Position) bool {
	return s.grid.Contains(p) && !s.grid.IsWall(p) && !s.visited[p.X][p.Y]
}

// discover marks to visited and remembers that it was reached from from.
func (s *search) discover(from, to maze.Position) {
	s.visited[to.X][to.Y] = true
	s.predecessor[to] = from
	s.opts.OnDiscover(from, to)
}

// explore records one frontier removal.
func (s *search) explore(p maze.Position) {
	s.current = p
	s.explored++
	s.opts.OnExplore(p, s.explored)
}

func (s *search) found() StepResult {
	s.path = reconstructPath(s.predecessor, s.start, s.end)
	s.status = StatusFound
	s.opts.OnFound(s.FinalPath())
	s.last = StepResult{Outcome: Found, Current: s.current, Path: s.FinalPath()}
	return s.last
}

func (s *search) exhausted() StepResult {
	s.status = StatusExhausted
	s.last = StepResult{Outcome: Exhausted, Current: s.current}
	return s.last
}

func (s *search) proceed() StepResult {
	s.last = StepResult{Outcome: Continue, Current: s.current}
	return s.last
}

// terminal returns the cached result once the search has finished.
func (s *search) terminal() (StepResult, bool) {
	if !s.status.Terminal() {
		return StepResult{}, false
	}
	r := s.last
	if r.Path != nil {
		r.Path = s.FinalPath()
	}
	return r, true
}

func (s *search) CurrentExploringPosition() maze.Position { return s.current }

func (s *search) ExploredCount() int { return s.explored }

func (s *search) Status() Status { return s.status }

// FinalPath returns a copy of the route found, or an empty slice.
func (s *search) FinalPath() []maze.Position {
	out := make([]maze.Position, len(s.path))
	copy(out, s.path)
	return out
}
