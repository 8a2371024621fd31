package pathfinder

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"gopkg.in/karalabe/cookiejar.v2/collections/queue"
)

// BFS searches with a FIFO frontier. Cells are marked visited when they are
// enqueued, so the first time the goal is dequeued its predecessor chain is
// a shortest route in edge count.
type BFS struct {
	search
	pending *queue.Queue
}

var _ PathFinder = (*BFS)(nil)

// NewBFS returns an idle breadth-first search over g.
func NewBFS(g *maze.Grid, opts ...Option) (*BFS, error) {
	s, err := newSearch(g, opts)
	if err != nil {
		return nil, err
	}
	return &BFS{search: s, pending: queue.New()}, nil
}

// Reset returns the search to Idle.
func (b *BFS) Reset() {
	b.search.reset()
	b.pending.Reset()
}

// Step dequeues one cell and enqueues its open neighbors.
func (b *BFS) Step() StepResult {
	if r, done := b.terminal(); done {
		return r
	}
	if b.status == StatusIdle {
		b.begin()
		b.pending.Push(b.start)
	}

	current := b.pending.Pop().(maze.Position)
	b.explore(current)
	if current == b.end {
		return b.found()
	}

	for _, d := range maze.Directions {
		next := current.Add(d)
		if b.open(next) {
			b.discover(current, next)
			b.pending.Push(next)
		}
	}

	if b.pending.Empty() {
		return b.exhausted()
	}
	return b.proceed()
}

// RunToCompletion steps until Found or Exhausted.
func (b *BFS) RunToCompletion() StepResult {
	return run(b)
}
