package pathfinder

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"gopkg.in/karalabe/cookiejar.v2/collections/stack"
)

// DFS searches with a LIFO frontier that holds the currently open corridor.
// The top is peeked while it can still be extended and popped only when it
// is a dead end. There is no shortest-path guarantee.
type DFS struct {
	search
	corridor *stack.Stack
}

var _ PathFinder = (*DFS)(nil)

// NewDFS returns an idle depth-first search over g.
func NewDFS(g *maze.Grid, opts ...Option) (*DFS, error) {
	s, err := newSearch(g, opts)
	if err != nil {
		return nil, err
	}
	return &DFS{search: s, corridor: stack.New()}, nil
}

// Reset returns the search to Idle.
func (d *DFS) Reset() {
	d.search.reset()
	d.corridor.Reset()
}

// Step examines the top of the stack and either advances into its first
// open neighbor or backtracks.
func (d *DFS) Step() StepResult {
	if r, done := d.terminal(); done {
		return r
	}
	if d.status == StatusIdle {
		d.begin()
		d.corridor.Push(d.start)
	}

	current := d.corridor.Top().(maze.Position)
	d.explore(current)
	if current == d.end {
		return d.found()
	}

	advanced := false
	for _, dir := range maze.Directions {
		next := current.Add(dir)
		if d.open(next) {
			d.discover(current, next)
			d.corridor.Push(next)
			advanced = true
			break
		}
	}
	if !advanced {
		d.corridor.Pop()
	}

	if d.corridor.Empty() {
		return d.exhausted()
	}
	return d.proceed()
}

// RunToCompletion steps until Found or Exhausted.
func (d *DFS) RunToCompletion() StepResult {
	return run(d)
}
