// Package pathfinder provides step-wise breadth-first and depth-first search
// over a maze.Grid.
//
// A search runs from the grid's start (1,1) to its end (width-2,height-2).
// Each call to Step performs exactly one frontier removal, so a caller can
// interleave steps with rendering on any cadence, or call RunToCompletion to
// drive the search in a tight loop.
//
// State machine:
//
//	Idle ──Step──▶ Running ──Step──▶ Found | Exhausted
//	  ▲                                   │
//	  └──────────────── Reset ◀───────────┘
//
// Calling Step on a finished search is a no-op that returns the same
// terminal result. Exhausted is an ordinary outcome: it means the goal is
// unreachable from the start.
package pathfinder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	ErrNilGrid     = errors.New("pathfinder: grid is nil")
	ErrUnknownKind = errors.New("pathfinder: unknown finder kind")
)

// Status is the lifecycle state of a search.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusFound
	StatusExhausted
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether no further Step can change the search.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusExhausted
}

// Outcome tells what a single Step achieved.
type Outcome int

const (
	Continue Outcome = iota
	Found
	Exhausted
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// StepResult is returned by every Step.
//   - Current is the cell just removed from the frontier.
//   - Path is set only when Outcome is Found, start first.
type StepResult struct {
	Outcome Outcome
	Current maze.Position
	Path    []maze.Position
}

// PathFinder is the step-wise search contract shared by BFS and DFS.
type PathFinder interface {
	// Reset clears visited marks, frontier, predecessors, counter and path.
	Reset()
	// Step advances the search by one frontier removal.
	Step() StepResult
	// RunToCompletion calls Step until the search is Found or Exhausted.
	RunToCompletion() StepResult
	// CurrentExploringPosition is the last cell removed from the frontier,
	// or the start before the first step.
	CurrentExploringPosition() maze.Position
	// ExploredCount is the number of frontier removals so far.
	ExploredCount() int
	// FinalPath is the start-to-end route, empty until Found.
	FinalPath() []maze.Position
	Status() Status
}

// Kind names a PathFinder implementation.
type Kind int

const (
	KindBFS Kind = iota + 1
	KindDFS
)

// String returns "bfs" or "dfs".
func (k Kind) String() string {
	switch k {
	case KindBFS:
		return "bfs"
	case KindDFS:
		return "dfs"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "bfs" or "dfs" (any case) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return KindBFS, nil
	case "dfs":
		return KindDFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds the PathFinder of the given kind over g.
func New(kind Kind, g *maze.Grid, opts ...Option) (PathFinder, error) {
	switch kind {
	case KindBFS:
		return NewBFS(g, opts...)
	case KindDFS:
		return NewDFS(g, opts...)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Options holds the observation hooks of a search.
type Options struct {
	// OnExplore runs after a cell is removed from the frontier.
	OnExplore func(pos maze.Position, explored int)
	// OnDiscover runs when a cell is first reached, with its predecessor.
	OnDiscover func(from, to maze.Position)
	// OnFound runs once when the goal is reached.
	OnFound func(path []maze.Position)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExplore:  func(maze.Position, int) {},
		OnDiscover: func(_, _ maze.Position) {},
		OnFound:    func([]maze.Position) {},
	}
}

// WithOnExplore registers a hook run on every frontier removal.
func WithOnExplore(fn func(pos maze.Position, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithOnDiscover registers a hook run whenever a new cell is discovered.
func WithOnDiscover(fn func(from, to maze.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnFound registers a hook run when the goal is reached.
func WithOnFound(fn func(path []maze.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFound = fn
		}
	}
}

// Stepper is anything that advances one step at a time. Every PathFinder is
// a Stepper.
type Stepper interface {
	Step() StepResult
}

// run drives s until a terminal outcome.
func run(s Stepper) StepResult {
	for {
		r := s.Step()
		if r.Outcome != Continue {
			return r
		}
	}
}
