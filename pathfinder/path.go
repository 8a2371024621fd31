package pathfinder

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"gopkg.in/karalabe/cookiejar.v2/collections/stack"
)

// reconstructPath walks the predecessor chain back from goal and returns the
// route start first. A chain that does not lead back to start means the
// search bookkeeping is corrupt, which is a programming error.
func reconstructPath(pred map[maze.Position]maze.Position, start, goal maze.Position) []maze.Position {
	builder := stack.New()
	for cur := goal; cur != start; {
		builder.Push(cur)
		prev, ok := pred[cur]
		if !ok {
			panic(fmt.Sprintf("pathfinder: no predecessor recorded for %v", cur))
		}
		cur = prev
	}
	builder.Push(start)

	path := make([]maze.Position, builder.Size())
	for i := range path {
		path[i] = builder.Pop().(maze.Position)
	}
	return path
}
