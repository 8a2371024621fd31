package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// dfsFrame is one level of the backtracker: a room and the order in which
// its neighbors will be tried.
type dfsFrame struct {
	pos  maze.Position
	dirs [4]maze.Position
	next int
}

// carveDFS is a randomized depth-first backtracker. It keeps its own frame
// stack so large grids cannot overflow the goroutine stack. Long, winding
// corridors with few branches.
func (gen *generator) carveDFS(start maze.Position) {
	gen.visit(start)
	stack := []dfsFrame{{pos: start, dirs: gen.shuffledDirections()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++
		from := top.pos
		next := from.Add(d.Scale(2))
		if !gen.interior(next) || gen.grid.Cell(next).Visited {
			continue
		}

		gen.open(from.Add(d))
		gen.visit(next)
		stack = append(stack, dfsFrame{pos: next, dirs: gen.shuffledDirections()})
	}
}

// visit opens p and marks it visited.
func (gen *generator) visit(p maze.Position) {
	c := gen.grid.Cell(p)
	c.Wall = false
	c.Visited = true
}
