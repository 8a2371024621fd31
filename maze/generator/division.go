package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// minDivisionSpan is the smallest region extent (x2-x1 or y2-y1) that still
// gets divided.
const minDivisionSpan = 4

// carveDivision opens the whole interior and then walls it back up.
func (gen *generator) carveDivision() {
	w, h := gen.grid.Width(), gen.grid.Height()
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gen.open(maze.Position{X: x, Y: y})
		}
	}
	gen.divide(1, 1, w-2, h-2)
}

// divide splits the region [x1,x2]×[y1,y2] with a wall on an even line and a
// gap on an odd cell, then recurses into both halves. Region corners are
// always odd, so rooms are never walled over.
func (gen *generator) divide(x1, y1, x2, y2 int) {
	spanX, spanY := x2-x1, y2-y1
	if spanX < minDivisionSpan || spanY < minDivisionSpan {
		return
	}

	horizontal := spanY > spanX
	if spanX == spanY {
		horizontal = gen.rng.Intn(2) == 0
	}

	if horizontal {
		wallY := y1 + 1 + 2*gen.rng.Intn(spanY/2)
		line := make([]maze.Position, 0, spanX+1)
		gaps := make([]maze.Position, 0, spanX/2+1)
		for x := x1; x <= x2; x++ {
			p := maze.Position{X: x, Y: wallY}
			line = append(line, p)
			if (x-x1)%2 == 0 {
				gaps = append(gaps, p)
			}
		}
		gen.raiseWall(line, gaps)
		gen.divide(x1, y1, x2, wallY-1)
		gen.divide(x1, wallY+1, x2, y2)
		return
	}

	wallX := x1 + 1 + 2*gen.rng.Intn(spanX/2)
	line := make([]maze.Position, 0, spanY+1)
	gaps := make([]maze.Position, 0, spanY/2+1)
	for y := y1; y <= y2; y++ {
		p := maze.Position{X: wallX, Y: y}
		line = append(line, p)
		if (y-y1)%2 == 0 {
			gaps = append(gaps, p)
		}
	}
	gen.raiseWall(line, gaps)
	gen.divide(x1, y1, wallX-1, y2)
	gen.divide(wallX+1, y1, x2, y2)
}

// raiseWall walls off line, except that cells in the start or end corner are
// forced open. When no corner cell was hit, exactly one random gap is opened.
// With ExtraPassages a second gap may be opened half of the time.
func (gen *generator) raiseWall(line, gaps []maze.Position) {
	forced := false
	for _, p := range line {
		if gen.protected(p) {
			gen.open(p)
			forced = true
			continue
		}
		gen.grid.SetWall(p, true)
	}

	if !forced {
		i := gen.rng.Intn(len(gaps))
		gen.open(gaps[i])
		gaps = append(gaps[:i:i], gaps[i+1:]...)
	}

	if gen.opts.ExtraPassages && len(gaps) > 0 && gen.rng.Intn(2) == 0 {
		gen.open(gaps[gen.rng.Intn(len(gaps))])
	}
}

// protected reports whether p lies in the 2×2 interior corner around the
// start or the end.
func (gen *generator) protected(p maze.Position) bool {
	w, h := gen.grid.Width(), gen.grid.Height()
	nearStart := p.X <= 2 && p.Y <= 2
	nearEnd := p.X >= w-3 && p.Y >= h-3
	return nearStart || nearEnd
}
