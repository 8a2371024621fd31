/*
Package maze provides the rectangular grid every generator and path finder
operates on.

A Grid is a width × height array of cells, each either a wall or a passage.
By convention the search starts at (1,1) and the goal is (width-2, height-2);
generators keep the outer ring as wall so the convention always holds.

Accessing a cell outside the grid is a programming error and panics.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinDimension is the smallest width or height that still has an interior.
	MinDimension = 3

	wallGlyph    = '#'
	passageGlyph = '.'
	startGlyph   = 'S'
	endGlyph     = 'E'
)

var (
	// Directions lists the four cardinal offsets in search order:
	// up, right, down, left.
	Directions = [4]Position{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
	}

	ErrInvalidDimensions = errors.New("maze: width and height must be at least 3")
	ErrNonRectangular    = errors.New("maze: all rows must have the same length")
	ErrUnknownGlyph      = errors.New("maze: unknown cell glyph")
)

// Grid is a rectangular maze of cells stored row by row.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of the given size with every cell set to wall.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[y*width+x]
			c.X, c.Y = x, y
		}
	}
	g.Reset()
	return g, nil
}

// ParseRows builds a grid from its textual rows: '#' is a wall, while '.',
// 'S' and 'E' are passages. An 'E' marks the end cell.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < width; x++ {
			c := g.At(x, y)
			switch row[x] {
			case wallGlyph:
				c.Wall = true
			case passageGlyph, startGlyph:
				c.Wall = false
			case endGlyph:
				c.Wall = false
				c.End = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, row[x], x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the conventional start position (1,1).
func (g *Grid) Start() Position { return Position{X: 1, Y: 1} }

// End returns the conventional goal position (width-2, height-2).
func (g *Grid) End() Position { return Position{X: g.width - 2, Y: g.height - 2} }

// IsInBounds reports whether (x,y) lies inside the grid.
func (g *Grid) IsInBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains is IsInBounds for a Position.
func (g *Grid) Contains(p Position) bool {
	return g.IsInBounds(p.X, p.Y)
}

// At returns the cell at (x,y). It panics when (x,y) is out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.IsInBounds(x, y) {
		panic(fmt.Sprintf("maze: cell (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return &g.cells[y*g.width+x]
}

// Cell returns the cell at p. It panics when p is out of bounds.
func (g *Grid) Cell(p Position) *Cell {
	return g.At(p.X, p.Y)
}

// IsWall reports whether the cell at p is a wall.
func (g *Grid) IsWall(p Position) bool {
	return g.Cell(p).Wall
}

// SetWall sets the wall state of the cell at p.
func (g *Grid) SetWall(p Position, wall bool) {
	g.Cell(p).Wall = wall
}

// Reset turns every cell back into an unvisited wall and clears the end mark.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Wall = true
		g.cells[i].Visited = false
		g.cells[i].End = false
	}
}

// Rows renders the grid one string per row, using the glyphs ParseRows reads.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	start := g.Start()
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			c := g.At(x, y)
			switch {
			case c.Wall:
				b.WriteByte(wallGlyph)
			case c.End:
				b.WriteByte(endGlyph)
			case x == start.X && y == start.Y:
				b.WriteByte(startGlyph)
			default:
				b.WriteByte(passageGlyph)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns the ASCII rendering of the grid.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}
