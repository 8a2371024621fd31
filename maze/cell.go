package maze

import "fmt"

// Position identifies a cell by its column (X) and row (Y).
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Add returns the position shifted by the given delta.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Scale multiplies both coordinates by k.
func (p Position) Scale(k int) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell represents a single cell in a maze grid.
// A cell is either a wall or a passage.
type Cell struct {
	X       int  // Column of the cell.
	Y       int  // Row of the cell.
	Wall    bool // Wall reports whether the cell is impassable.
	Visited bool // Visited is bookkeeping for generators only.
	End     bool // End marks the goal cell.
}

// Pos returns the coordinates of the cell.
func (c *Cell) Pos() Position {
	return Position{X: c.X, Y: c.Y}
}
