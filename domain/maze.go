// Package domain holds the records the services persist and return.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound   = errors.New("maze not found")
	ErrSearchNotFound = errors.New("search not found")
)

// Maze is a generated maze as it is stored. The grid itself is kept as its
// ASCII rows so a document can be read by eye.
type Maze struct {
	ID            uuid.UUID `bson:"_id" json:"id"`
	Width         int       `bson:"width" json:"width"`
	Height        int       `bson:"height" json:"height"`
	Algorithm     string    `bson:"algorithm" json:"algorithm"`
	Seed          int64     `bson:"seed" json:"seed"`
	ExtraPassages bool      `bson:"extraPassages" json:"extraPassages"`
	Rows          []string  `bson:"rows" json:"rows"`
	CreatedBy     uuid.UUID `bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Grid rebuilds a fresh grid from the stored rows.
func (m *Maze) Grid() (*maze.Grid, error) {
	return maze.ParseRows(m.Rows)
}
