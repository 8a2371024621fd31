package domain

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Search is a point-in-time view of a search session.
type Search struct {
	ID       uuid.UUID       `json:"id"`
	MazeID   uuid.UUID       `json:"mazeID"`
	Finder   string          `json:"finder"`
	Status   string          `json:"status"`
	Outcome  string          `json:"outcome,omitempty"`
	Current  maze.Position   `json:"current"`
	Explored int             `json:"explored"`
	Path     []maze.Position `json:"path,omitempty"`
}

// Score is one member of a sorted set with its score.
type Score struct {
	Member string
	Value  float64
}

// BoardEntry is one finished search on a maze leaderboard. Fewer explored
// cells rank higher.
type BoardEntry struct {
	Rank     int       `json:"rank"`
	SearchID uuid.UUID `json:"searchID"`
	Explored int       `json:"explored"`
}
