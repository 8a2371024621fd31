package i

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	// If the maze already exists, it updates the record. Otherwise, it creates a new one.
	Save(m *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns dmn.ErrMazeNotFound if there is no such maze.
	ByID(id uuid.UUID) (*dmn.Maze, error)
}
