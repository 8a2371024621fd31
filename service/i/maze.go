package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes a maze to generate. Zero width or height means
// the configured default; a nil Seed means a time-based one.
type GenerateRequest struct {
	Width         int
	Height        int
	Algorithm     string
	Seed          *int64
	ExtraPassages bool
	CreatedBy     uuid.UUID
}

// MazeService generates and serves stored mazes.
type MazeService interface {
	Generate(ctx context.Context, req GenerateRequest) (*dmn.Maze, error)
	// Regenerate resets the maze and carves it again in place.
	Regenerate(ctx context.Context, id uuid.UUID, algorithm string, seed *int64) (*dmn.Maze, error)
	ByID(id uuid.UUID) (*dmn.Maze, error)
	// Grid returns a fresh grid built from the stored maze.
	Grid(ctx context.Context, id uuid.UUID) (*maze.Grid, error)
}
