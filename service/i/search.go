package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// SearchService runs step-wise searches over stored mazes.
type SearchService interface {
	Start(ctx context.Context, mazeID uuid.UUID, finder string) (*dmn.Search, error)
	Snapshot(id uuid.UUID) (*dmn.Search, error)
	Step(ctx context.Context, id uuid.UUID) (*dmn.Search, error)
	Run(ctx context.Context, id uuid.UUID) (*dmn.Search, error)
	Reset(id uuid.UUID) (*dmn.Search, error)
	// Stream steps the search at the given speed and reports every step to
	// onStep until the search finishes, ctx is done or onStep fails.
	Stream(ctx context.Context, id uuid.UUID, speed float64, onStep func(*dmn.Search) error) (*dmn.Search, error)
	Delete(id uuid.UUID) error
	// Leaderboard lists the finished searches of a maze with the fewest
	// explored cells, along with how many were recorded.
	Leaderboard(ctx context.Context, mazeID uuid.UUID, finder string, limit int64) ([]dmn.BoardEntry, int64, error)
}
