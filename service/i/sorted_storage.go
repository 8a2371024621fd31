package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// SortedStore keeps scored members per key, lowest score first.
type SortedStore interface {
	// Add stores member under key with the given score, replacing any
	// previous score of that member.
	Add(ctx context.Context, key string, score float64, member string) error

	// Tops returns up to amount members with the lowest scores.
	Tops(ctx context.Context, key string, amount int64) ([]dmn.Score, error)

	// Count returns the number of members under key.
	Count(ctx context.Context, key string) int64
}
