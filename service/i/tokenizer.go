package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding tokens. Player
// tokens are issued by a separate identity service; this API only decodes
// them, and Generate serves tooling and tests that mint compatible tokens.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
