// Package mazeapi exposes maze generation and step-wise searches over HTTP.
package mazeapi

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Algorithm     string `json:"algorithm"`
	Seed          *int64 `json:"seed"`
	ExtraPassages bool   `json:"extraPassages"`
}

// RegenerateRequest represents a request to carve an existing maze again.
type RegenerateRequest struct {
	Algorithm string `json:"algorithm"`
	Seed      *int64 `json:"seed"`
}

// MazeResponse is a stored maze plus its printable rendering.
type MazeResponse struct {
	*dmn.Maze
	ASCII string `json:"ascii"`
}

// StartSearchRequest represents a request to start a search on a maze.
type StartSearchRequest struct {
	MazeID uuid.UUID `json:"mazeID" binding:"required"`
	Finder string    `json:"finder" binding:"required"`
}

// BoardResponse is a page of a maze leaderboard.
type BoardResponse struct {
	MazeID  uuid.UUID        `json:"mazeID"`
	Finder  string           `json:"finder"`
	Total   int64            `json:"total"`
	Entries []dmn.BoardEntry `json:"entries"`
}
