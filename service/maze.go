package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMazeWidth  = 21
	defaultMazeHeight = 21
	defaultMaxDim     = 101
	mazeLockKeyFmt    = "maze:%s:lock"
)

var (
	// ErrInvalidMaze wraps every rejection of a generate request.
	ErrInvalidMaze = errors.New("invalid maze request")
)

type MazeOptions struct {
	DefaultWidth  int
	DefaultHeight int
	// MaxDimension caps the width and height a request may ask for.
	MaxDimension int
	// Now returns the current time; used for timestamps and time-based seeds.
	Now func() time.Time
}

type MazeService struct {
	repo   i.MazeRepo
	locker i.Locker
	logger i.Logger
	opts   *MazeOptions
}

func NewMazeService(repo i.MazeRepo, locker i.Locker, logger i.Logger, opts *MazeOptions) (i.MazeService, error) {
	if repo == nil || locker == nil || logger == nil {
		return nil, errors.New("maze service: repo, locker and logger are required")
	}
	if opts == nil {
		opts = &MazeOptions{}
	}
	if opts.DefaultWidth <= 0 {
		opts.DefaultWidth = defaultMazeWidth
	}
	if opts.DefaultHeight <= 0 {
		opts.DefaultHeight = defaultMazeHeight
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDim
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &MazeService{
		repo:   repo,
		locker: locker,
		logger: logger,
		opts:   opts,
	}, nil
}

func (ms *MazeService) Generate(ctx context.Context, req i.GenerateRequest) (*dmn.Maze, error) {
	width, height := req.Width, req.Height
	if width == 0 {
		width = ms.opts.DefaultWidth
	}
	if height == 0 {
		height = ms.opts.DefaultHeight
	}

	now := ms.opts.Now().UTC()
	m := &dmn.Maze{
		ID:            uuid.New(),
		Width:         width,
		Height:        height,
		ExtraPassages: req.ExtraPassages,
		CreatedBy:     req.CreatedBy,
		CreatedAt:     now,
	}
	if err := ms.carve(m, req.Algorithm, ms.seed(req.Seed)); err != nil {
		return nil, err
	}

	if err := ms.repo.Save(m); err != nil {
		ms.logger.Error(fmt.Sprintf("Saving maze %s: %s", m.ID, err))
		return nil, err
	}

	ms.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Algorithm=%s Seed=%d", m.ID, m.Width, m.Height, m.Algorithm, m.Seed))
	return m, nil
}

func (ms *MazeService) Regenerate(ctx context.Context, id uuid.UUID, algorithm string, seed *int64) (*dmn.Maze, error) {
	unlock, err := ms.locker.Lock(ctx, fmt.Sprintf(mazeLockKeyFmt, id))
	if err != nil {
		ms.logger.Error(fmt.Sprintf("obtaining maze lock: %s", err))
		return nil, err
	}
	defer unlock()

	m, err := ms.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	if err := ms.carve(m, algorithm, ms.seed(seed)); err != nil {
		return nil, err
	}
	if err := ms.repo.Save(m); err != nil {
		ms.logger.Error(fmt.Sprintf("Saving maze %s: %s", m.ID, err))
		return nil, err
	}

	ms.logger.Info(fmt.Sprintf("Regenerated maze: ID=%s Algorithm=%s Seed=%d", m.ID, m.Algorithm, m.Seed))
	return m, nil
}

func (ms *MazeService) ByID(id uuid.UUID) (*dmn.Maze, error) {
	return ms.repo.ByID(id)
}

// Grid loads the maze under its lock so it never observes a regeneration
// halfway through.
func (ms *MazeService) Grid(ctx context.Context, id uuid.UUID) (*maze.Grid, error) {
	unlock, err := ms.locker.Lock(ctx, fmt.Sprintf(mazeLockKeyFmt, id))
	if err != nil {
		ms.logger.Error(fmt.Sprintf("obtaining maze lock: %s", err))
		return nil, err
	}
	defer unlock()

	m, err := ms.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	g, err := m.Grid()
	if err != nil {
		ms.logger.Error(fmt.Sprintf("Stored maze %s is corrupt: %s", id, err))
		return nil, err
	}
	return g, nil
}

// carve generates into a fresh grid of m's size and copies the result into m.
func (ms *MazeService) carve(m *dmn.Maze, algorithm string, seed int64) error {
	algo, err := generator.ParseAlgorithm(algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	if m.Width > ms.opts.MaxDimension || m.Height > ms.opts.MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds the %d cell limit", ErrInvalidMaze, m.Width, m.Height, ms.opts.MaxDimension)
	}
	g, err := maze.NewGrid(m.Width, m.Height)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	var opts []generator.Option
	if m.ExtraPassages {
		opts = append(opts, generator.WithExtraPassages(true))
	}
	used, err := generator.Generate(g, algo, seed, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	m.Algorithm = used.String()
	m.Seed = seed
	m.Rows = g.Rows()
	m.UpdatedAt = ms.opts.Now().UTC()
	return nil
}

func (ms *MazeService) seed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return ms.opts.Now().UnixNano()
}
