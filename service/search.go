package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/pathfinder"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultBoardPrefix = "board"
	defaultBoardLimit  = 10
	boardKeyFmt        = "%s:%s:%s"
	recordTimeout      = time.Second
	defaultSessionTTL  = 30 * time.Minute
)

var (
	// ErrInvalidSearch wraps every rejection of a search request.
	ErrInvalidSearch = errors.New("invalid search request")
)

type SearchOptions struct {
	// StepDelay is the pause between streamed steps at speed 1.
	StepDelay time.Duration
	// BoardPrefix namespaces leaderboard keys.
	BoardPrefix string
	// SessionTTL is how long a search survives without being touched.
	SessionTTL time.Duration
	Now        func() time.Time
}

// session is one live search. mu serializes every call on finder.
type session struct {
	mu     sync.Mutex
	id     uuid.UUID
	mazeID uuid.UUID
	kind   pathfinder.Kind
	finder pathfinder.PathFinder
	last   pathfinder.StepResult
	// stepped is false until the first Step after creation or Reset.
	stepped bool
	// touched holds the UnixNano of the last call on this search.
	touched atomic.Int64
}

type SearchService struct {
	mazes  i.MazeService
	board  i.SortedStore
	logger i.Logger
	opts   *SearchOptions

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewSearchService(mazes i.MazeService, board i.SortedStore, logger i.Logger, opts *SearchOptions) (i.SearchService, error) {
	if mazes == nil || board == nil || logger == nil {
		return nil, errors.New("search service: mazes, board and logger are required")
	}
	if opts == nil {
		opts = &SearchOptions{StepDelay: pathfinder.DefaultStepDelay}
	}
	if opts.StepDelay < 0 {
		opts.StepDelay = pathfinder.DefaultStepDelay
	}
	if opts.BoardPrefix == "" {
		opts.BoardPrefix = defaultBoardPrefix
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SearchService{
		mazes:    mazes,
		board:    board,
		logger:   logger,
		opts:     opts,
		sessions: make(map[uuid.UUID]*session),
	}, nil
}

func (ss *SearchService) Start(ctx context.Context, mazeID uuid.UUID, finder string) (*dmn.Search, error) {
	kind, err := pathfinder.ParseKind(finder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSearch, err)
	}

	g, err := ss.mazes.Grid(ctx, mazeID)
	if err != nil {
		return nil, err
	}

	f, err := pathfinder.New(kind, g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSearch, err)
	}

	s := &session{
		id:     uuid.New(),
		mazeID: mazeID,
		kind:   kind,
		finder: f,
	}

	s.touched.Store(ss.opts.Now().UnixNano())
	snap := s.snapshot()

	ss.mu.Lock()
	ss.evictExpired()
	ss.sessions[s.id] = s
	ss.mu.Unlock()

	ss.logger.Info(fmt.Sprintf("Search started: ID=%s Maze=%s Finder=%s", s.id, mazeID, kind))
	return snap, nil
}

func (ss *SearchService) Snapshot(id uuid.UUID) (*dmn.Search, error) {
	s, err := ss.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

func (ss *SearchService) Step(ctx context.Context, id uuid.UUID) (*dmn.Search, error) {
	s, err := ss.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ss.advance(ctx, s, s.finder.Step)
	return s.snapshot(), nil
}

func (ss *SearchService) Run(ctx context.Context, id uuid.UUID) (*dmn.Search, error) {
	s, err := ss.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ss.advance(ctx, s, s.finder.RunToCompletion)
	return s.snapshot(), nil
}

func (ss *SearchService) Reset(id uuid.UUID) (*dmn.Search, error) {
	s, err := ss.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.finder.Reset()
	s.last = pathfinder.StepResult{}
	s.stepped = false
	return s.snapshot(), nil
}

func (ss *SearchService) Stream(ctx context.Context, id uuid.UUID, speed float64, onStep func(*dmn.Search) error) (*dmn.Search, error) {
	s, err := ss.session(id)
	if err != nil {
		return nil, err
	}

	driver := pathfinder.NewDriver(speed)
	driver.Interval = ss.opts.StepDelay
	_, err = driver.Run(ctx, &sessionStepper{ctx: ctx, ss: ss, s: s}, func(pathfinder.StepResult) error {
		if onStep == nil {
			return nil
		}
		s.mu.Lock()
		snap := s.snapshot()
		s.mu.Unlock()
		return onStep(snap)
	})
	if errors.Is(err, context.DeadlineExceeded) {
		ss.logger.Warning(fmt.Sprintf("Search stream %s timed out", id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), err
}

// sessionStepper steps a session under its lock so that streaming does not
// block other calls on the same search between ticks.
type sessionStepper struct {
	ctx context.Context
	ss  *SearchService
	s   *session
}

func (st *sessionStepper) Step() pathfinder.StepResult {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.touched.Store(st.ss.opts.Now().UnixNano())
	return st.ss.advance(st.ctx, st.s, st.s.finder.Step)
}

func (ss *SearchService) Delete(id uuid.UUID) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if _, ok := ss.sessions[id]; !ok {
		return dmn.ErrSearchNotFound
	}
	delete(ss.sessions, id)
	ss.logger.Info(fmt.Sprintf("Search deleted: ID=%s", id))
	return nil
}

func (ss *SearchService) Leaderboard(ctx context.Context, mazeID uuid.UUID, finder string, limit int64) ([]dmn.BoardEntry, int64, error) {
	kind, err := pathfinder.ParseKind(finder)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidSearch, err)
	}
	if limit <= 0 {
		limit = defaultBoardLimit
	}

	key := ss.boardKey(mazeID, kind)
	scores, err := ss.board.Tops(ctx, key, limit)
	if err != nil {
		ss.logger.Error(fmt.Sprintf("Reading leaderboard %s: %s", key, err))
		return nil, 0, err
	}

	entries := make([]dmn.BoardEntry, 0, len(scores))
	for _, sc := range scores {
		searchID, err := uuid.Parse(sc.Member)
		if err != nil {
			ss.logger.Warning(fmt.Sprintf("Non-UUID value in leaderboard: %s", sc.Member))
			continue
		}
		entries = append(entries, dmn.BoardEntry{
			Rank:     len(entries) + 1,
			SearchID: searchID,
			Explored: int(sc.Value),
		})
	}
	return entries, ss.board.Count(ctx, key), nil
}

// session looks up a live search and marks it as used. An expired search is
// dropped and reported as not found.
func (ss *SearchService) session(id uuid.UUID) (*session, error) {
	now := ss.opts.Now()

	ss.mu.RLock()
	s, ok := ss.sessions[id]
	ss.mu.RUnlock()
	if !ok {
		return nil, dmn.ErrSearchNotFound
	}

	if ss.expired(s, now) {
		ss.mu.Lock()
		if ss.sessions[id] == s {
			delete(ss.sessions, id)
		}
		ss.mu.Unlock()
		ss.logger.Info(fmt.Sprintf("Search expired: ID=%s", id))
		return nil, dmn.ErrSearchNotFound
	}
	s.touched.Store(now.UnixNano())
	return s, nil
}

func (ss *SearchService) expired(s *session, now time.Time) bool {
	return now.Sub(time.Unix(0, s.touched.Load())) > ss.opts.SessionTTL
}

// evictExpired drops every search idle for longer than SessionTTL. Callers
// hold ss.mu for writing.
func (ss *SearchService) evictExpired() {
	now := ss.opts.Now()
	for id, s := range ss.sessions {
		if ss.expired(s, now) {
			delete(ss.sessions, id)
			ss.logger.Info(fmt.Sprintf("Search expired: ID=%s", id))
		}
	}
}

// advance runs step on s and records the search on the leaderboard when
// this call is the one that found the goal. Callers hold s.mu.
func (ss *SearchService) advance(ctx context.Context, s *session, step func() pathfinder.StepResult) pathfinder.StepResult {
	wasTerminal := s.finder.Status().Terminal()
	s.last = step()
	s.stepped = true

	if wasTerminal {
		return s.last
	}
	switch s.last.Outcome {
	case pathfinder.Found:
		ss.record(ctx, s)
	case pathfinder.Exhausted:
		ss.logger.Warning(fmt.Sprintf("Search %s exhausted after %d cells: maze %s is disconnected", s.id, s.finder.ExploredCount(), s.mazeID))
	}
	return s.last
}

func (ss *SearchService) record(ctx context.Context, s *session) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	key := ss.boardKey(s.mazeID, s.kind)
	explored := s.finder.ExploredCount()
	if err := ss.board.Add(ctx, key, float64(explored), s.id.String()); err != nil {
		ss.logger.Error(fmt.Sprintf("Recording search %s on %s: %s", s.id, key, err))
		return
	}
	ss.logger.Info(fmt.Sprintf("Search found: ID=%s Explored=%d PathLength=%d", s.id, explored, len(s.finder.FinalPath())))
}

func (ss *SearchService) boardKey(mazeID uuid.UUID, kind pathfinder.Kind) string {
	return fmt.Sprintf(boardKeyFmt, ss.opts.BoardPrefix, mazeID, kind)
}

// snapshot copies the observable state of s. Callers hold s.mu.
func (s *session) snapshot() *dmn.Search {
	out := &dmn.Search{
		ID:       s.id,
		MazeID:   s.mazeID,
		Finder:   s.kind.String(),
		Status:   s.finder.Status().String(),
		Current:  s.finder.CurrentExploringPosition(),
		Explored: s.finder.ExploredCount(),
		Path:     s.finder.FinalPath(),
	}
	if s.stepped {
		out.Outcome = s.last.Outcome.String()
	}
	return out
}
