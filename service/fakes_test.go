package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type fakeRepo struct {
	mu     sync.Mutex
	mazes  map[uuid.UUID]dmn.Maze
	saves  int
	failOn error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{mazes: make(map[uuid.UUID]dmn.Maze)}
}

func (r *fakeRepo) Save(m *dmn.Maze) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != nil {
		return r.failOn
	}
	r.saves++
	cp := *m
	cp.Rows = append([]string(nil), m.Rows...)
	r.mazes[m.ID] = cp
	return nil
}

func (r *fakeRepo) ByID(id uuid.UUID) (*dmn.Maze, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.mazes[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return &m, nil
}

type fakeLocker struct {
	mu     sync.Mutex
	held   map[string]bool
	taken  []string
	failOn error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failOn != nil {
		return nil, l.failOn
	}
	if l.held[key] {
		return nil, fmt.Errorf("%s already held", key)
	}
	l.held[key] = true
	l.taken = append(l.taken, key)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}, nil
}

type fakeStore struct {
	mu     sync.Mutex
	sets   map[string]map[string]float64
	failOn error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sets: make(map[string]map[string]float64)}
}

func (s *fakeStore) Add(_ context.Context, key string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn != nil {
		return s.failOn
	}
	if s.sets[key] == nil {
		s.sets[key] = make(map[string]float64)
	}
	s.sets[key][member] = score
	return nil
}

func (s *fakeStore) Tops(_ context.Context, key string, amount int64) ([]dmn.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn != nil {
		return nil, s.failOn
	}
	var out []dmn.Score
	for m, v := range s.sets[key] {
		out = append(out, dmn.Score{Member: m, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Member < out[j].Member
	})
	if int64(len(out)) > amount {
		out = out[:amount]
	}
	return out, nil
}

func (s *fakeStore) Count(_ context.Context, key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.sets[key]))
}

type fakeLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *fakeLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *fakeLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *fakeLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

var errBoom = errors.New("boom")
