package assist

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

var errStoreDown = errors.New("store down")

// memStore is an in-memory JobStore recording every update it receives.
type memStore struct {
	mu      sync.Mutex
	jobs    map[uint]*models.Job
	updates []dtos.JobUpdateRequest
	fail    error
}

func newMemStore(jobs ...*models.Job) *memStore {
	s := &memStore{jobs: make(map[uint]*models.Job)}
	for _, j := range jobs {
		s.jobs[j.ID] = j
	}
	return s
}

func (s *memStore) GetJob(_ context.Context, userID string, jobID uint) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, errors.New("job not found")
	}
	cp := *j
	cp.Tags = slices.Clone(j.Tags)
	return &cp, nil
}

func (s *memStore) UpdateJob(_ context.Context, userID string, jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, *req)
	if s.fail != nil {
		return nil, s.fail
	}
	j, ok := s.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, errors.New("job not found")
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Tags != nil {
		j.Tags = slices.Clone(*req.Tags)
	}
	cp := *j
	return &cp, nil
}

func (s *memStore) setFail(err error) {
	s.mu.Lock()
	s.fail = err
	s.mu.Unlock()
}

func (s *memStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

func (s *memStore) lastUpdate() dtos.JobUpdateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates[len(s.updates)-1]
}

// scriptedGen replies with a fixed answer and records the prompts it saw.
type scriptedGen struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (g *scriptedGen) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func (g *scriptedGen) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// blockingGen parks every call until release is closed or ctx ends.
type blockingGen struct {
	started chan struct{}
	release chan struct{}
	reply   string
	calls   int
	mu      sync.Mutex
}

func newBlockingGen(reply string) *blockingGen {
	return &blockingGen{started: make(chan struct{}, 8), release: make(chan struct{}), reply: reply}
}

func (g *blockingGen) Generate(ctx context.Context, _ string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	g.started <- struct{}{}
	select {
	case <-g.release:
		return g.reply, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *blockingGen) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type recordingClipboard struct {
	text string
	err  error
}

func (c *recordingClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}
