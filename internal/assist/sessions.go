package assist

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Options struct {
	// GenerationTimeout bounds each generation call. Zero means no timeout.
	GenerationTimeout time.Duration
	// TTL is how long a session may sit idle before the janitor closes it.
	TTL time.Duration
	Now func() time.Time
}

// Sessions tracks the editors currently in edit mode. Each open form
// instance gets its own session id, so two editors on the same job never
// share state.
type Sessions struct {
	mu    sync.Mutex
	items map[string]Session

	store JobStore
	gen   Generator
	opts  Options
}

func NewSessions(store JobStore, gen Generator, opts Options) *Sessions {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Sessions{
		items: make(map[string]Session),
		store: store,
		gen:   gen,
		opts:  opts,
	}
}

// OpenDescription enters edit mode on the job's description.
func (s *Sessions) OpenDescription(ctx context.Context, userID string, jobID uint) (*DescriptionEditor, error) {
	job, err := s.store.GetJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	d := newDescriptionEditor(uuid.NewString(), userID, job, s.store, s.gen, s.opts)
	s.add(d, &d.editor)
	return d, nil
}

// OpenTags enters edit mode on the job's tag list.
func (s *Sessions) OpenTags(ctx context.Context, userID string, jobID uint) (*TagEditor, error) {
	job, err := s.store.GetJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	t := newTagEditor(uuid.NewString(), userID, job, s.store, s.gen, s.opts)
	s.add(t, &t.editor)
	return t, nil
}

func (s *Sessions) add(sess Session, e *editor) {
	id := sess.ID()
	e.onClose = func() { s.remove(id) }

	s.mu.Lock()
	s.items[id] = sess
	s.mu.Unlock()

	log.Debug().Str("session", id).Str("kind", sess.Kind()).Uint("job_id", sess.JobID()).Msg("edit session opened")
}

func (s *Sessions) remove(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Get returns the session with id if it belongs to userID.
func (s *Sessions) Get(userID, id string) (Session, error) {
	s.mu.Lock()
	sess, ok := s.items[id]
	s.mu.Unlock()
	if !ok || sess.UserID() != userID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Sessions) Description(userID, id string) (*DescriptionEditor, error) {
	sess, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	d, ok := sess.(*DescriptionEditor)
	if !ok {
		return nil, ErrWrongSessionKind
	}
	return d, nil
}

func (s *Sessions) Tags(userID, id string) (*TagEditor, error) {
	sess, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	t, ok := sess.(*TagEditor)
	if !ok {
		return nil, ErrWrongSessionKind
	}
	return t, nil
}

// Cancel leaves edit mode without saving.
func (s *Sessions) Cancel(userID, id string) error {
	sess, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	sess.Close()
	return nil
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep closes every session idle for longer than the TTL and returns how
// many were closed.
func (s *Sessions) Sweep() int {
	if s.opts.TTL <= 0 {
		return 0
	}
	cutoff := s.opts.Now().Add(-s.opts.TTL)

	s.mu.Lock()
	var stale []Session
	for _, sess := range s.items {
		if sess.lastActive().Before(cutoff) {
			stale = append(stale, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Close()
	}
	return len(stale)
}

// StartJanitor sweeps idle sessions every interval until ctx is done.
func (s *Sessions) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.opts.TTL <= 0 || interval <= 0 {
		log.Warn().Msg("edit session janitor disabled (no TTL)")
		return
	}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Info().Int("closed", n).Msg("expired idle edit sessions")
				}
			}
		}
	}()
}

// CloseAll closes every open session, cancelling in-flight generations.
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	all := make([]Session, 0, len(s.items))
	for _, sess := range s.items {
		all = append(all, sess)
	}
	s.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
}
