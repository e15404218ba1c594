package assist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

// Generator returns the raw text reply of a text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// JobStore is the persistence API the editors load from and commit to.
// Lookups and updates are scoped to the job owner.
type JobStore interface {
	GetJob(ctx context.Context, userID string, jobID uint) (*models.Job, error)
	UpdateJob(ctx context.Context, userID string, jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error)
}

const (
	KindDescription = "description"
	KindTags        = "tags"
)

// State is a point-in-time copy of an editor's buffers.
type State struct {
	ID         string
	Kind       string
	JobID      uint
	Editing    bool
	Generating bool
	Suggestion string
	Draft      string
	Tags       []string
}

// Session is an editor in edit mode, owned by one user.
type Session interface {
	ID() string
	Kind() string
	UserID() string
	JobID() uint
	State() State
	Close()
	lastActive() time.Time
}

// editor holds the state shared by both form editors: the edit-mode flag,
// the in-progress flags and the lifetime that bounds in-flight generations.
type editor struct {
	mu sync.Mutex

	id     string
	kind   string
	userID string
	jobID  uint

	store   JobStore
	gen     Generator
	timeout time.Duration
	now     func() time.Time

	lifetime context.Context
	end      context.CancelFunc
	onClose  func()

	editing    bool
	generating bool
	saving     bool
	touched    time.Time
}

func (e *editor) init(id, kind, userID string, jobID uint, store JobStore, gen Generator, opts Options) {
	e.lifetime, e.end = context.WithCancel(context.Background())
	e.now = opts.Now
	if e.now == nil {
		e.now = time.Now
	}
	e.id = id
	e.kind = kind
	e.userID = userID
	e.jobID = jobID
	e.store = store
	e.gen = gen
	e.timeout = opts.GenerationTimeout
	e.editing = true
	e.touched = e.now()
}

func (e *editor) ID() string     { return e.id }
func (e *editor) Kind() string   { return e.kind }
func (e *editor) UserID() string { return e.userID }
func (e *editor) JobID() uint    { return e.jobID }

func (e *editor) lastActive() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.touched
}

// Close leaves edit mode, discards the draft and cancels any in-flight
// generation. It is safe to call more than once.
func (e *editor) Close() {
	e.mu.Lock()
	wasEditing := e.editing
	e.editing = false
	e.mu.Unlock()

	e.end()
	if wasEditing && e.onClose != nil {
		e.onClose()
	}
}

// startGeneration sets the in-progress flag. Callers must hold e.mu.
func (e *editor) startGeneration() error {
	if !e.editing {
		return ErrSessionClosed
	}
	if e.generating {
		return ErrGenerationInProgress
	}
	e.generating = true
	e.touched = e.now()
	return nil
}

// generate calls the generator with a context that ends when the request
// ends, the editor closes or the configured timeout elapses.
func (e *editor) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(e.lifetime, cancel)
	defer stop()

	if e.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, e.timeout)
		defer cancelTimeout()
	}

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return raw, nil
}

// finishGeneration clears the in-progress flag and reports whether the
// result may still be applied. Callers must hold e.mu.
func (e *editor) finishGeneration() error {
	e.generating = false
	e.touched = e.now()
	if !e.editing {
		return ErrSessionClosed
	}
	return nil
}

// startSave marks a commit in flight. Callers must hold e.mu.
func (e *editor) startSave() error {
	if !e.editing {
		return ErrSessionClosed
	}
	if e.saving {
		return ErrSaveInProgress
	}
	e.saving = true
	e.touched = e.now()
	return nil
}

// commit submits req to the store. On success the editor leaves edit mode;
// on failure it stays open and the draft is untouched.
func (e *editor) commit(ctx context.Context, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := e.store.UpdateJob(ctx, e.userID, e.jobID, req)

	e.mu.Lock()
	e.saving = false
	e.touched = e.now()
	e.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}
	e.Close()
	return job, nil
}
