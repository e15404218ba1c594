package assist

import (
	"context"
	"strings"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

// DescriptionEditor is the edit buffer of a job description. Generated text
// lands in a suggestion buffer that is never merged into the draft; the
// user copies it or edits the draft by hand.
type DescriptionEditor struct {
	editor

	draft      string
	suggestion string
}

func newDescriptionEditor(id, userID string, job *models.Job, store JobStore, gen Generator, opts Options) *DescriptionEditor {
	d := &DescriptionEditor{draft: job.Description}
	d.init(id, KindDescription, userID, job.ID, store, gen, opts)
	return d
}

// Generate asks for a description of role, mentioning skills when set, and
// stores the normalized reply as the suggestion. A trigger while a previous
// generation is still running is rejected without calling the generator.
func (d *DescriptionEditor) Generate(ctx context.Context, role, skills string) (string, error) {
	d.mu.Lock()
	if err := d.startGeneration(); err != nil {
		d.mu.Unlock()
		return "", err
	}
	d.mu.Unlock()

	raw, genErr := d.generate(ctx, DescriptionPrompt(role, skills))

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.finishGeneration(); err != nil {
		return "", err
	}
	if genErr != nil {
		return "", genErr
	}
	d.suggestion = NormalizeDescription(raw)
	return d.suggestion, nil
}

// SetDraft replaces the form-bound description draft.
func (d *DescriptionEditor) SetDraft(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.editing {
		return ErrSessionClosed
	}
	d.draft = text
	d.touched = d.now()
	return nil
}

func (d *DescriptionEditor) Draft() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

func (d *DescriptionEditor) Suggestion() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suggestion
}

// CopySuggestion writes the suggestion to cb and returns it.
func (d *DescriptionEditor) CopySuggestion(cb Clipboard) (string, error) {
	d.mu.Lock()
	text, editing := d.suggestion, d.editing
	d.mu.Unlock()

	if !editing {
		return "", ErrSessionClosed
	}
	if text == "" {
		return "", ErrNothingToCopy
	}
	if err := cb.WriteText(text); err != nil {
		return "", err
	}
	return text, nil
}

// Save commits the draft as the job description.
func (d *DescriptionEditor) Save(ctx context.Context) (*models.Job, error) {
	d.mu.Lock()
	if strings.TrimSpace(d.draft) == "" && d.editing {
		d.mu.Unlock()
		return nil, ErrEmptyDescription
	}
	if err := d.startSave(); err != nil {
		d.mu.Unlock()
		return nil, err
	}
	draft := d.draft
	d.mu.Unlock()

	return d.commit(ctx, &dtos.JobUpdateRequest{Description: &draft})
}

func (d *DescriptionEditor) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return State{
		ID:         d.id,
		Kind:       d.kind,
		JobID:      d.jobID,
		Editing:    d.editing,
		Generating: d.generating,
		Suggestion: d.suggestion,
		Draft:      d.draft,
	}
}
