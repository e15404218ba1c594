package assist

import (
	"context"
	"slices"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/rs/zerolog/log"
)

// TagEditor is the edit buffer of a job's tag list. Tags keep their order
// and duplicates are allowed.
type TagEditor struct {
	editor

	tags []string
}

func newTagEditor(id, userID string, job *models.Job, store JobStore, gen Generator, opts Options) *TagEditor {
	t := &TagEditor{tags: slices.Clone(job.Tags)}
	t.init(id, KindTags, userID, job.ID, store, gen, opts)
	return t
}

// Generate asks for keywords about topic and appends whatever array the
// generator returned to the draft. Output that is not an array leaves the
// draft unchanged; the reason is logged and returned in the result but is
// not an error. Only generation failures are returned as errors.
func (t *TagEditor) Generate(ctx context.Context, topic string) (TagParseResult, error) {
	t.mu.Lock()
	if err := t.startGeneration(); err != nil {
		t.mu.Unlock()
		return TagParseResult{}, err
	}
	t.mu.Unlock()

	raw, genErr := t.generate(ctx, TagsPrompt(topic))

	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.finishGeneration(); err != nil {
		return TagParseResult{}, err
	}
	if genErr != nil {
		return TagParseResult{}, genErr
	}

	res := ParseTags(raw)
	if !res.OK() {
		log.Warn().Err(res.Err).Str("session", t.id).Uint("job_id", t.jobID).Msg("ignoring generated tags")
		return res, nil
	}
	t.tags = append(t.tags, res.Tags...)
	return res, nil
}

// RemoveTag splices out the tag at index.
func (t *TagEditor) RemoveTag(index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.editing {
		return ErrSessionClosed
	}
	if index < 0 || index >= len(t.tags) {
		return ErrTagIndex
	}
	t.tags = slices.Delete(t.tags, index, index+1)
	t.touched = t.now()
	return nil
}

func (t *TagEditor) Tags() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.tags)
}

// Save commits the whole draft tag list.
func (t *TagEditor) Save(ctx context.Context) (*models.Job, error) {
	t.mu.Lock()
	if err := t.startSave(); err != nil {
		t.mu.Unlock()
		return nil, err
	}
	tags := slices.Clone(t.tags)
	t.mu.Unlock()

	if tags == nil {
		tags = []string{}
	}
	return t.commit(ctx, &dtos.JobUpdateRequest{Tags: &tags})
}

// ClearAll empties the draft and immediately persists an empty tag list,
// without waiting for Save. If persisting fails the previous draft is
// restored so nothing the user had is lost.
func (t *TagEditor) ClearAll(ctx context.Context) (*models.Job, error) {
	t.mu.Lock()
	if err := t.startSave(); err != nil {
		t.mu.Unlock()
		return nil, err
	}
	previous := t.tags
	t.tags = nil
	t.mu.Unlock()

	job, err := t.commit(ctx, &dtos.JobUpdateRequest{Tags: &[]string{}})
	if err != nil {
		t.mu.Lock()
		t.tags = append(previous, t.tags...)
		t.mu.Unlock()
		return nil, err
	}
	return job, nil
}

func (t *TagEditor) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	tags := slices.Clone(t.tags)
	if tags == nil {
		tags = []string{}
	}
	return State{
		ID:         t.id,
		Kind:       t.kind,
		JobID:      t.jobID,
		Editing:    t.editing,
		Generating: t.generating,
		Tags:       tags,
	}
}
