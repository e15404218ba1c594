package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/assist"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

// AssistHandler exposes the AI-assisted description and tag editors. Each
// editor is an edit session; nothing reaches the job until the session is
// saved (or its tags cleared).
type AssistHandler struct {
	Sessions  *assist.Sessions
	Clipboard assist.Clipboard
}

func NewAssistHandler(sessions *assist.Sessions, cb assist.Clipboard) *AssistHandler {
	if cb == nil {
		cb = assist.NopClipboard{}
	}
	return &AssistHandler{Sessions: sessions, Clipboard: cb}
}

type committer interface {
	Save(ctx context.Context) (*models.Job, error)
}

func sessionResponse(st assist.State) dtos.SessionResponse {
	return dtos.SessionResponse{
		ID:         st.ID,
		Kind:       st.Kind,
		JobID:      st.JobID,
		Editing:    st.Editing,
		Generating: st.Generating,
		Suggestion: st.Suggestion,
		Draft:      st.Draft,
		Tags:       st.Tags,
	}
}

func (h *AssistHandler) OpenDescription(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	d, err := h.Sessions.OpenDescription(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(d.State()))
}

func (h *AssistHandler) OpenTags(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	t, err := h.Sessions.OpenTags(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(t.State()))
}

func (h *AssistHandler) GetSession(c *gin.Context) {
	sess, err := h.Sessions.Get(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess.State()))
}

// CancelSession leaves edit mode and drops the draft.
func (h *AssistHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.Cancel(currentUser(c), c.Param("sid")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AssistHandler) Generate(c *gin.Context) {
	sess, err := h.Sessions.Get(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req dtos.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}

	switch ed := sess.(type) {
	case *assist.DescriptionEditor:
		if _, err := ed.Generate(c.Request.Context(), req.Subject, req.Skills); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sessionResponse(ed.State())})
	case *assist.TagEditor:
		res, err := ed.Generate(c.Request.Context(), req.Subject)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sessionResponse(ed.State()), "added": len(res.Tags)})
	default:
		respondError(c, assist.ErrWrongSessionKind)
	}
}

func (h *AssistHandler) SetDraft(c *gin.Context) {
	d, err := h.Sessions.Description(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req dtos.DraftRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := d.SetDraft(req.Description); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(d.State()))
}

// CopySuggestion hands the suggestion to the clipboard and echoes it so the
// client can copy it locally.
func (h *AssistHandler) CopySuggestion(c *gin.Context) {
	d, err := h.Sessions.Description(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	text, err := d.CopySuggestion(h.Clipboard)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *AssistHandler) RemoveTag(c *gin.Context) {
	t, err := h.Sessions.Tags(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}
	if err := t.RemoveTag(index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(t.State()))
}

// ClearTags empties the tag list and saves right away.
func (h *AssistHandler) ClearTags(c *gin.Context) {
	t, err := h.Sessions.Tags(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	job, err := t.ClearAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *AssistHandler) Save(c *gin.Context) {
	sess, err := h.Sessions.Get(currentUser(c), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	ed, ok := sess.(committer)
	if !ok {
		respondError(c, assist.ErrWrongSessionKind)
		return
	}
	job, err := ed.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
