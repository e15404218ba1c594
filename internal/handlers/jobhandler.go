package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

type JobExtractor interface {
	ExtractJobDetails(ctx context.Context, rawHTML string) (string, error)
}

type JobManager interface {
	CreateJob(ctx context.Context, userID string, req *dtos.JobCreationRequest) (*models.Job, error)
	ListJobs(ctx context.Context, userID string) ([]models.Job, error)
	GetJob(ctx context.Context, userID string, jobID uint) (*models.Job, error)
	UpdateJob(ctx context.Context, userID string, jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, userID string, jobID uint) error
	SetPublished(ctx context.Context, userID string, jobID uint, publish bool) (*models.Job, error)
	ListApplicants(ctx context.Context, userID string, jobID uint) ([]dtos.ApplicantResponse, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type JobHandler struct {
	Extractor JobExtractor
	Jobs      JobManager
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(extractor JobExtractor, jobs JobManager) *JobHandler {
	return &JobHandler{Extractor: extractor, Jobs: jobs}
}

// ParseJob is the POST /jobs/extract endpoint
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if !bindJSON(c, &req) {
		return
	}
	extractedJSON, err := h.Extractor.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI Extraction failed: " + err.Error()})
		return
	}
	if !json.Valid([]byte(extractedJSON)) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI Extraction returned invalid JSON"})
		return
	}

	// json.RawMessage keeps gin from escaping the model's JSON a second time
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.Jobs.CreateJob(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListJobs(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.GetJob(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob is the partial update endpoint every job form saves through.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.Jobs.UpdateJob(c.Request.Context(), currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Jobs.DeleteJob(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) PublishJob(c *gin.Context)   { h.setPublished(c, true) }
func (h *JobHandler) UnpublishJob(c *gin.Context) { h.setPublished(c, false) }

func (h *JobHandler) setPublished(c *gin.Context, publish bool) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.SetPublished(c.Request.Context(), currentUser(c), id, publish)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListApplicants(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	applicants, err := h.Jobs.ListApplicants(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicants)
}

func (h *JobHandler) ListCategories(c *gin.Context) {
	categories, err := h.Jobs.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
