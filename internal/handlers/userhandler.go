package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

type UserManager interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *dtos.ProfileUpdateRequest) (*models.UserProfile, error)
	AddResumes(ctx context.Context, userID string, req *dtos.ResumesRequest) (*models.UserProfile, error)
	RemoveResume(ctx context.Context, userID string, resumeID uint) (*models.UserProfile, error)
	SetActiveResume(ctx context.Context, userID string, resumeID uint) (*models.UserProfile, error)
	ApplyToJob(ctx context.Context, userID string, jobID uint) (*models.AppliedJob, error)
	AppliedJobs(ctx context.Context, userID string) ([]models.AppliedJob, error)
}

type AnalyticsProvider interface {
	Overview(ctx context.Context, userID string) (*dtos.AnalyticsOverview, error)
}

type UserHandler struct {
	Users     UserManager
	Analytics AnalyticsProvider
}

func NewUserHandler(users UserManager, analytics AnalyticsProvider) *UserHandler {
	return &UserHandler{Users: users, Analytics: analytics}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Users.GetProfile(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.Users.UpdateProfile(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) AddResumes(c *gin.Context) {
	var req dtos.ResumesRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.Users.AddResumes(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *UserHandler) RemoveResume(c *gin.Context) {
	id, ok := uintParam(c, "rid")
	if !ok {
		return
	}
	profile, err := h.Users.RemoveResume(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) SetActiveResume(c *gin.Context) {
	id, ok := uintParam(c, "rid")
	if !ok {
		return
	}
	profile, err := h.Users.SetActiveResume(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) ApplyToJob(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	applied, err := h.Users.ApplyToJob(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, applied)
}

func (h *UserHandler) AppliedJobs(c *gin.Context) {
	applied, err := h.Users.AppliedJobs(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applied)
}

func (h *UserHandler) Overview(c *gin.Context) {
	overview, err := h.Analytics.Overview(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
