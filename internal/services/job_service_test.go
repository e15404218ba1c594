package services

import (
	"testing"
	"time"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestApplyUpdateDescriptionOnly(t *testing.T) {
	job := &models.Job{Title: "Dev", Description: "old", Tags: []string{"a"}}

	fields, event := applyUpdate(job, &dtos.JobUpdateRequest{Description: ptr("new")})

	assert.Equal(t, []string{"Description"}, fields)
	assert.Equal(t, models.EventDescriptionUpdated, event)
	assert.Equal(t, "new", job.Description)
	assert.Equal(t, []string{"a"}, job.Tags)
}

func TestApplyUpdateEmptyTags(t *testing.T) {
	job := &models.Job{Tags: []string{"a", "b"}}

	fields, event := applyUpdate(job, &dtos.JobUpdateRequest{Tags: &[]string{}})

	assert.Equal(t, []string{"Tags"}, fields)
	assert.Equal(t, models.EventTagsUpdated, event)
	assert.NotNil(t, job.Tags, "an empty list is stored as [] not null")
	assert.Empty(t, job.Tags)
}

func TestApplyUpdateSeveralFields(t *testing.T) {
	job := &models.Job{Company: &models.Company{Name: "stale"}}

	fields, event := applyUpdate(job, &dtos.JobUpdateRequest{
		Title:      ptr("Chef"),
		HourlyRate: ptr("25"),
		CompanyID:  ptr(uint(3)),
	})

	assert.Equal(t, []string{"Title", "HourlyRate", "CompanyID"}, fields)
	assert.Equal(t, models.EventJobUpdated, event)
	assert.Equal(t, uint(3), *job.CompanyID)
	assert.Nil(t, job.Company)
}

func TestJobUpdateRequestEmpty(t *testing.T) {
	assert.True(t, (&dtos.JobUpdateRequest{}).Empty())
	assert.False(t, (&dtos.JobUpdateRequest{Tags: &[]string{}}).Empty())
	assert.False(t, (&dtos.JobUpdateRequest{Attachments: []dtos.AttachmentInput{{Name: "a", URL: "https://x"}}}).Empty())
}

func TestJobComplete(t *testing.T) {
	job := &models.Job{Title: "Dev", Description: "d", ImageURL: "https://img"}
	assert.False(t, job.Complete())
	job.CategoryID = ptr(uint(1))
	assert.True(t, job.Complete())
	job.Description = ""
	assert.False(t, job.Complete())
}

func TestActiveResumeURL(t *testing.T) {
	p := &models.UserProfile{Resumes: []models.Resume{{ID: 1, URL: "u1"}, {ID: 2, URL: "u2"}}}
	assert.Empty(t, activeResumeURL(p))
	p.ActiveResumeID = ptr(uint(2))
	assert.Equal(t, "u2", activeResumeURL(p))
	p.ActiveResumeID = ptr(uint(9))
	assert.Empty(t, activeResumeURL(p))
}

func TestCountByMonth(t *testing.T) {
	at := func(y int, m time.Month) time.Time { return time.Date(y, m, 10, 0, 0, 0, 0, time.UTC) }

	got := CountByMonth([]time.Time{at(2025, time.March), at(2026, time.March), at(2026, time.December)})

	assert.Len(t, got, 12)
	assert.Equal(t, dtos.MonthlyCount{Month: "Jan", Count: 0}, got[0])
	assert.Equal(t, dtos.MonthlyCount{Month: "Mar", Count: 2}, got[2])
	assert.Equal(t, dtos.MonthlyCount{Month: "Dec", Count: 1}, got[11])
}
