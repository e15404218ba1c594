package services

import (
	"context"
	"strings"
	"testing"

	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestUpdateJobStoresEmptyTags(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewJobService(db)

	job, err := svc.CreateJob(ctx, "u1", &dtos.JobCreationRequest{Title: "Barista"})
	require.NoError(t, err)

	tags := []string{"coffee", "latte art", "coffee"}
	updated, err := svc.UpdateJob(ctx, "u1", job.ID, &dtos.JobUpdateRequest{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, tags, updated.Tags)

	updated, err = svc.UpdateJob(ctx, "u1", job.ID, &dtos.JobUpdateRequest{Tags: &[]string{}})
	require.NoError(t, err)
	assert.NotNil(t, updated.Tags)
	assert.Empty(t, updated.Tags)

	var stored string
	require.NoError(t, db.Raw("SELECT tags FROM jobs WHERE id = ?", job.ID).Scan(&stored).Error)
	assert.Equal(t, "[]", stored)

	var events int64
	require.NoError(t, db.Model(&models.JobEvent{}).
		Where("job_id = ? AND event_type = ?", job.ID, models.EventTagsUpdated).
		Count(&events).Error)
	assert.EqualValues(t, 2, events)
}

func TestUpdateJobLeavesUnsetFields(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewJobService(db)

	job, err := svc.CreateJob(ctx, "u1", &dtos.JobCreationRequest{Title: "Barista"})
	require.NoError(t, err)
	tags := []string{"coffee"}
	_, err = svc.UpdateJob(ctx, "u1", job.ID, &dtos.JobUpdateRequest{Tags: &tags})
	require.NoError(t, err)

	updated, err := svc.UpdateJob(ctx, "u1", job.ID, &dtos.JobUpdateRequest{Description: ptr("Pulls espresso shots")})
	require.NoError(t, err)
	assert.Equal(t, "Pulls espresso shots", updated.Description)
	assert.Equal(t, "Barista", updated.Title)
	assert.Equal(t, []string{"coffee"}, updated.Tags)
}

func TestUpdateJobScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newTestDB(t))

	job, err := svc.CreateJob(ctx, "u1", &dtos.JobCreationRequest{Title: "Barista"})
	require.NoError(t, err)

	_, err = svc.UpdateJob(ctx, "intruder", job.ID, &dtos.JobUpdateRequest{Description: ptr("mine now")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateJob(ctx, "u1", job.ID, &dtos.JobUpdateRequest{})
	assert.ErrorIs(t, err, ErrNoChanges)

	_, err = svc.SetPublished(ctx, "u1", job.ID, true)
	assert.ErrorIs(t, err, ErrJobIncomplete)
}
