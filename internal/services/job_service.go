package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) CreateJob(ctx context.Context, userID string, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		UserID:     userID,
		Title:      req.Title,
		CompanyID:  req.CompanyID,
		CategoryID: req.CategoryID,
		Tags:       []string{},
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, userID, req.CompanyID, req.CategoryID); err != nil {
			return err
		}
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		return recordEvent(tx, job.ID, models.EventJobCreated, "Job created: "+job.Title)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Preload("Company").Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, err
}

func (s *JobService) GetJob(ctx context.Context, userID string, jobID uint) (*models.Job, error) {
	return loadJob(s.DB.WithContext(ctx), userID, jobID)
}

func loadJob(tx *gorm.DB, userID string, jobID uint) (*models.Job, error) {
	var job models.Job
	err := tx.
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Company").Preload("Category").
		Where("id = ? AND user_id = ?", jobID, userID).
		First(&job).Error
	if err != nil {
		return nil, notFound(err, "job")
	}
	return &job, nil
}

// UpdateJob applies a partial update and returns the refreshed job.
func (s *JobService) UpdateJob(ctx context.Context, userID string, jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	if req.Empty() {
		return nil, ErrNoChanges
	}

	var updated *models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := loadJob(tx, userID, jobID)
		if err != nil {
			return err
		}
		if err := checkReferences(tx, userID, req.CompanyID, req.CategoryID); err != nil {
			return err
		}

		fields, event := applyUpdate(job, req)
		if len(fields) > 0 {
			// Select forces zero values (empty tags, cleared strings) to be written.
			if err := tx.Model(job).Select(fields).Omit(clause.Associations).Updates(job).Error; err != nil {
				return err
			}
		}
		for _, a := range req.Attachments {
			att := models.Attachment{JobID: job.ID, Name: a.Name, URL: a.URL}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
		}
		if len(req.Attachments) > 0 {
			fields = append(fields, "Attachments")
		}
		if err := recordEvent(tx, job.ID, event, "Updated fields: "+strings.Join(fields, ", ")); err != nil {
			return err
		}

		updated, err = loadJob(tx, userID, jobID)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Uint("job_id", jobID).Msg("job updated")
	return updated, nil
}

// applyUpdate copies the set fields of req onto job and returns the
// changed field names plus the event type describing the change.
func applyUpdate(job *models.Job, req *dtos.JobUpdateRequest) ([]string, string) {
	var fields []string
	set := func(name string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			fields = append(fields, name)
		}
	}
	set("Title", &job.Title, req.Title)
	set("Description", &job.Description, req.Description)
	set("ShortDescription", &job.ShortDescription, req.ShortDescription)
	set("ImageURL", &job.ImageURL, req.ImageURL)
	set("ShiftTiming", &job.ShiftTiming, req.ShiftTiming)
	set("HourlyRate", &job.HourlyRate, req.HourlyRate)
	set("WorkMode", &job.WorkMode, req.WorkMode)
	set("YearsOfExperience", &job.YearsOfExperience, req.YearsOfExperience)

	if req.Tags != nil {
		job.Tags = append([]string{}, (*req.Tags)...)
		fields = append(fields, "Tags")
	}
	if req.CategoryID != nil {
		job.CategoryID = req.CategoryID
		job.Category = nil
		fields = append(fields, "CategoryID")
	}
	if req.CompanyID != nil {
		job.CompanyID = req.CompanyID
		job.Company = nil
		fields = append(fields, "CompanyID")
	}

	event := models.EventJobUpdated
	switch {
	case len(fields) == 1 && fields[0] == "Description":
		event = models.EventDescriptionUpdated
	case len(fields) == 1 && fields[0] == "Tags":
		event = models.EventTagsUpdated
	}
	return fields, event
}

func (s *JobService) DeleteJob(ctx context.Context, userID string, jobID uint) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", jobID, userID).Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job: %w", ErrNotFound)
	}
	return nil
}

// SetPublished publishes or unpublishes a job. Publishing requires the
// title, description, image and category to be filled in.
func (s *JobService) SetPublished(ctx context.Context, userID string, jobID uint, publish bool) (*models.Job, error) {
	var updated *models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := loadJob(tx, userID, jobID)
		if err != nil {
			return err
		}
		if publish && !job.Complete() {
			return ErrJobIncomplete
		}
		if err := tx.Model(job).Update("is_published", publish).Error; err != nil {
			return err
		}
		job.IsPublished = publish
		event := models.EventUnpublished
		if publish {
			event = models.EventPublished
		}
		if err := recordEvent(tx, job.ID, event, ""); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *JobService) ListApplicants(ctx context.Context, userID string, jobID uint) ([]dtos.ApplicantResponse, error) {
	db := s.DB.WithContext(ctx)
	if _, err := loadJob(db, userID, jobID); err != nil {
		return nil, err
	}

	var applied []models.AppliedJob
	err := db.Preload("UserProfile.Resumes").
		Where("job_id = ?", jobID).
		Order("applied_at desc").
		Find(&applied).Error
	if err != nil {
		return nil, err
	}

	out := make([]dtos.ApplicantResponse, 0, len(applied))
	for _, a := range applied {
		p := a.UserProfile
		out = append(out, dtos.ApplicantResponse{
			UserID:    p.UserID,
			FullName:  p.FullName,
			Email:     p.Email,
			Contact:   p.Contact,
			ResumeURL: activeResumeURL(&p),
			AppliedAt: a.AppliedAt.Format("January 2, 2006"),
		})
	}
	return out, nil
}

func activeResumeURL(p *models.UserProfile) string {
	if p.ActiveResumeID == nil {
		return ""
	}
	for _, r := range p.Resumes {
		if r.ID == *p.ActiveResumeID {
			return r.URL
		}
	}
	return ""
}

func (s *JobService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.WithContext(ctx).Order("name asc").Find(&categories).Error
	return categories, err
}

// checkReferences verifies that referenced rows exist and, for companies,
// belong to the caller.
func checkReferences(tx *gorm.DB, userID string, companyID, categoryID *uint) error {
	if companyID != nil {
		var n int64
		if err := tx.Model(&models.Company{}).Where("id = ? AND user_id = ?", *companyID, userID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("company: %w", ErrNotFound)
		}
	}
	if categoryID != nil {
		var n int64
		if err := tx.Model(&models.Category{}).Where("id = ?", *categoryID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("category: %w", ErrNotFound)
		}
	}
	return nil
}

func recordEvent(tx *gorm.DB, jobID uint, eventType, details string) error {
	return tx.Create(&models.JobEvent{JobID: jobID, EventType: eventType, Details: details}).Error
}
