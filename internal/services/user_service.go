package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetProfile returns the caller's profile, creating an empty one on first access.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return getOrCreateProfile(s.DB.WithContext(ctx), userID)
}

func getOrCreateProfile(tx *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := tx.Preload("Resumes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *dtos.ProfileUpdateRequest) (*models.UserProfile, error) {
	db := s.DB.WithContext(ctx)
	profile, err := getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	var fields []string
	if req.FullName != nil {
		profile.FullName = *req.FullName
		fields = append(fields, "FullName")
	}
	if req.Email != nil {
		profile.Email = *req.Email
		fields = append(fields, "Email")
	}
	if req.Contact != nil {
		profile.Contact = *req.Contact
		fields = append(fields, "Contact")
	}
	if len(fields) == 0 {
		return nil, ErrNoChanges
	}
	if err := db.Model(profile).Select(fields).Updates(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// AddResumes stores resume links. The first resume ever added becomes active.
func (s *UserService) AddResumes(ctx context.Context, userID string, req *dtos.ResumesRequest) (*models.UserProfile, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := getOrCreateProfile(tx, userID)
		if err != nil {
			return err
		}
		resumes := make([]models.Resume, 0, len(req.Resumes))
		for _, r := range req.Resumes {
			resumes = append(resumes, models.Resume{UserProfileID: userID, Name: r.Name, URL: r.URL})
		}
		if err := tx.Create(&resumes).Error; err != nil {
			return err
		}
		if profile.ActiveResumeID == nil {
			return tx.Model(profile).Update("active_resume_id", resumes[0].ID).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *UserService) RemoveResume(ctx context.Context, userID string, resumeID uint) (*models.UserProfile, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_profile_id = ?", resumeID, userID).Delete(&models.Resume{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("resume: %w", ErrNotFound)
		}
		return tx.Model(&models.UserProfile{}).
			Where("user_id = ? AND active_resume_id = ?", userID, resumeID).
			Update("active_resume_id", nil).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *UserService) SetActiveResume(ctx context.Context, userID string, resumeID uint) (*models.UserProfile, error) {
	db := s.DB.WithContext(ctx)
	var resume models.Resume
	if err := db.Where("id = ? AND user_profile_id = ?", resumeID, userID).First(&resume).Error; err != nil {
		return nil, notFound(err, "resume")
	}
	if err := db.Model(&models.UserProfile{}).Where("user_id = ?", userID).Update("active_resume_id", resume.ID).Error; err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// ApplyToJob records the caller as an applicant of a published job.
func (s *UserService) ApplyToJob(ctx context.Context, userID string, jobID uint) (*models.AppliedJob, error) {
	var applied models.AppliedJob
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.Where("id = ?", jobID).First(&job).Error; err != nil {
			return notFound(err, "job")
		}
		if !job.IsPublished {
			return ErrNotPublished
		}
		if _, err := getOrCreateProfile(tx, userID); err != nil {
			return err
		}

		err := tx.Where("user_profile_id = ? AND job_id = ?", userID, jobID).First(&applied).Error
		if err == nil {
			return ErrAlreadyApplied
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		applied = models.AppliedJob{UserProfileID: userID, JobID: jobID}
		if err := tx.Omit("UserProfile", "Job").Create(&applied).Error; err != nil {
			return err
		}
		return recordEvent(tx, jobID, models.EventApplied, "Applicant: "+userID)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", userID).Uint("job_id", jobID).Msg("application recorded")
	return &applied, nil
}

func (s *UserService) AppliedJobs(ctx context.Context, userID string) ([]models.AppliedJob, error) {
	var applied []models.AppliedJob
	err := s.DB.WithContext(ctx).
		Preload("Job.Company").Preload("Job.Category").
		Where("user_profile_id = ?", userID).
		Order("applied_at desc").
		Find(&applied).Error
	return applied, err
}
