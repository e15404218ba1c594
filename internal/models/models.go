package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile is keyed by the opaque id handed to us by the auth provider.
type UserProfile struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	ActiveResumeID *uint  `json:"active_resume_id"`

	Resumes     []Resume     `gorm:"foreignKey:UserProfileID" json:"resumes,omitempty"`
	AppliedJobs []AppliedJob `gorm:"foreignKey:UserProfileID" json:"applied_jobs,omitempty"`
}

type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserProfileID string `gorm:"index;not null" json:"user_profile_id"`
	Name          string `gorm:"not null" json:"name"`
	URL           string `gorm:"not null" json:"url"`
}

// AppliedJob links an applicant to a job. One row per (user, job).
type AppliedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`

	UserProfileID string      `gorm:"uniqueIndex:idx_applicant_job;not null" json:"user_profile_id"`
	UserProfile   UserProfile `gorm:"foreignKey:UserProfileID;references:UserID" json:"user_profile,omitempty"`
	JobID         uint        `gorm:"uniqueIndex:idx_applicant_job;not null" json:"job_id"`
	Job           Job         `json:"job,omitempty"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"index;not null" json:"user_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Logo        string `json:"logo"`
	CoverImage  string `json:"cover_image"`
	Mail        string `json:"mail"`
	Website     string `json:"website"`
	LinkedIn    string `json:"linkedin"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zipcode     string `json:"zipcode"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"index;not null" json:"user_id"`

	// Foreign Keys. Both are optional while the job is a draft.
	CompanyID  *uint     `json:"company_id"`
	Company    *Company  `json:"company,omitempty"`
	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category,omitempty"`

	Title             string   `gorm:"not null" json:"title"`
	Description       string   `gorm:"type:text" json:"description"`
	ShortDescription  string   `gorm:"type:text" json:"short_description"`
	ImageURL          string   `json:"image_url"`
	IsPublished       bool     `gorm:"default:false" json:"is_published"`
	Tags              []string `gorm:"serializer:json" json:"tags"`
	ShiftTiming       string   `json:"shift_timing"`
	HourlyRate        string   `json:"hourly_rate"`
	WorkMode          string   `json:"work_mode"`
	YearsOfExperience string   `json:"years_of_experience"`

	Attachments []Attachment `json:"attachments,omitempty"`
}

// Complete reports whether the fields required for publishing are set.
func (j *Job) Complete() bool {
	return j.Title != "" && j.Description != "" && j.ImageURL != "" && j.CategoryID != nil
}

type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `gorm:"index" json:"job_id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
}

type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}

const (
	EventJobCreated         = "JOB_CREATED"
	EventJobUpdated         = "JOB_UPDATED"
	EventDescriptionUpdated = "DESCRIPTION_UPDATED"
	EventTagsUpdated        = "TAGS_UPDATED"
	EventPublished          = "PUBLISHED"
	EventUnpublished        = "UNPUBLISHED"
	EventApplied            = "APPLIED"
)
