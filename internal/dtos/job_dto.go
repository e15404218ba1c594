package dtos

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

type JobCreationRequest struct {
	Title string `json:"title" binding:"required"`

	// Optional Fields
	CompanyID  *uint `json:"company_id"`
	CategoryID *uint `json:"category_id"`
}

// JobUpdateRequest is a partial update. Nil fields are left untouched.
type JobUpdateRequest struct {
	Title             *string   `json:"title" binding:"omitempty,min=1"`
	Description       *string   `json:"description" binding:"omitempty,min=1"`
	ShortDescription  *string   `json:"short_description"`
	ImageURL          *string   `json:"image_url"`
	Tags              *[]string `json:"tags"`
	CategoryID        *uint     `json:"category_id"`
	CompanyID         *uint     `json:"company_id"`
	ShiftTiming       *string   `json:"shift_timing" binding:"omitempty,min=1"`
	HourlyRate        *string   `json:"hourly_rate" binding:"omitempty,min=1"`
	WorkMode          *string   `json:"work_mode" binding:"omitempty,min=1"`
	YearsOfExperience *string   `json:"years_of_experience" binding:"omitempty,min=1"`

	Attachments []AttachmentInput `json:"attachments" binding:"omitempty,dive"`
}

type AttachmentInput struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

// Empty reports whether the request carries no field to update.
func (r *JobUpdateRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.ShortDescription == nil &&
		r.ImageURL == nil && r.Tags == nil && r.CategoryID == nil && r.CompanyID == nil &&
		r.ShiftTiming == nil && r.HourlyRate == nil && r.WorkMode == nil &&
		r.YearsOfExperience == nil && len(r.Attachments) == 0
}

type ApplicantResponse struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	ResumeURL string `json:"resume_url,omitempty"`
	AppliedAt string `json:"applied_at"`
}
