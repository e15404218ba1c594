package dtos

type ProfileUpdateRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Contact  *string `json:"contact" binding:"omitempty,min=1"`
}

type ResumeInput struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

type ResumesRequest struct {
	Resumes []ResumeInput `json:"resumes" binding:"required,min=1,dive"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type AnalyticsOverview struct {
	TotalJobs          int64          `json:"total_jobs"`
	TotalJobsByUser    int64          `json:"total_jobs_by_user"`
	TotalCompanies     int64          `json:"total_companies"`
	TotalCompaniesUser int64          `json:"total_companies_by_user"`
	JobsByMonth        []MonthlyCount `json:"jobs_by_month"`
	CompaniesByMonth   []MonthlyCount `json:"companies_by_month"`
}
