package handlers

import "github.com/gin-gonic/gin"

type Router struct {
	Jobs      *JobHandler
	Companies *CompanyHandler
	Users     *UserHandler
	Assist    *AssistHandler
}

// Register mounts every route under /api/v1.
func (rt *Router) Register(r *gin.Engine) {
	api := r.Group("/api/v1")
	api.GET("/health", HealthCheck)

	authed := api.Group("", RequireUser())
	{
		authed.GET("/categories", rt.Jobs.ListCategories)

		// Company Routes
		authed.POST("/companies", rt.Companies.CreateCompany)
		authed.GET("/companies", rt.Companies.ListCompanies)
		authed.GET("/companies/:id", rt.Companies.GetCompany)
		authed.PATCH("/companies/:id", rt.Companies.UpdateCompany)
		authed.DELETE("/companies/:id", rt.Companies.DeleteCompany)

		// Job Routes
		authed.POST("/jobs/extract", rt.Jobs.ParseJob)
		authed.POST("/jobs", rt.Jobs.CreateJob)
		authed.GET("/jobs", rt.Jobs.ListJobs)
		authed.GET("/jobs/:id", rt.Jobs.GetJob)
		authed.PATCH("/jobs/:id", rt.Jobs.UpdateJob)
		authed.DELETE("/jobs/:id", rt.Jobs.DeleteJob)
		authed.PATCH("/jobs/:id/publish", rt.Jobs.PublishJob)
		authed.PATCH("/jobs/:id/unpublish", rt.Jobs.UnpublishJob)
		authed.GET("/jobs/:id/applicants", rt.Jobs.ListApplicants)
		authed.POST("/jobs/:id/apply", rt.Users.ApplyToJob)

		// Assisted editing
		authed.POST("/jobs/:id/description/sessions", rt.Assist.OpenDescription)
		authed.POST("/jobs/:id/tags/sessions", rt.Assist.OpenTags)
		authed.GET("/assist/sessions/:sid", rt.Assist.GetSession)
		authed.DELETE("/assist/sessions/:sid", rt.Assist.CancelSession)
		authed.POST("/assist/sessions/:sid/generate", rt.Assist.Generate)
		authed.PUT("/assist/sessions/:sid/draft", rt.Assist.SetDraft)
		authed.POST("/assist/sessions/:sid/copy", rt.Assist.CopySuggestion)
		authed.DELETE("/assist/sessions/:sid/tags/:index", rt.Assist.RemoveTag)
		authed.POST("/assist/sessions/:sid/clear", rt.Assist.ClearTags)
		authed.POST("/assist/sessions/:sid/save", rt.Assist.Save)

		// User Routes
		authed.GET("/users/me", rt.Users.GetProfile)
		authed.PATCH("/users/me", rt.Users.UpdateProfile)
		authed.POST("/users/me/resumes", rt.Users.AddResumes)
		authed.DELETE("/users/me/resumes/:rid", rt.Users.RemoveResume)
		authed.PATCH("/users/me/resumes/:rid/active", rt.Users.SetActiveResume)
		authed.GET("/users/me/applied-jobs", rt.Users.AppliedJobs)

		authed.GET("/analytics/overview", rt.Users.Overview)
	}
}
