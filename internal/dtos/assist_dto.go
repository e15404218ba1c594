package dtos

// GenerateRequest carries the subject line (role or topic) and, for
// descriptions only, a comma-separated list of skills.
type GenerateRequest struct {
	Subject string `json:"subject"`
	Skills  string `json:"skills"`
}

type DraftRequest struct {
	Description string `json:"description"`
}

type SessionResponse struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	JobID      uint     `json:"job_id"`
	Editing    bool     `json:"editing"`
	Generating bool     `json:"generating"`
	Suggestion string   `json:"suggestion,omitempty"`
	Draft      string   `json:"draft"`
	Tags       []string `json:"tags"`
}
