package models

import "time"

// JobPosting is a persisted job posting. JobID is supplied by the client.
type JobPosting struct {
	JobID           int64     `json:"job_id"`
	JobTitle        string    `json:"job_title"`
	Company         string    `json:"company"`
	RequiredSkills  []string  `json:"required_skills"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// Preferences describes what the user is looking for.
type Preferences struct {
	DesiredRoles []string `json:"desired_roles"`
	Locations    []string `json:"locations"`
	JobType      []string `json:"job_type"`
}

// UserProfile is built per request and never persisted.
type UserProfile struct {
	Name            string      `json:"name"`
	Skills          []string    `json:"skills"`
	ExperienceLevel string      `json:"experience_level"`
	Preferences     Preferences `json:"preferences"`
}

// MatchResult is the projection of a JobPosting returned by /recommend.
type MatchResult struct {
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level"`
}

// AddJobRequest is the body of POST /add_job.
// Pointer fields let binding tell a missing field from a zero value.
type AddJobRequest struct {
	JobID           *int64    `json:"job_id" binding:"required"`
	JobTitle        *string   `json:"job_title" binding:"required"`
	Company         *string   `json:"company" binding:"required"`
	RequiredSkills  []*string `json:"required_skills" binding:"required,dive,required"`
	Location        *string   `json:"location" binding:"required"`
	JobType         *string   `json:"job_type" binding:"required"`
	ExperienceLevel *string   `json:"experience_level" binding:"required"`
}

// ToJobPosting converts a validated request into a JobPosting.
func (r *AddJobRequest) ToJobPosting() *JobPosting {
	return &JobPosting{
		JobID:           *r.JobID,
		JobTitle:        *r.JobTitle,
		Company:         *r.Company,
		RequiredSkills:  derefAll(r.RequiredSkills),
		Location:        *r.Location,
		JobType:         *r.JobType,
		ExperienceLevel: *r.ExperienceLevel,
	}
}

// PreferencesRequest is the nested preferences object of POST /recommend.
type PreferencesRequest struct {
	DesiredRoles []*string `json:"desired_roles" binding:"required,dive,required"`
	Locations    []*string `json:"locations" binding:"required,dive,required"`
	JobType      []*string `json:"job_type" binding:"required,dive,required"`
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	Name            *string             `json:"name" binding:"required"`
	Skills          []*string           `json:"skills" binding:"required,dive,required"`
	ExperienceLevel *string             `json:"experience_level" binding:"required"`
	Preferences     *PreferencesRequest `json:"preferences" binding:"required"`
}

// ToUserProfile converts a validated request into a UserProfile.
func (r *RecommendRequest) ToUserProfile() *UserProfile {
	return &UserProfile{
		Name:            *r.Name,
		Skills:          derefAll(r.Skills),
		ExperienceLevel: *r.ExperienceLevel,
		Preferences: Preferences{
			DesiredRoles: derefAll(r.Preferences.DesiredRoles),
			Locations:    derefAll(r.Preferences.Locations),
			JobType:      derefAll(r.Preferences.JobType),
		},
	}
}

// derefAll copies validated array elements. Element pointers let binding
// reject null entries while still accepting empty strings.
func derefAll(values []*string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = *v
	}
	return out
}

// MessageResponse is a plain message reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddJobResponse is returned after a successful insert.
type AddJobResponse struct {
	Message string `json:"message"`
	JobID   int64  `json:"job_id"`
}

// RecommendResponse wraps the matched jobs.
type RecommendResponse struct {
	RecommendedJobs []MatchResult `json:"recommended_jobs"`
}

// JobListResponse is returned by GET /jobs.
type JobListResponse struct {
	Jobs  []JobPosting `json:"jobs"`
	Total int          `json:"total"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse standard error.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}
