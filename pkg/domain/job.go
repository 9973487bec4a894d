package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Job is a posting on the shared job board. Jobs are not linked to a
// company yet; the careers page lists every open job.
type Job struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	WorkPolicy      string    `json:"workPolicy,omitempty"`
	Location        string    `json:"location,omitempty"`
	Department      string    `json:"department,omitempty"`
	EmploymentType  string    `json:"employmentType,omitempty"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	JobType         string    `json:"jobType,omitempty"`
	SalaryRange     string    `json:"salaryRange,omitempty"`
	JobSlug         string    `json:"jobSlug"`
	PostedDaysAgo   string    `json:"postedDaysAgo,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
