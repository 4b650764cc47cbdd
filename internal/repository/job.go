package repository

import (
	"context"

	"jobboard/internal/model"
)

// JobFilter narrows the public job listing. Empty fields are ignored.
type JobFilter struct {
	Country string
	JobType string
	// Query is matched case-insensitively against title, description and
	// company name.
	Query string
	Limit int
}

// JobRepository defines data access for job postings.
// No business logic here — strictly persistence operations.
type JobRepository interface {
	// ListActive returns active jobs matching the filter, featured first,
	// newest first.
	ListActive(ctx context.Context, f JobFilter) ([]model.Job, error)

	// FindByID returns a job by its ID. Returns ErrNoDocument when absent.
	FindByID(ctx context.Context, id string) (*model.Job, error)

	// FindOpenByID returns a job by ID only if its status is not closed.
	// Returns ErrNoDocument when the job is absent or closed.
	FindOpenByID(ctx context.Context, id string) (*model.Job, error)
}
