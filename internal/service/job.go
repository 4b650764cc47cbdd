package service

import (
	"context"
	"errors"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// JobService defines the public job browsing use cases.
type JobService interface {
	// List returns active jobs matching the filter.
	List(ctx context.Context, f repository.JobFilter) ([]model.Job, error)

	// Get returns a single job by its ID.
	Get(ctx context.Context, id string) (*model.Job, error)
}

type jobService struct {
	jobs repository.JobRepository
}

// NewJobService constructs a new JobService.
func NewJobService(jobs repository.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func (s *jobService) List(ctx context.Context, f repository.JobFilter) ([]model.Job, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}
	return s.jobs.ListActive(ctx, f)
}

func (s *jobService) Get(ctx context.Context, id string) (*model.Job, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}
