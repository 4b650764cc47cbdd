package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobboard/internal/model"
	"jobboard/internal/ratelimit"
	"jobboard/internal/repository"
)

const (
	applyRateKey    = "apply"
	applyRateLimit  = 5
	applyRateWindow = time.Minute
)

// EventApplicationNew is the event name broadcast when a candidate applies.
const EventApplicationNew = "application:new"

// Broadcaster fans an event out to connected admin channels.
type Broadcaster interface {
	Broadcast(event string, data any)
}

// ApplyInput is the public application submission payload.
type ApplyInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CoverLetter   string `json:"cover_letter,omitempty"`
	ResumeMediaID string `json:"resume_media_id,omitempty"`
}

// applicationEcho is the non-sensitive subset of a new application pushed
// to admin channels. It deliberately carries no internal identifiers
// beyond the job reference.
type applicationEcho struct {
	JobID     string                  `json:"job_id"`
	Candidate model.Candidate         `json:"candidate"`
	AppliedAt time.Time               `json:"applied_at"`
	Status    model.ApplicationStatus `json:"status"`
}

// ApplicationService defines the application submission use case.
type ApplicationService interface {
	// Submit persists a candidate's application against an open job and
	// notifies connected admin channels. clientIP keys the rate limiter.
	Submit(ctx context.Context, jobID, clientIP string, in ApplyInput) (*model.Application, error)
}

type applicationService struct {
	jobs    repository.JobRepository
	apps    repository.ApplicationRepository
	audit   repository.AuditRepository
	limiter *ratelimit.Limiter
	hub     Broadcaster
	log     *zap.Logger
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(
	jobs repository.JobRepository,
	apps repository.ApplicationRepository,
	audit repository.AuditRepository,
	limiter *ratelimit.Limiter,
	hub Broadcaster,
	log *zap.Logger,
) ApplicationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &applicationService{jobs: jobs, apps: apps, audit: audit, limiter: limiter, hub: hub, log: log}
}

func (s *applicationService) Submit(ctx context.Context, jobID, clientIP string, in ApplyInput) (*model.Application, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}

	// The rate check runs before any document store access; a rejected
	// call must leave no trace.
	if !s.limiter.Allow(applyRateKey, clientIP, applyRateLimit, applyRateWindow) {
		return nil, ErrRateLimited
	}

	if _, err := s.jobs.FindOpenByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, fmt.Errorf("%w: job not found or closed", ErrNotFound)
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	app := &model.Application{
		ID:            uuid.NewString(),
		JobID:         jobID,
		Candidate:     model.Candidate{Name: in.Name, Email: in.Email, Phone: in.Phone},
		ResumeMediaID: in.ResumeMediaID,
		CoverLetter:   in.CoverLetter,
		Status:        model.ApplicationStatusApplied,
		Notes:         []model.Note{},
		AppliedAt:     time.Now().UTC(),
	}

	stored, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	// Audit is best effort; the submission already succeeded.
	if err := s.audit.Write(ctx, &model.AuditLog{
		ID:        uuid.NewString(),
		Model:     "application",
		ModelID:   stored.ID,
		Action:    "created",
		Meta:      map[string]any{"job_id": jobID},
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		s.log.Warn("audit write failed", zap.String("model", "application"), zap.Error(err))
	}

	s.hub.Broadcast(EventApplicationNew, applicationEcho{
		JobID:     stored.JobID,
		Candidate: stored.Candidate,
		AppliedAt: stored.AppliedAt,
		Status:    stored.Status,
	})

	return stored, nil
}
