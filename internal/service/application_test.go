package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobboard/internal/model"
	"jobboard/internal/ratelimit"
	"jobboard/internal/repository"
	repoMocks "jobboard/internal/repository/mocks"
)

// recordingHub captures broadcasts without a real connection registry.
type recordingHub struct {
	mu     sync.Mutex
	events []string
	data   []any
}

func (h *recordingHub) Broadcast(event string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	h.data = append(h.data, data)
}

func validInput() ApplyInput {
	return ApplyInput{Name: "Asha Rai", Email: "asha@example.com", Phone: "+977-555-0100"}
}

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      ApplyInput
		setupMocks func(mJobs *repoMocks.MockJobRepository, mApps *repoMocks.MockApplicationRepository, mAudit *repoMocks.MockAuditRepository)
		wantErr    error
		wantEvents int
	}{
		{
			name:  "happy path",
			input: validInput(),
			setupMocks: func(mJobs *repoMocks.MockJobRepository, mApps *repoMocks.MockApplicationRepository, mAudit *repoMocks.MockAuditRepository) {
				mJobs.On("FindOpenByID", ctx, "j1").Return(&model.Job{ID: "j1", Status: model.JobStatusActive}, nil)
				mApps.On("Create", ctx, mock.MatchedBy(func(a *model.Application) bool {
					return a.JobID == "j1" &&
						a.Status == model.ApplicationStatusApplied &&
						a.Notes != nil && len(a.Notes) == 0 &&
						a.ID != ""
				})).Return(func(ctx context.Context, a *model.Application) *model.Application { return a }, nil)
				mAudit.On("Write", ctx, mock.MatchedBy(func(e *model.AuditLog) bool {
					return e.Model == "application" && e.Action == "created"
				})).Return(nil)
			},
			wantEvents: 1,
		},
		{
			name:  "unknown or closed job",
			input: validInput(),
			setupMocks: func(mJobs *repoMocks.MockJobRepository, mApps *repoMocks.MockApplicationRepository, mAudit *repoMocks.MockAuditRepository) {
				mJobs.On("FindOpenByID", ctx, "j1").Return(nil, repository.ErrNoDocument)
			},
			wantErr:    ErrNotFound,
			wantEvents: 0,
		},
		{
			name:  "missing candidate fields",
			input: ApplyInput{Name: "x"},
			setupMocks: func(*repoMocks.MockJobRepository, *repoMocks.MockApplicationRepository, *repoMocks.MockAuditRepository) {
			},
			wantErr:    ErrInvalidInput,
			wantEvents: 0,
		},
		{
			name:  "store failure creates no broadcast",
			input: validInput(),
			setupMocks: func(mJobs *repoMocks.MockJobRepository, mApps *repoMocks.MockApplicationRepository, mAudit *repoMocks.MockAuditRepository) {
				mJobs.On("FindOpenByID", ctx, "j1").Return(&model.Job{ID: "j1"}, nil)
				mApps.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert fail"))
			},
			wantErr:    nil, // checked by message below
			wantEvents: 0,
		},
		{
			name:  "audit failure does not fail the submission",
			input: validInput(),
			setupMocks: func(mJobs *repoMocks.MockJobRepository, mApps *repoMocks.MockApplicationRepository, mAudit *repoMocks.MockAuditRepository) {
				mJobs.On("FindOpenByID", ctx, "j1").Return(&model.Job{ID: "j1"}, nil)
				mApps.On("Create", ctx, mock.Anything).
					Return(func(ctx context.Context, a *model.Application) *model.Application { return a }, nil)
				mAudit.On("Write", ctx, mock.Anything).Return(errors.New("audit down"))
			},
			wantEvents: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mJobs := new(repoMocks.MockJobRepository)
			mApps := new(repoMocks.MockApplicationRepository)
			mAudit := new(repoMocks.MockAuditRepository)
			hub := &recordingHub{}

			svc := NewApplicationService(mJobs, mApps, mAudit, ratelimit.New(), hub, nil)
			tt.setupMocks(mJobs, mApps, mAudit)

			app, err := svc.Submit(ctx, "j1", "203.0.113.7", tt.input)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, app)
			case tt.name == "store failure creates no broadcast":
				assert.ErrorContains(t, err, "save application")
			default:
				require.NoError(t, err)
				require.NotNil(t, app)
				assert.Equal(t, model.ApplicationStatusApplied, app.Status)
			}

			assert.Len(t, hub.events, tt.wantEvents)
			mJobs.AssertExpectations(t)
			mApps.AssertExpectations(t)
			mAudit.AssertExpectations(t)
		})
	}
}

func TestApplicationService_BroadcastPayloadIsSanitized(t *testing.T) {
	ctx := context.Background()

	mJobs := new(repoMocks.MockJobRepository)
	mApps := new(repoMocks.MockApplicationRepository)
	mAudit := new(repoMocks.MockAuditRepository)
	hub := &recordingHub{}

	mJobs.On("FindOpenByID", ctx, "j1").Return(&model.Job{ID: "j1"}, nil)
	mApps.On("Create", ctx, mock.Anything).
		Return(func(ctx context.Context, a *model.Application) *model.Application { return a }, nil)
	mAudit.On("Write", ctx, mock.Anything).Return(nil)

	svc := NewApplicationService(mJobs, mApps, mAudit, ratelimit.New(), hub, nil)

	in := validInput()
	in.CoverLetter = "dear sir or madam"
	in.ResumeMediaID = "m-123"
	app, err := svc.Submit(ctx, "j1", "203.0.113.7", in)
	require.NoError(t, err)

	require.Len(t, hub.events, 1)
	assert.Equal(t, EventApplicationNew, hub.events[0])

	echo, ok := hub.data[0].(applicationEcho)
	require.True(t, ok)
	assert.Equal(t, "j1", echo.JobID)
	assert.Equal(t, app.Candidate, echo.Candidate)
	assert.Equal(t, model.ApplicationStatusApplied, echo.Status)
	// The echo carries no application ID, resume reference or cover letter.
	assert.NotContains(t, []any{echo.JobID, echo.Candidate.Name, echo.Candidate.Email}, app.ID)
}

func TestApplicationService_RateLimited(t *testing.T) {
	ctx := context.Background()

	mJobs := new(repoMocks.MockJobRepository)
	mApps := new(repoMocks.MockApplicationRepository)
	mAudit := new(repoMocks.MockAuditRepository)
	hub := &recordingHub{}

	mJobs.On("FindOpenByID", ctx, "j1").Return(&model.Job{ID: "j1"}, nil)
	mApps.On("Create", ctx, mock.Anything).
		Return(func(ctx context.Context, a *model.Application) *model.Application { return a }, nil)
	mAudit.On("Write", ctx, mock.Anything).Return(nil)

	svc := NewApplicationService(mJobs, mApps, mAudit, ratelimit.New(), hub, nil)

	// Five submissions from the same address within the window succeed.
	for i := 0; i < 5; i++ {
		_, err := svc.Submit(ctx, "j1", "198.51.100.9", validInput())
		require.NoError(t, err, "submission %d", i+1)
	}
	assert.Len(t, hub.events, 5)

	// The sixth fails before touching the store and produces no broadcast.
	_, err := svc.Submit(ctx, "j1", "198.51.100.9", validInput())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Len(t, hub.events, 5)
	mApps.AssertNumberOfCalls(t, "Create", 5)

	// A different address is unaffected.
	_, err = svc.Submit(ctx, "j1", "198.51.100.10", validInput())
	assert.NoError(t, err)
}

func TestApplicationService_AppliedAtIsUTC(t *testing.T) {
	ctx := context.Background()

	mJobs := new(repoMocks.MockJobRepository)
	mApps := new(repoMocks.MockApplicationRepository)
	mAudit := new(repoMocks.MockAuditRepository)

	mJobs.On("FindOpenByID", ctx, "j1").Return(&model.Job{ID: "j1"}, nil)
	mApps.On("Create", ctx, mock.Anything).
		Return(func(ctx context.Context, a *model.Application) *model.Application { return a }, nil)
	mAudit.On("Write", ctx, mock.Anything).Return(nil)

	svc := NewApplicationService(mJobs, mApps, mAudit, ratelimit.New(), &recordingHub{}, nil)

	before := time.Now().UTC()
	app, err := svc.Submit(ctx, "j1", "ip", validInput())
	require.NoError(t, err)
	assert.WithinDuration(t, before, app.AppliedAt, 5*time.Second)
	assert.Equal(t, time.UTC, app.AppliedAt.Location())
}
