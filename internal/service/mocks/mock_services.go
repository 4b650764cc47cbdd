package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/service"
	"jobboard/internal/session"
)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) List(ctx context.Context, f repository.JobFilter) ([]model.Job, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobService) Get(ctx context.Context, id string) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, jobID, clientIP string, in service.ApplyInput) (*model.Application, error) {
	args := m.Called(ctx, jobID, clientIP, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) PresignUpload(ctx context.Context, clientIP string, in service.PresignInput) (*service.PresignResult, error) {
	args := m.Called(ctx, clientIP, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PresignResult), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockContentService) CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockContentService) ListPartners(ctx context.Context) ([]model.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Partner), args.Error(1)
}

func (m *MockContentService) CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Partner), args.Error(1)
}

func (m *MockContentService) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockContentService) CreateBlogPost(ctx context.Context, b *model.BlogPost) (*model.BlogPost, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *session.Session, error) {
	args := m.Called(ctx, email, password)
	var sess *session.Session
	if args.Get(1) != nil {
		sess = args.Get(1).(*session.Session)
	}
	return args.String(0), sess, args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Find(ctx context.Context, req service.FindRequest) ([]bson.M, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockAdminService) InsertOne(ctx context.Context, collection string, doc map[string]any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockAdminService) UpdateOne(ctx context.Context, collection string, filter, update map[string]any) (int64, int64, error) {
	args := m.Called(ctx, collection, filter, update)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminService) DeleteOne(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}
