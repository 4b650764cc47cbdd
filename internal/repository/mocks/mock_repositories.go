package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) ListActive(ctx context.Context, f repository.JobFilter) ([]model.Job, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepository) FindOpenByID(ctx context.Context, id string) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.Application) *model.Application); ok {
		return f(ctx, app), args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, md *model.Media) (*model.Media, error) {
	args := m.Called(ctx, md)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Write(ctx context.Context, entry *model.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Find(ctx context.Context, collection string, q repository.AdminQuery) ([]bson.M, error) {
	args := m.Called(ctx, collection, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockAdminRepository) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockAdminRepository) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, int64, error) {
	args := m.Called(ctx, collection, filter, update)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockContentRepository) CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockContentRepository) ListPartners(ctx context.Context, limit int) ([]model.Partner, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Partner), args.Error(1)
}

func (m *MockContentRepository) CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Partner), args.Error(1)
}

func (m *MockContentRepository) ListBlogPosts(ctx context.Context, limit int) ([]model.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockContentRepository) CreateBlogPost(ctx context.Context, b *model.BlogPost) (*model.BlogPost, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}
