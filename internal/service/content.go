package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const contentListLimit = 100

// ContentService serves the public marketing content collections.
type ContentService interface {
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error)

	ListPartners(ctx context.Context) ([]model.Partner, error)
	CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error)

	ListBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	CreateBlogPost(ctx context.Context, b *model.BlogPost) (*model.BlogPost, error)
}

type contentService struct {
	content repository.ContentRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(content repository.ContentRepository) ContentService {
	return &contentService{content: content}
}

func (s *contentService) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return s.content.ListTestimonials(ctx, contentListLimit)
}

func (s *contentService) CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	if t.Name == "" || t.Content == "" {
		return nil, fmt.Errorf("%w: name and content are required", ErrInvalidInput)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	t.IsActive = true
	t.CreatedAt = time.Now().UTC()
	return s.content.CreateTestimonial(ctx, t)
}

func (s *contentService) ListPartners(ctx context.Context) ([]model.Partner, error) {
	return s.content.ListPartners(ctx, contentListLimit)
}

func (s *contentService) CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.IsActive = true
	return s.content.CreatePartner(ctx, p)
}

func (s *contentService) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.content.ListBlogPosts(ctx, contentListLimit)
}

func (s *contentService) CreateBlogPost(ctx context.Context, b *model.BlogPost) (*model.BlogPost, error) {
	if b.Title == "" || b.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.IsPublished = true
	if b.PublishedAt.IsZero() {
		b.PublishedAt = time.Now().UTC()
	}
	return s.content.CreateBlogPost(ctx, b)
}
