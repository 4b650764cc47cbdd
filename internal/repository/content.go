package repository

import (
	"context"

	"jobboard/internal/model"
)

// ContentRepository defines data access for public marketing content.
type ContentRepository interface {
	ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error)

	ListPartners(ctx context.Context, limit int) ([]model.Partner, error)
	CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error)

	ListBlogPosts(ctx context.Context, limit int) ([]model.BlogPost, error)
	CreateBlogPost(ctx context.Context, b *model.BlogPost) (*model.BlogPost, error)
}
