package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// ContentMongo is a MongoDB implementation of repository.ContentRepository.
// Content collections are read with an is_active / is_published filter and
// written as-is.
type ContentMongo struct {
	db *mongo.Database
}

// NewContentMongo creates a new ContentMongo repository.
func NewContentMongo(db *mongo.Database) *ContentMongo {
	return &ContentMongo{db: db}
}

var _ repository.ContentRepository = (*ContentMongo)(nil)

func (r *ContentMongo) ListTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	out := make([]model.Testimonial, 0)
	err := r.list(ctx, "testimonials", bson.M{"is_active": true}, limit, &out)
	return out, err
}

func (r *ContentMongo) CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	if _, err := r.db.Collection("testimonials").InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *ContentMongo) ListPartners(ctx context.Context, limit int) ([]model.Partner, error) {
	out := make([]model.Partner, 0)
	err := r.list(ctx, "partners", bson.M{"is_active": true}, limit, &out)
	return out, err
}

func (r *ContentMongo) CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	if _, err := r.db.Collection("partners").InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ContentMongo) ListBlogPosts(ctx context.Context, limit int) ([]model.BlogPost, error) {
	out := make([]model.BlogPost, 0)
	err := r.list(ctx, "blog_posts", bson.M{"is_published": true}, limit, &out)
	return out, err
}

func (r *ContentMongo) CreateBlogPost(ctx context.Context, b *model.BlogPost) (*model.BlogPost, error) {
	if _, err := r.db.Collection("blog_posts").InsertOne(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *ContentMongo) list(ctx context.Context, coll string, filter bson.M, limit int, out any) error {
	if limit <= 0 {
		limit = 100
	}
	cur, err := r.db.Collection(coll).Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
