package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// JobMongo is a MongoDB implementation of repository.JobRepository.
type JobMongo struct {
	coll *mongo.Collection
}

// NewJobMongo creates a new JobMongo repository.
func NewJobMongo(db *mongo.Database) *JobMongo {
	return &JobMongo{coll: db.Collection("jobs")}
}

var _ repository.JobRepository = (*JobMongo)(nil)

// ListActive returns active jobs matching the filter, featured first,
// newest first.
func (r *JobMongo) ListActive(ctx context.Context, f repository.JobFilter) ([]model.Job, error) {
	filter := bson.M{"status": model.JobStatusActive}
	if f.Country != "" {
		filter["country"] = f.Country
	}
	if f.JobType != "" {
		filter["job_type"] = f.JobType
	}
	if f.Query != "" {
		re := primitive.Regex{Pattern: f.Query, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"company.name": re},
		}
	}

	limit := int64(f.Limit)
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	jobs := make([]model.Job, 0)
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID fetches a single job by its ID.
func (r *JobMongo) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoDocument
		}
		return nil, err
	}
	return &job, nil
}

// FindOpenByID fetches a job by ID unless its status is closed.
func (r *JobMongo) FindOpenByID(ctx context.Context, id string) (*model.Job, error) {
	filter := bson.M{"id": id, "status": bson.M{"$ne": model.JobStatusClosed}}
	var job model.Job
	err := r.coll.FindOne(ctx, filter).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoDocument
		}
		return nil, err
	}
	return &job, nil
}
