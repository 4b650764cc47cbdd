package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobboard/internal/repository"
)

// AdminMongo is a MongoDB implementation of repository.AdminRepository.
// It executes caller-supplied filter/update payloads verbatim; sanitizing
// them is the service layer's job.
type AdminMongo struct {
	db *mongo.Database
}

// NewAdminMongo creates a new AdminMongo repository.
func NewAdminMongo(db *mongo.Database) *AdminMongo {
	return &AdminMongo{db: db}
}

var _ repository.AdminRepository = (*AdminMongo)(nil)

// Find runs a generic filtered find with projection, sort, skip and limit.
func (r *AdminMongo) Find(ctx context.Context, collection string, q repository.AdminQuery) ([]bson.M, error) {
	opts := options.Find().SetLimit(q.Limit).SetSkip(q.Skip)
	if q.Projection != nil {
		opts.SetProjection(q.Projection)
	}
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}

	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}

	cur, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}

// InsertOne inserts the document and returns the stringified inserted id.
func (r *AdminMongo) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprintf("%v", id), nil
	}
}

// UpdateOne applies the update to the first matching document.
func (r *AdminMongo) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, int64, error) {
	res, err := r.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, fmt.Errorf("update %s: %w", collection, err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// DeleteOne removes the first matching document.
func (r *AdminMongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := r.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}
