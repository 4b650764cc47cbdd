package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// ApplicationMongo is a MongoDB implementation of repository.ApplicationRepository.
type ApplicationMongo struct {
	coll *mongo.Collection
}

// NewApplicationMongo creates a new ApplicationMongo repository.
func NewApplicationMongo(db *mongo.Database) *ApplicationMongo {
	return &ApplicationMongo{coll: db.Collection("applications")}
}

var _ repository.ApplicationRepository = (*ApplicationMongo)(nil)

// Create inserts a new application document.
func (r *ApplicationMongo) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// MediaMongo is a MongoDB implementation of repository.MediaRepository.
type MediaMongo struct {
	coll *mongo.Collection
}

// NewMediaMongo creates a new MediaMongo repository.
func NewMediaMongo(db *mongo.Database) *MediaMongo {
	return &MediaMongo{coll: db.Collection("media")}
}

var _ repository.MediaRepository = (*MediaMongo)(nil)

// Create inserts a new media document.
func (r *MediaMongo) Create(ctx context.Context, m *model.Media) (*model.Media, error) {
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a media document by ID. Missing documents are ignored.
func (r *MediaMongo) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	return err
}

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	coll *mongo.Collection
}

// NewUserMongo creates a new UserMongo repository.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection("users")}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// FindByEmail fetches a user by email.
func (r *UserMongo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoDocument
		}
		return nil, err
	}
	return &u, nil
}

// AuditMongo is a MongoDB implementation of repository.AuditRepository.
type AuditMongo struct {
	coll *mongo.Collection
}

// NewAuditMongo creates a new AuditMongo repository.
func NewAuditMongo(db *mongo.Database) *AuditMongo {
	return &AuditMongo{coll: db.Collection("audit_logs")}
}

var _ repository.AuditRepository = (*AuditMongo)(nil)

// Write appends one audit entry.
func (r *AuditMongo) Write(ctx context.Context, entry *model.AuditLog) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}
