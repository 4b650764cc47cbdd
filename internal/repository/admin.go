package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminQuery carries the parameters of a generic find. Filter and
// projection/sort payloads are caller-supplied; the service layer is
// responsible for sanitizing them before they reach the store.
type AdminQuery struct {
	Filter     bson.M
	Projection bson.M
	// Sort is an ordered list of (field, direction) pairs.
	Sort  bson.D
	Limit int64
	Skip  int64
}

// AdminRepository is the generic document access surface behind the
// admin gateway. Collection names must already be validated against the
// allow-list before any of these are called.
type AdminRepository interface {
	Find(ctx context.Context, collection string, q AdminQuery) ([]bson.M, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (string, error)
	UpdateOne(ctx context.Context, collection string, filter, update bson.M) (matched, modified int64, err error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)
}
