package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"jobboard/internal/config"
)

// NewMongo connects to MongoDB with the OTel command monitor attached and
// verifies connectivity with a short timeout. The returned database handle
// is safe for concurrent use.
func NewMongo(c config.MongoConfig) (*mongo.Database, func(context.Context) error, error) {
	if c.URI == "" {
		return nil, nil, fmt.Errorf("invalid mongo config: uri is required")
	}
	if c.Database == "" {
		return nil, nil, fmt.Errorf("invalid mongo config: database is required")
	}

	opts := options.Client().
		ApplyURI(c.URI).
		SetMonitor(otelmongo.NewMonitor())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(c.Database), client.Disconnect, nil
}
