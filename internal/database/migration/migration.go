package migration

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// StepResult is the outcome of one index or validator setup step.
type StepResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type setupStep struct {
	Name string
	Run  func(ctx context.Context, db *mongo.Database) error
}

var steps = []setupStep{
	{
		Name: "index_jobs_id_unique",
		Run: func(ctx context.Context, db *mongo.Database) error {
			_, err := db.Collection("jobs").Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true),
			})
			return err
		},
	},
	{
		Name: "index_jobs_listing",
		Run: func(ctx context.Context, db *mongo.Database) error {
			_, err := db.Collection("jobs").Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys: bson.D{
					{Key: "country", Value: 1},
					{Key: "job_type", Value: 1},
					{Key: "status", Value: 1},
					{Key: "featured", Value: -1},
				},
			})
			return err
		},
	},
	{
		Name: "index_jobs_text",
		Run: func(ctx context.Context, db *mongo.Database) error {
			_, err := db.Collection("jobs").Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys: bson.D{
					{Key: "title", Value: "text"},
					{Key: "description", Value: "text"},
					{Key: "company.name", Value: "text"},
				},
			})
			return err
		},
	},
	{
		Name: "index_applications_job_status",
		Run: func(ctx context.Context, db *mongo.Database) error {
			_, err := db.Collection("applications").Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys: bson.D{
					{Key: "job_id", Value: 1},
					{Key: "status", Value: 1},
				},
			})
			return err
		},
	},
	{
		Name: "index_applications_candidate_text",
		Run: func(ctx context.Context, db *mongo.Database) error {
			_, err := db.Collection("applications").Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys: bson.D{
					{Key: "candidate.name", Value: "text"},
					{Key: "candidate.email", Value: "text"},
				},
			})
			return err
		},
	},
	{
		Name: "validator_jobs",
		Run: func(ctx context.Context, db *mongo.Database) error {
			return runCollMod(ctx, db, "jobs", jobsValidator)
		},
	},
	{
		Name: "validator_applications",
		Run: func(ctx context.Context, db *mongo.Database) error {
			return runCollMod(ctx, db, "applications", applicationsValidator)
		},
	},
}

// EnsureSetup runs index and schema-validator creation. Every step is
// idempotent and failures are isolated: a failing step is logged and
// recorded in its result, and the remaining steps still run. The caller
// surfaces the results through the health endpoint.
func EnsureSetup(ctx context.Context, db *mongo.Database, log *zap.Logger) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		if err := step.Run(ctx, db); err != nil {
			log.Warn("startup setup step failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)
			results = append(results, StepResult{Name: step.Name, OK: false, Error: err.Error()})
			continue
		}
		log.Info("startup setup step applied", zap.String("step", step.Name))
		results = append(results, StepResult{Name: step.Name, OK: true})
	}
	return results
}

// runCollMod creates the collection if needed, then applies a moderate
// $jsonSchema validator. collMod may require privileges the service user
// does not have, which is why validator steps are best-effort.
func runCollMod(ctx context.Context, db *mongo.Database, coll string, validator bson.M) error {
	// CreateCollection errors when the collection already exists; that is
	// the idempotent case and not a failure.
	_ = db.CreateCollection(ctx, coll)
	return db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: coll},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
	}).Err()
}

var jobsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"title", "country", "status", "created_at"},
		"properties": bson.M{
			"title": bson.M{"bsonType": "string"},
			"slug":  bson.M{"bsonType": "string"},
			"company": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"name":          bson.M{"bsonType": "string"},
					"logo_media_id": bson.M{"bsonType": "string"},
				},
			},
			"country":  bson.M{"bsonType": "string"},
			"city":     bson.M{"bsonType": "string"},
			"job_type": bson.M{"enum": []string{"full-time", "part-time", "contract", "temporary", "work", "study", "both"}},
			"salary": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"min":      bson.M{"bsonType": []string{"int", "long", "double"}},
					"max":      bson.M{"bsonType": []string{"int", "long", "double"}},
					"currency": bson.M{"bsonType": "string"},
				},
			},
			"description":  bson.M{"bsonType": "string"},
			"requirements": bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
			"featured":     bson.M{"bsonType": "bool"},
			"status":       bson.M{"enum": []string{"draft", "active", "closed"}},
			"created_at":   bson.M{"bsonType": "date"},
		},
	},
}

var applicationsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"job_id", "candidate", "applied_at"},
		"properties": bson.M{
			"job_id": bson.M{"bsonType": "string"},
			"candidate": bson.M{
				"bsonType": "object",
				"required": []string{"name", "email", "phone"},
				"properties": bson.M{
					"name":  bson.M{"bsonType": "string"},
					"email": bson.M{"bsonType": "string"},
					"phone": bson.M{"bsonType": "string"},
				},
			},
			"resume_media_id": bson.M{"bsonType": "string"},
			"cover_letter":    bson.M{"bsonType": "string"},
			"status":          bson.M{"enum": []string{"applied", "screening", "interview", "offered", "rejected"}},
			"notes":           bson.M{"bsonType": "array"},
			"applied_at":      bson.M{"bsonType": "date"},
		},
	},
}
