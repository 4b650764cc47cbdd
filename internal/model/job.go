package model

import "time"

// JobStatus is the lifecycle state of a job posting.
// Only active jobs are visible through the public API.
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// Company is the employer info embedded in a job document.
type Company struct {
	Name        string `json:"name" bson:"name"`
	LogoMediaID string `json:"logo_media_id,omitempty" bson:"logo_media_id,omitempty"`
}

// Salary is an optional salary range embedded in a job document.
type Salary struct {
	Min      float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max      float64 `json:"max,omitempty" bson:"max,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`
}

// Job represents a job posting. Documents carry a string uuid in the
// "id" field rather than relying on Mongo's ObjectID.
type Job struct {
	ID           string    `json:"id" bson:"id"`
	Slug         string    `json:"slug,omitempty" bson:"slug,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Company      *Company  `json:"company,omitempty" bson:"company,omitempty"`
	Country      string    `json:"country" bson:"country"`
	City         string    `json:"city,omitempty" bson:"city,omitempty"`
	JobType      string    `json:"job_type" bson:"job_type"`
	Salary       *Salary   `json:"salary,omitempty" bson:"salary,omitempty"`
	Requirements []string  `json:"requirements" bson:"requirements"`
	Featured     bool      `json:"featured" bson:"featured"`
	Status       JobStatus `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
