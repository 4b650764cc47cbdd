package model

import "time"

// Media is a pre-registered storage object. The record is created before
// the physical object exists; if the presigned upload never completes
// the record stays orphaned.
type Media struct {
	ID             string    `json:"id" bson:"id"`
	Path           string    `json:"path" bson:"path"`
	Mime           string    `json:"mime,omitempty" bson:"mime,omitempty"`
	Size           int64     `json:"size,omitempty" bson:"size,omitempty"`
	Sensitive      bool      `json:"sensitive" bson:"sensitive"`
	StorageBackend string    `json:"storage_backend" bson:"storage_backend"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
