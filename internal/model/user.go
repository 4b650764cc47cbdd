package model

import "time"

// RoleAdmin is the role required for the admin surface.
const RoleAdmin = "admin"

// User is an admin-panel account. Public API callers never have one.
type User struct {
	ID                 string            `json:"id" bson:"id"`
	Email              string            `json:"email" bson:"email"`
	PasswordHash       string            `json:"-" bson:"password_hash"`
	Roles              []string          `json:"roles" bson:"roles"`
	MFAEnabled         bool              `json:"mfa_enabled" bson:"mfa_enabled"`
	MFASecretEncrypted map[string]string `json:"-" bson:"mfa_secret_encrypted,omitempty"`
	CreatedAt          time.Time         `json:"created_at" bson:"created_at"`
}

// Setting is a keyed configuration record.
type Setting struct {
	ID          string `json:"id" bson:"id"`
	Key         string `json:"key" bson:"key"`
	Value       any    `json:"value" bson:"value"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsPublic    bool   `json:"is_public" bson:"is_public"`
}

// AuditLog records one mutation against a model.
type AuditLog struct {
	ID          string         `json:"id" bson:"id"`
	Model       string         `json:"model" bson:"model"`
	ModelID     string         `json:"model_id" bson:"model_id"`
	Action      string         `json:"action" bson:"action"`
	ActorUserID string         `json:"actor_user_id,omitempty" bson:"actor_user_id,omitempty"`
	Meta        map[string]any `json:"meta" bson:"meta"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

// Page is a slug-addressed CMS page.
type Page struct {
	ID        string    `json:"id" bson:"id"`
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
