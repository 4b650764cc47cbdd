package model

import "time"

// ApplicationStatus tracks a candidate through the pipeline. Transitions
// are not constrained; any status may be assigned at any time.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffered   ApplicationStatus = "offered"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Candidate is the applicant contact info embedded in an application.
type Candidate struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Note is one free-form note attached to an application by an admin.
type Note struct {
	Text      string    `json:"text" bson:"text"`
	AuthorID  string    `json:"author_id,omitempty" bson:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Application is a candidate's submission against a job. It must
// reference an existing, non-closed job at creation time.
type Application struct {
	ID            string            `json:"id" bson:"id"`
	JobID         string            `json:"job_id" bson:"job_id"`
	Candidate     Candidate         `json:"candidate" bson:"candidate"`
	ResumeMediaID string            `json:"resume_media_id,omitempty" bson:"resume_media_id,omitempty"`
	CoverLetter   string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	Status        ApplicationStatus `json:"status" bson:"status"`
	Notes         []Note            `json:"notes" bson:"notes"`
	AppliedAt     time.Time         `json:"applied_at" bson:"applied_at"`
}
