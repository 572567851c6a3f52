package domain

import (
	"time"
)

// Application records one jobseeker applying to one posting.
type Application struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	JobID       string    `json:"job_id" bson:"job_id"`
	ApplicantID string    `json:"applicant_id" bson:"applicant_id"`
	Email       string    `json:"email" bson:"email"`
	Message     string    `json:"message,omitempty" bson:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
}
