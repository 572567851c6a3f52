package ports

import (
	"context"
	"time"
)

// ApplicationInput is the DTO passed from the transport layer to the
// application intake pipeline.
type ApplicationInput struct {
	JobID       string
	ApplicantID string
	Email       string
	Message     string
	SubmittedAt time.Time
}

// ApplicationService processes submitted job applications.
type ApplicationService interface {
	Process(ctx context.Context, in ApplicationInput) error
}
