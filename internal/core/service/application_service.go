package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickalba/job-board-system/internal/api/metrics"
	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) that drops repeated
// applications from the same jobseeker to the same posting.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, jobID, applicantID string) (bool, error)
	Mark(ctx context.Context, jobID, applicantID string) error
}

type applicationService struct {
	jobRepo ports.JobRepository
	appRepo ports.ApplicationRepository
	dedup   DedupChecker
	log     zerolog.Logger
}

// NewApplicationService returns an ApplicationService implementation.
func NewApplicationService(
	jobRepo ports.JobRepository,
	appRepo ports.ApplicationRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.ApplicationService {
	return &applicationService{
		jobRepo: jobRepo,
		appRepo: appRepo,
		dedup:   dedup,
		log:     log,
	}
}

// Process validates, deduplicates, and persists a single application.
func (s *applicationService) Process(ctx context.Context, in ports.ApplicationInput) error {
	// 1. Idempotency check — silently skip repeat submissions.
	isDup, err := s.dedup.IsDuplicate(ctx, in.JobID, in.ApplicantID)
	if err != nil {
		s.log.Warn().Err(err).Str("job_id", in.JobID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("job_id", in.JobID).Str("applicant_id", in.ApplicantID).Msg("duplicate application skipped")
		metrics.ApplicationsDedupTotal.WithLabelValues("hit").Inc()
		return nil
	}
	metrics.ApplicationsDedupTotal.WithLabelValues("miss").Inc()

	// 2. The posting must exist and still be open.
	job, err := s.jobRepo.FindByID(ctx, in.JobID)
	if err != nil {
		metrics.ApplicationsErrorsTotal.WithLabelValues("job_not_found").Inc()
		return fmt.Errorf("process application: %w", err)
	}
	if job.Expired(time.Now().UTC()) {
		metrics.ApplicationsErrorsTotal.WithLabelValues("job_expired").Inc()
		return fmt.Errorf("process application: %w", domain.ErrJobExpired)
	}

	// 3. Mark before writing so a retry cannot double-submit.
	if markErr := s.dedup.Mark(ctx, in.JobID, in.ApplicantID); markErr != nil {
		s.log.Warn().Err(markErr).Str("job_id", in.JobID).Msg("failed to set dedup key")
	}

	app := &domain.Application{
		JobID:       in.JobID,
		ApplicantID: in.ApplicantID,
		Email:       in.Email,
		Message:     in.Message,
		SubmittedAt: in.SubmittedAt,
	}
	if err := s.appRepo.Insert(ctx, app); err != nil {
		metrics.ApplicationsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process application: insert: %w", err)
	}

	metrics.ApplicationsReceivedTotal.WithLabelValues(job.Category).Inc()
	s.log.Info().
		Str("job_id", in.JobID).
		Str("applicant_id", in.ApplicantID).
		Str("company", job.Company).
		Msg("application processed")

	return nil
}
