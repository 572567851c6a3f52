package ports

import (
	"context"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

// JobRepository defines read access to the posting collection plus the seed
// path used at startup. Postings have no update or delete operations.
type JobRepository interface {
	// List returns every posting in insertion order.
	List(ctx context.Context) ([]domain.JobPosting, error)
	FindByID(ctx context.Context, id string) (*domain.JobPosting, error)
	Count(ctx context.Context) (int64, error)
	// InsertMany seeds postings. IDs must be unique within the collection.
	InsertMany(ctx context.Context, jobs []domain.JobPosting) error
}
