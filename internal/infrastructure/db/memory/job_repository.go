package memory

import (
	"context"
	"sync"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

// JobRepository is an in-memory posting store. It backs tests and local runs
// without Mongo, and is the authoritative shape of the static data source:
// read-mostly, insert-only, always returning copies.
type JobRepository struct {
	mu   sync.RWMutex
	jobs []domain.JobPosting
	byID map[string]int
}

// NewJobRepository returns an empty repository.
func NewJobRepository() *JobRepository {
	return &JobRepository{byID: make(map[string]int)}
}

// NewSeededJobRepository returns a repository preloaded with the canonical
// corpus.
func NewSeededJobRepository() *JobRepository {
	r := NewJobRepository()
	_ = r.InsertMany(context.Background(), SeedJobs())
	return r
}

func (r *JobRepository) List(_ context.Context) ([]domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.JobPosting, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *JobRepository) FindByID(_ context.Context, id string) (*domain.JobPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	job := r.jobs[idx]
	return &job, nil
}

func (r *JobRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.jobs)), nil
}

func (r *JobRepository) InsertMany(_ context.Context, jobs []domain.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range jobs {
		if _, exists := r.byID[j.ID]; exists {
			continue
		}
		r.byID[j.ID] = len(r.jobs)
		r.jobs = append(r.jobs, j)
	}
	return nil
}
