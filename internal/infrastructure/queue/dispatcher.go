package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/quickalba/job-board-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes applications to a fixed set of workers using consistent
// hashing on the job ID, so applications to the same posting are processed in
// submission order.
type Dispatcher struct {
	workers []chan ports.ApplicationInput
	service ports.ApplicationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ApplicationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ApplicationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ApplicationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an application to the worker responsible for its posting.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(app ports.ApplicationInput) {
	d.workers[d.shardIndex(app.JobID)] <- app
}

// shardIndex maps a job ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(jobID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(jobID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ApplicationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case app, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, app); err != nil {
				d.log.Error().Err(err).
					Str("job_id", app.JobID).
					Str("applicant_id", app.ApplicantID).
					Int("worker_id", id).
					Msg("application processing failed")
			}
		}
	}
}
