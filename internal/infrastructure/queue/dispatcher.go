package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/api/metrics"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes activity records to a fixed set of workers using
// consistent hashing on the owner, guaranteeing per-user record ordering.
// Handlers enqueue and move on; persistence happens off the request path.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	writer  ports.ActivityWriter
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, writer ports.ActivityWriter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		writer:  writer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an activity to the worker responsible for its owner.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(input ports.ActivityInput) {
	d.workers[d.shardIndex(input.Owner)] <- input
}

// shardIndex maps an owner deterministically to a worker index.
func (d *Dispatcher) shardIndex(owner string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(owner))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.writer.Write(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("owner", input.Owner).
					Str("entity", input.Entity).
					Int("worker_id", id).
					Msg("activity write failed")
				continue
			}
			metrics.ActivitiesRecordedTotal.WithLabelValues(input.Entity).Inc()
		}
	}
}
