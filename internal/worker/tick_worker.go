package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dagwood-games/hotdog-tycoon/internal/metrics"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// TickJob advances the simulation by the wall time elapsed since the previous
// tick. Elapsed time is measured inside the job rather than assumed from the
// schedule, so a delayed or skipped tick never loses simulation time.
type TickJob struct {
	svc stand.Service
	now func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewTickJob creates a tick job starting its clock at now
func NewTickJob(svc stand.Service) *TickJob {
	return &TickJob{
		svc:  svc,
		now:  time.Now,
		last: time.Now(),
	}
}

// Process runs one simulation step
func (j *TickJob) Process(ctx context.Context) error {
	j.mu.Lock()
	now := j.now()
	delta := now.Sub(j.last)
	j.last = now
	j.mu.Unlock()

	if delta <= 0 {
		return nil
	}

	start := time.Now()
	j.svc.Advance(ctx, delta)
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	return nil
}
