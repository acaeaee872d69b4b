// Package progress provides a lightweight tracker that keeps aggregated
// counters (jobs total, succeeded, failed, running) for a single batch run.
// The tracker instance lives in the context – every component that receives
// the context can update the counters via UpdateCtx without a global registry.

package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/recrypt/internal/clock"
)

// Delta represents an incremental counter change. The fields are signed and
// therefore can be either positive (increment) or negative (decrement).
type Delta struct {
	Total     int
	Succeeded int
	Failed    int
	Running   int
}

// Progress keeps aggregated job counters for a batch.  It is safe for
// concurrent use.
type Progress struct {
	BatchID   string
	StartedAt time.Time

	TotalJobs     int
	SucceededJobs int
	FailedJobs    int
	RunningJobs   int

	sync.Mutex
	onChange func(Progress)
}

// Done reports whether every registered job has finished.
func (p *Progress) Done() bool {
	if p == nil {
		return true
	}
	p.Lock()
	defer p.Unlock()
	return p.RunningJobs == 0 && p.SucceededJobs+p.FailedJobs >= p.TotalJobs
}

// Update applies the supplied delta. If an onChange callback has been
// registered it is invoked with a copy of the tracker outside the critical
// section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.TotalJobs += d.Total
	p.SucceededJobs += d.Succeeded
	p.FailedJobs += d.Failed
	p.RunningJobs += d.Running

	snapshot := p.copyLocked()
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copyLocked()
}

func (p *Progress) copyLocked() Progress {
	return Progress{
		BatchID:       p.BatchID,
		StartedAt:     p.StartedAt,
		TotalJobs:     p.TotalJobs,
		SucceededJobs: p.SucceededJobs,
		FailedJobs:    p.FailedJobs,
		RunningJobs:   p.RunningJobs,
	}
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, batchID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		BatchID:   batchID,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
