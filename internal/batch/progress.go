package batch

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// ProgressCallback receives progress updates during Run.
type ProgressCallback func(progress *Progress)

// Progress tracks how many profiles have been assessed.
// It is safe for concurrent use.
type Progress struct {
	total     int
	succeeded int
	failed    int
	startTime time.Time

	mu sync.RWMutex
}

// NewProgress creates a tracker for total items.
func NewProgress(total int) *Progress {
	return &Progress{total: total, startTime: time.Now()}
}

// Add records one finished item.
func (p *Progress) Add(ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ok {
		p.succeeded++
	} else {
		p.failed++
	}
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentCompleteUnsafe()
}

// IsComplete returns true if all items have been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.succeeded+p.failed >= p.total
}

// Snapshot returns a copy of the current progress state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		Total:           p.total,
		Succeeded:       p.succeeded,
		Failed:          p.failed,
		PercentComplete: p.percentCompleteUnsafe(),
		Elapsed:         time.Since(p.startTime),
	}
}

// ProgressSnapshot is an immutable snapshot of progress state.
type ProgressSnapshot struct {
	Total           int
	Succeeded       int
	Failed          int
	PercentComplete float64
	Elapsed         time.Duration
}

// percentCompleteUnsafe must be called with the lock held.
func (p *Progress) percentCompleteUnsafe() float64 {
	if p.total == 0 {
		return 0
	}
	return float64(p.succeeded+p.failed) / float64(p.total) * percentMultiplier
}
