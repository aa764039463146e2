package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps lightweight process-wide request counters. It is safe for
// concurrent use from every request goroutine.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	statusChanges   uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordStatusChange counts successful assessment-process transitions.
func (c *Collector) RecordStatusChange() {
	atomic.AddUint64(&c.statusChanges, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	changes := atomic.LoadUint64(&c.statusChanges)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":      total,
		"errorsTotal":        errs,
		"rateLimitedTotal":   limited,
		"statusChangesTotal": changes,
		"avgDurationMs":      avg,
	}
}
