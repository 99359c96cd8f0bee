package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// navigation transitions, mirroring them into OpenTelemetry when configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*upstreamStats
	transitions map[string]int
	requests    map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:       make(map[string]*upstreamStats),
		transitions: make(map[string]int),
		requests:    make(map[string]int),
		otel:        otel,
	}
}

// RecordUpstreamCall counts a call to the league API for the given operation and stores its latency.
func (r *Recorder) RecordUpstreamCall(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[operation]
	if !ok {
		stats = &upstreamStats{}
		r.stats[operation] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(operation, duration, err)
	}
}

// RecordNavigation counts a navigation lifecycle signal.
func (r *Recorder) RecordNavigation(signal string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.transitions[signal]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordNavigation(signal)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics keyed by route pattern.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.requests[path]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many requests were recorded for the route pattern.
func (r *Recorder) HTTPRequests(path string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[path]
}

// Snapshot is a copy of the stats for one upstream operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the operation.
func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Navigations returns how many times the signal has been recorded.
func (r *Recorder) Navigations(signal string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitions[signal]
}
