package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what the event loop did during a session.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input handling
	keyCount   atomic.Uint64
	keyTotalNs atomic.Int64
	idleReads  atomic.Uint64

	// File activity
	saves           atomic.Uint64
	bytesSaved      atomic.Uint64
	externalChanges atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records how long drawing one frame took.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records how long applying one key took.
func (m *Metrics) RecordKey(duration time.Duration) {
	m.keyCount.Add(1)
	m.keyTotalNs.Add(duration.Nanoseconds())
}

// RecordIdle records a key read that timed out.
func (m *Metrics) RecordIdle() {
	m.idleReads.Add(1)
}

// RecordSave records a successful save of n bytes.
func (m *Metrics) RecordSave(n int) {
	m.saves.Add(1)
	m.bytesSaved.Add(uint64(max(n, 0)))
}

// RecordExternalChange records a change made to the file by another
// program.
func (m *Metrics) RecordExternalChange() {
	m.externalChanges.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	keyCount := m.keyCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	var avgKeyNs int64
	if keyCount > 0 {
		avgKeyNs = m.keyTotalNs.Load() / int64(keyCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:          time.Since(m.startTime),
		FrameCount:      frameCount,
		AvgFrameTimeNs:  avgFrameNs,
		MinFrameTimeNs:  minFrameNs,
		MaxFrameTimeNs:  m.frameMaxNs.Load(),
		LastFrameNs:     m.lastFrameNs.Load(),
		KeyCount:        keyCount,
		AvgKeyTimeNs:    avgKeyNs,
		IdleReads:       m.idleReads.Load(),
		Saves:           m.saves.Load(),
		BytesSaved:      m.bytesSaved.Load(),
		ExternalChanges: m.externalChanges.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime          time.Duration
	FrameCount      uint64
	AvgFrameTimeNs  int64
	MinFrameTimeNs  int64
	MaxFrameTimeNs  int64
	LastFrameNs     int64
	KeyCount        uint64
	AvgKeyTimeNs    int64
	IdleReads       uint64
	Saves           uint64
	BytesSaved      uint64
	ExternalChanges uint64
}

// AvgFrameTime returns the average time spent drawing a frame.
func (s MetricsSnapshot) AvgFrameTime() time.Duration {
	return time.Duration(s.AvgFrameTimeNs)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
