package perf

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Timer measures a single operation. Stop logs the duration at debug level and
// warns when it crosses the threshold. A non-nil recorder also receives it.
type Timer struct {
	name      string
	logger    *slog.Logger
	recorder  *Recorder
	start     time.Time
	threshold time.Duration
}

// Stats is a snapshot of a Recorder.
type Stats struct {
	Name          string
	Count         int64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	SlowOps       int64
}

// Recorder aggregates durations of a repeated operation such as availability
// recomputation. Safe for concurrent use.
type Recorder struct {
	name      string
	count     int64
	totalDur  int64
	maxDur    int64
	slowOps   int64
	threshold time.Duration
}

func NewTimer(name string, logger *slog.Logger, recorder *Recorder, threshold time.Duration) *Timer {
	return &Timer{
		name:      name,
		logger:    logger,
		recorder:  recorder,
		start:     time.Now(),
		threshold: threshold,
	}
}

// Stop ends the measurement and returns the elapsed time.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.recorder != nil {
		t.recorder.Record(elapsed)
	}
	if t.logger != nil {
		t.logger.Debug(t.name, "duration_us", elapsed.Microseconds())
		if t.threshold > 0 && elapsed > t.threshold {
			t.logger.Warn(t.name+"_slow", "duration_us", elapsed.Microseconds(), "threshold_us", t.threshold.Microseconds())
		}
	}
	return elapsed
}

func NewRecorder(name string, threshold time.Duration) *Recorder {
	return &Recorder{name: name, threshold: threshold}
}

func (r *Recorder) Record(elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	atomic.AddInt64(&r.count, 1)
	atomic.AddInt64(&r.totalDur, ns)

	for {
		cur := atomic.LoadInt64(&r.maxDur)
		if ns <= cur || atomic.CompareAndSwapInt64(&r.maxDur, cur, ns) {
			break
		}
	}

	if r.threshold > 0 && elapsed >= r.threshold {
		atomic.AddInt64(&r.slowOps, 1)
	}
}

func (r *Recorder) Stats() Stats {
	return Stats{
		Name:          r.name,
		Count:         atomic.LoadInt64(&r.count),
		TotalDuration: time.Duration(atomic.LoadInt64(&r.totalDur)),
		MaxDuration:   time.Duration(atomic.LoadInt64(&r.maxDur)),
		SlowOps:       atomic.LoadInt64(&r.slowOps),
	}
}

func (s Stats) AvgDuration() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Count)
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: %d ops, avg %s, max %s, %d slow", s.Name, s.Count, s.AvgDuration(), s.MaxDuration, s.SlowOps)
}

// LogStats writes the aggregate at debug level. Nothing is logged before the
// first Record.
func (r *Recorder) LogStats(logger *slog.Logger) {
	stats := r.Stats()
	if stats.Count == 0 || logger == nil {
		return
	}
	logger.Debug(r.name+"_stats",
		"count", stats.Count,
		"avg_us", stats.AvgDuration().Microseconds(),
		"max_us", stats.MaxDuration.Microseconds(),
		"slow_ops", stats.SlowOps,
	)
}
