package collectors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultUpdateBufferSize is the default capacity of the updates channel.
	// A buffered channel prevents a slow consumer from blocking collectors.
	DefaultUpdateBufferSize = 64

	// DefaultStopTimeout is the maximum time Stop waits for collector
	// goroutines to finish before returning.
	DefaultStopTimeout = 5 * time.Second
)

// errTracker deduplicates repeated identical errors per collector.
type errTracker struct {
	lastMsg    string
	lastTime   time.Time
	suppressed int64
}

// Runner starts and stops collector goroutines. Each registered collector
// runs in its own goroutine with an independent ticker; results fan in to a
// single updates channel. Failures ride the channel as Update.Err so the
// consumer can surface them without a cycle ever crashing the loop.
type Runner struct {
	registry *Registry
	updates  chan<- Update
	logger   *slog.Logger
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopped  chan struct{}
	once     sync.Once

	errMu       sync.Mutex
	errTrackers map[string]*errTracker
}

// NewRunner creates a runner that sends collection results to the provided
// updates channel. The caller creates and reads from the channel. A nil
// logger discards log output.
func NewRunner(registry *Registry, updates chan<- Update, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		registry:    registry,
		updates:     updates,
		logger:      logger,
		stopped:     make(chan struct{}),
		errTrackers: make(map[string]*errTracker),
	}
}

// Start launches a goroutine per registered collector. Each goroutine runs
// Collect at the collector's Interval, with one immediate run on start. The
// context controls the lifetime of all collector goroutines.
func (r *Runner) Start(ctx context.Context) error {
	ctx, r.cancel = context.WithCancel(ctx)

	names := r.registry.List()
	if len(names) == 0 {
		// Nothing to schedule. Close stopped so Stop doesn't block.
		close(r.stopped)
		return nil
	}

	for _, name := range names {
		c, ok := r.registry.Get(name)
		if !ok {
			continue
		}
		r.wg.Add(1)
		go r.runCollector(ctx, c)
	}

	go func() {
		r.wg.Wait()
		close(r.stopped)
	}()

	return nil
}

// Stop cancels the runner context and waits for collector goroutines to
// finish, bounded by DefaultStopTimeout.
func (r *Runner) Stop() {
	r.once.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
	})

	select {
	case <-r.stopped:
	case <-time.After(DefaultStopTimeout):
		r.logger.Warn("runner stop timed out", "timeout", DefaultStopTimeout)
	}
}

// RunOnce triggers a single out-of-cycle collection for the named collector
// and blocks until it completes. The collector's periodic ticker is not
// touched, so the phase of subsequent scheduled runs is unchanged.
func (r *Runner) RunOnce(ctx context.Context, name string) (any, error) {
	c, ok := r.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("collector %q not found", name)
	}
	return r.collect(ctx, c)
}

// runCollector is the per-collector goroutine.
func (r *Runner) runCollector(ctx context.Context, c Collector) {
	defer r.wg.Done()

	interval := c.Interval()
	if interval <= 0 {
		interval = time.Second
	}

	// Run immediately on start so the UI has data before the first tick.
	r.collectAndSend(ctx, c)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.collectAndSend(ctx, c)
		}
	}
}

// collect performs one collection cycle and records its status.
func (r *Runner) collect(ctx context.Context, c Collector) (any, error) {
	name := c.Name()
	start := time.Now()

	data, err := c.Collect(ctx)
	latency := time.Since(start)

	r.registry.updateStatus(name, func(s *Status) {
		s.LastRun = start
		s.RunCount++
		s.LastLatency = latency
		if err != nil {
			s.ErrorCount++
			s.LastError = err
			s.Healthy = false
		} else {
			s.LastError = nil
			s.Healthy = true
		}
	})

	if err != nil {
		r.logCollectorError(name, err)
	}

	return data, err
}

// logCollectorError deduplicates repeated identical errors from the same
// collector. If the same message recurs within an hour it is suppressed,
// with a summary every 100 suppressions, so a persistently failing probe at
// a 1s cadence cannot flood the log file.
func (r *Runner) logCollectorError(name string, err error) {
	r.errMu.Lock()
	defer r.errMu.Unlock()

	msg := err.Error()
	tracker := r.errTrackers[name]
	if tracker == nil {
		tracker = &errTracker{}
		r.errTrackers[name] = tracker
	}

	now := time.Now()
	if msg == tracker.lastMsg && now.Sub(tracker.lastTime) < time.Hour {
		tracker.suppressed++
		if tracker.suppressed%100 == 0 {
			r.logger.Warn("collection failing repeatedly",
				"collector", name, "repeats", tracker.suppressed, "error", err)
		}
		return
	}
	if tracker.suppressed > 0 {
		r.logger.Warn("previous error repeated",
			"collector", name, "repeats", tracker.suppressed)
	}
	r.logger.Warn("collection failed", "collector", name, "error", err)
	tracker.lastMsg = msg
	tracker.lastTime = now
	tracker.suppressed = 0
}

// collectAndSend runs one cycle and forwards the result on the updates
// channel. The send is non-blocking: if the channel is full the update is
// dropped rather than stalling every collector behind a slow consumer.
func (r *Runner) collectAndSend(ctx context.Context, c Collector) {
	start := time.Now()
	data, err := r.collect(ctx, c)

	if ctx.Err() != nil {
		return
	}

	update := Update{
		Source:    c.Name(),
		Data:      data,
		Timestamp: start,
		Err:       err,
	}

	select {
	case r.updates <- update:
	default:
		r.logger.Warn("update channel full, dropping update", "collector", c.Name())
	}
}
