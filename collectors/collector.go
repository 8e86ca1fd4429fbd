// Package collectors provides the data collection interface, registration,
// and scheduling for systop's metric gathering. Each collector owns one data
// source and is polled on its own goroutine at its own cadence.
package collectors

import (
	"context"
	"sync"
	"time"
)

// Collector is the interface all metric collectors implement. A collector
// gathers one snapshot of its source per Collect call. Collect may block on
// OS calls for tens of milliseconds; it always runs off the UI loop.
type Collector interface {
	// Name returns the collector's unique identifier (e.g. "system").
	// Names must be unique within a Registry.
	Name() string

	// Description returns a human-readable description of what this
	// collector gathers.
	Description() string

	// Interval returns the polling interval the runner schedules this
	// collector at.
	Interval() time.Duration

	// Collect gathers one snapshot. The context should be respected for
	// cancellation. Collect is assumed side-effect-free on retry.
	Collect(ctx context.Context) (any, error)
}

// Update is one collection result fanned in to the consumer channel.
type Update struct {
	// Source is the name of the collector that produced this update.
	Source string

	// Data is the collector-specific snapshot. Nil when Err is set.
	Data any

	// Timestamp records when the collection started.
	Timestamp time.Time

	// Err is the collection failure, if any. A failed cycle is skipped by
	// consumers; the previous state is retained.
	Err error
}

// Status tracks a collector's run health, maintained by the Runner.
type Status struct {
	Name        string
	Healthy     bool
	LastRun     time.Time
	LastLatency time.Duration
	RunCount    int64
	ErrorCount  int64
	LastError   error
}

// Registry holds registered collectors and their run status.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	collectors map[string]Collector
	status     map[string]*Status
}

// NewRegistry creates an empty collector registry.
func NewRegistry() *Registry {
	return &Registry{
		collectors: make(map[string]Collector),
		status:     make(map[string]*Status),
	}
}

// Register adds a collector. A collector with the same name replaces the
// existing one, keeping its registration order.
func (r *Registry) Register(c Collector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.collectors[name]; !exists {
		r.order = append(r.order, name)
		r.status[name] = &Status{Name: name}
	}
	r.collectors[name] = c
}

// Get returns a collector by name.
func (r *Registry) Get(name string) (Collector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.collectors[name]
	return c, ok
}

// List returns collector names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AllStatus returns a copy of every collector's status.
func (r *Registry) AllStatus() []Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Status, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.status[name])
	}
	return out
}

// updateStatus applies fn to the named collector's status under the lock.
func (r *Registry) updateStatus(name string, fn func(*Status)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.status[name]; ok {
		fn(s)
	}
}
