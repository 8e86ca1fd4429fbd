// Package history maintains bounded rolling-history buffers for the metric
// series charted by the dashboard, plus the rate derivation for cumulative
// network counters.
package history

// SeriesID identifies one charted metric series.
type SeriesID int

const (
	// SeriesCPU is aggregate CPU usage percent.
	SeriesCPU SeriesID = iota
	// SeriesMemory is memory usage percent.
	SeriesMemory
	// SeriesNetRx is the derived network receive rate in bytes/sec.
	SeriesNetRx
	// SeriesNetTx is the derived network transmit rate in bytes/sec.
	SeriesNetTx

	seriesCount
)

// DefaultCapacity is the number of samples retained per series. At a
// 1-second poll interval this covers one minute of history.
const DefaultCapacity = 60

// Store holds one fixed-capacity ring buffer per series. All series share
// the same capacity so chart widths align. Store is not safe for concurrent
// use; the owning model serializes access.
type Store struct {
	capacity int
	series   [seriesCount][]float64
}

// NewStore creates a Store whose series each retain capacity samples.
// A non-positive capacity falls back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Capacity returns the per-series sample capacity.
func (s *Store) Capacity() int {
	return s.capacity
}

// Push appends one sample to the identified series, evicting the oldest
// sample when the series is full. Negative values are clamped to 0 rather
// than rejected, so a transient bad read cannot corrupt a chart.
func (s *Store) Push(id SeriesID, value float64) {
	if id < 0 || id >= seriesCount {
		return
	}
	if value < 0 {
		value = 0
	}
	buf := append(s.series[id], value)
	if len(buf) > s.capacity {
		buf = buf[len(buf)-s.capacity:]
	}
	s.series[id] = buf
}

// Snapshot returns a copy of the identified series, oldest-first. The copy
// is safe to hand to a renderer while the store keeps mutating.
func (s *Store) Snapshot(id SeriesID) []float64 {
	if id < 0 || id >= seriesCount {
		return nil
	}
	out := make([]float64, len(s.series[id]))
	copy(out, s.series[id])
	return out
}

// Len returns the number of samples currently held for the series.
func (s *Store) Len(id SeriesID) int {
	if id < 0 || id >= seriesCount {
		return 0
	}
	return len(s.series[id])
}

// Latest returns the most recent sample for the series, or 0 if empty.
func (s *Store) Latest(id SeriesID) float64 {
	if id < 0 || id >= seriesCount || len(s.series[id]) == 0 {
		return 0
	}
	return s.series[id][len(s.series[id])-1]
}
