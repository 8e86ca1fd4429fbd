package history

import "time"

// RateTracker converts cumulative byte counters into bytes/sec rates.
//
// The divisor is the wall-clock elapsed time between the two readings, not
// an assumed poll interval, since polling cadence can jitter. A counter that
// decreases between readings (interface restart, counter wrap) yields a rate
// of 0 for that interval and resets the baseline to the new value.
type RateTracker struct {
	prevRx   uint64
	prevTx   uint64
	prevTime time.Time
	primed   bool
}

// Update feeds one counter reading and returns the derived rx/tx rates in
// bytes/sec. The first reading only seeds the baseline: ok is false and no
// rate sample should be recorded for it.
func (t *RateTracker) Update(rx, tx uint64, at time.Time) (rxRate, txRate float64, ok bool) {
	if !t.primed {
		t.prevRx, t.prevTx, t.prevTime = rx, tx, at
		t.primed = true
		return 0, 0, false
	}

	elapsed := at.Sub(t.prevTime).Seconds()
	if elapsed > 0 {
		if rx >= t.prevRx {
			rxRate = float64(rx-t.prevRx) / elapsed
		}
		if tx >= t.prevTx {
			txRate = float64(tx-t.prevTx) / elapsed
		}
	}

	t.prevRx, t.prevTx, t.prevTime = rx, tx, at
	return rxRate, txRate, true
}

// Reset discards the baseline so the next Update seeds it again.
func (t *RateTracker) Reset() {
	t.primed = false
}
