// Package format provides shared string, byte-size, and time formatting
// utilities for the dashboard.
package format

import "fmt"

// byteUnits are binary-prefixed size suffixes, smallest first.
var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// Bytes renders a byte count as a human-readable binary-prefixed string,
// e.g. "512 B", "1.5 KiB", "8.0 GiB".
func Bytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, byteUnits[unit])
}

// Rate renders a bytes-per-second rate, e.g. "1.5 KiB/s".
func Rate(bytesPerSec float64) string {
	if bytesPerSec < 0 {
		bytesPerSec = 0
	}
	if bytesPerSec < 1024 {
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	}
	v := bytesPerSec
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s/s", v, byteUnits[unit])
}

// Percent renders a 0-100 value with one decimal, clamped to the range.
func Percent(v float64) string {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return fmt.Sprintf("%.1f%%", v)
}
