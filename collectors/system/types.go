// Package system provides the host metrics collector for systop. One
// Collect call produces one immutable Snapshot of CPU load, memory, network
// counters, disk usage, and per-process stats via gopsutil.
package system

import "time"

// ProcessInfo is one process's stats within a snapshot. PIDs are unique
// within a snapshot.
type ProcessInfo struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
	Status      string
}

// DiskInfo is the usage of one mounted filesystem. MountPath is unique
// within a snapshot.
type DiskInfo struct {
	Device      string
	MountPath   string
	Fstype      string
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// HostInfo describes the host itself. It changes slowly relative to the
// poll cadence but is cheap to refresh, so it rides every snapshot.
type HostInfo struct {
	Hostname      string
	Platform      string
	KernelVersion string
	UptimeSeconds uint64
	CPUCount      int
}

// Snapshot is one point-in-time read of all monitored metrics. It is
// immutable once returned from Collect.
type Snapshot struct {
	Timestamp time.Time

	// CPUPercent is aggregate CPU usage, 0-100.
	CPUPercent float64

	// MemoryUsed <= MemoryTotal, in bytes.
	MemoryUsed  uint64
	MemoryTotal uint64
	SwapUsed    uint64
	SwapTotal   uint64

	Load1  float64
	Load5  float64
	Load15 float64

	// NetworkRxBytes/TxBytes are cumulative counters summed across
	// interfaces. They are monotonically non-decreasing except when the
	// source restarts; rate derivation handles the decrease.
	NetworkRxBytes uint64
	NetworkTxBytes uint64

	Processes []ProcessInfo
	Disks     []DiskInfo
	Host      HostInfo
}

// MemoryPercent returns memory usage as 0-100.
func (s *Snapshot) MemoryPercent() float64 {
	if s.MemoryTotal == 0 {
		return 0
	}
	return float64(s.MemoryUsed) / float64(s.MemoryTotal) * 100
}

// SwapPercent returns swap usage as 0-100.
func (s *Snapshot) SwapPercent() float64 {
	if s.SwapTotal == 0 {
		return 0
	}
	return float64(s.SwapUsed) / float64(s.SwapTotal) * 100
}
