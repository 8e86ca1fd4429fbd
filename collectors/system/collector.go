package system

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"gitlab.com/tinyland/lab/systop/collectors"
)

const (
	// CollectorName is the unique identifier for this collector.
	CollectorName = "system"

	collectorDescription = "Host metrics (CPU, memory, processes, network, disks)"

	// defaultInterval matches the 60-sample history buffers: one minute of
	// chart at one sample per second.
	defaultInterval = 1 * time.Second
)

// Collector implements collectors.Collector for local host metrics. All OS
// probes are overridable for tests.
type Collector struct {
	logger   *slog.Logger
	interval time.Duration

	cpuPercent    func(ctx context.Context) ([]float64, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swapMemory    func(ctx context.Context) (*mem.SwapMemoryStat, error)
	loadAvg       func(ctx context.Context) (*load.AvgStat, error)
	netCounters   func(ctx context.Context) ([]net.IOCountersStat, error)
	partitions    func(ctx context.Context) ([]disk.PartitionStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
	hostInfo      func(ctx context.Context) (*host.InfoStat, error)
	cpuCounts     func(ctx context.Context) (int, error)
	listProcs     func(ctx context.Context) ([]ProcessInfo, error)
}

// New creates a Collector polling at the given interval. A non-positive
// interval falls back to one second. A nil logger discards log output.
func New(interval time.Duration, logger *slog.Logger) *Collector {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Collector{
		logger:   logger,
		interval: interval,
		cpuPercent: func(ctx context.Context) ([]float64, error) {
			// interval 0 computes usage since the previous call instead of
			// blocking the poll for a sampling window.
			return cpu.PercentWithContext(ctx, 0, false)
		},
		virtualMemory: mem.VirtualMemoryWithContext,
		swapMemory:    mem.SwapMemoryWithContext,
		loadAvg:       load.AvgWithContext,
		netCounters: func(ctx context.Context) ([]net.IOCountersStat, error) {
			return net.IOCountersWithContext(ctx, false)
		},
		partitions: func(ctx context.Context) ([]disk.PartitionStat, error) {
			return disk.PartitionsWithContext(ctx, false)
		},
		diskUsage: disk.UsageWithContext,
		hostInfo:  host.InfoWithContext,
		cpuCounts: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
	}
	c.listProcs = c.gopsutilProcs
	return c
}

// Name returns the collector's unique identifier.
func (c *Collector) Name() string {
	return CollectorName
}

// Description returns what this collector gathers.
func (c *Collector) Description() string {
	return collectorDescription
}

// Interval returns the configured polling interval.
func (c *Collector) Interval() time.Duration {
	return c.interval
}

// Collect gathers one snapshot. CPU and memory are required: if either
// probe fails the whole cycle fails and the consumer keeps its previous
// state. Process, network, disk, load, and host reads degrade gracefully
// with a log line.
func (c *Collector) Collect(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	snap := &Snapshot{Timestamp: time.Now()}

	cpuPcts, err := c.cpuPercent(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cpu usage: %w", err)
	}
	if len(cpuPcts) > 0 {
		snap.CPUPercent = clampPercent(cpuPcts[0])
	}

	vm, err := c.virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("read memory: %w", err)
	}
	snap.MemoryUsed = vm.Used
	snap.MemoryTotal = vm.Total
	if snap.MemoryUsed > snap.MemoryTotal {
		snap.MemoryUsed = snap.MemoryTotal
	}

	if swap, err := c.swapMemory(ctx); err == nil {
		snap.SwapUsed = swap.Used
		snap.SwapTotal = swap.Total
	} else {
		c.logger.Debug("swap read failed", "error", err)
	}

	if avg, err := c.loadAvg(ctx); err == nil {
		snap.Load1 = avg.Load1
		snap.Load5 = avg.Load5
		snap.Load15 = avg.Load15
	} else {
		c.logger.Debug("loadavg read failed", "error", err)
	}

	if counters, err := c.netCounters(ctx); err == nil && len(counters) > 0 {
		// Pernic=false returns a single aggregated entry.
		snap.NetworkRxBytes = counters[0].BytesRecv
		snap.NetworkTxBytes = counters[0].BytesSent
	} else if err != nil {
		c.logger.Debug("network counters read failed", "error", err)
	}

	snap.Disks = c.readDisks(ctx)

	procs, err := c.listProcs(ctx)
	if err != nil {
		c.logger.Debug("process listing failed", "error", err)
	}
	snap.Processes = procs

	snap.Host = c.readHost(ctx)

	return snap, nil
}

// readDisks returns usage per physical partition. Pseudo filesystems are
// already excluded by partitions(all=false); individual statfs failures
// (stale mounts, permissions) skip the mount.
func (c *Collector) readDisks(ctx context.Context) []DiskInfo {
	parts, err := c.partitions(ctx)
	if err != nil {
		c.logger.Debug("partition listing failed", "error", err)
		return nil
	}

	var disks []DiskInfo
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		if seen[p.Mountpoint] {
			continue
		}
		seen[p.Mountpoint] = true

		usage, err := c.diskUsage(ctx, p.Mountpoint)
		if err != nil || usage == nil || usage.Total == 0 {
			continue
		}
		disks = append(disks, DiskInfo{
			Device:      p.Device,
			MountPath:   p.Mountpoint,
			Fstype:      p.Fstype,
			UsedBytes:   usage.Used,
			TotalBytes:  usage.Total,
			UsedPercent: clampPercent(usage.UsedPercent),
		})
	}
	return disks
}

// readHost fills host identification, best-effort.
func (c *Collector) readHost(ctx context.Context) HostInfo {
	var info HostInfo

	if hi, err := c.hostInfo(ctx); err == nil {
		info.Hostname = hi.Hostname
		info.Platform = hi.Platform + " " + hi.PlatformVersion
		info.KernelVersion = hi.KernelVersion
		info.UptimeSeconds = hi.Uptime
	} else {
		c.logger.Debug("host info read failed", "error", err)
	}

	if n, err := c.cpuCounts(ctx); err == nil {
		info.CPUCount = n
	}

	return info
}

// gopsutilProcs walks the process table. Processes that vanish mid-walk or
// deny access are skipped; nameless kernel threads are dropped.
func (c *Collector) gopsutilProcs(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	rows := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}

		row := ProcessInfo{PID: p.Pid, Name: name}
		if pct, err := p.CPUPercentWithContext(ctx); err == nil {
			row.CPUPercent = pct
		}
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			row.MemoryBytes = mi.RSS
		}
		if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
			row.Status = st[0]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Compile-time interface compliance check.
var _ collectors.Collector = (*Collector)(nil)
