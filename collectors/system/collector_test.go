package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// newFakeCollector returns a Collector with every probe stubbed to a
// healthy, deterministic reading.
func newFakeCollector() *Collector {
	c := New(time.Second, nil)
	c.cpuPercent = func(ctx context.Context) ([]float64, error) {
		return []float64{42.5}, nil
	}
	c.virtualMemory = func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 16 << 30, Used: 8 << 30}, nil
	}
	c.swapMemory = func(ctx context.Context) (*mem.SwapMemoryStat, error) {
		return &mem.SwapMemoryStat{Total: 4 << 30, Used: 1 << 30}, nil
	}
	c.loadAvg = func(ctx context.Context) (*load.AvgStat, error) {
		return &load.AvgStat{Load1: 1.5, Load5: 1.0, Load15: 0.5}, nil
	}
	c.netCounters = func(ctx context.Context) ([]net.IOCountersStat, error) {
		return []net.IOCountersStat{{BytesRecv: 1000, BytesSent: 2000}}, nil
	}
	c.partitions = func(ctx context.Context) ([]disk.PartitionStat, error) {
		return []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sdb1", Mountpoint: "/data", Fstype: "ext4"},
		}, nil
	}
	c.diskUsage = func(ctx context.Context, path string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Path: path, Total: 100 << 30, Used: 40 << 30, UsedPercent: 40}, nil
	}
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname: "testhost", Platform: "debian", PlatformVersion: "12",
			KernelVersion: "6.1.0", Uptime: 3600,
		}, nil
	}
	c.cpuCounts = func(ctx context.Context) (int, error) { return 8, nil }
	c.listProcs = func(ctx context.Context) ([]ProcessInfo, error) {
		return []ProcessInfo{
			{PID: 1, Name: "init", CPUPercent: 0.1, MemoryBytes: 10 << 20},
			{PID: 42, Name: "worker", CPUPercent: 55.0, MemoryBytes: 500 << 20},
		}, nil
	}
	return c
}

func TestCollectProducesSnapshot(t *testing.T) {
	c := newFakeCollector()

	data, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	snap, ok := data.(*Snapshot)
	if !ok {
		t.Fatalf("expected *Snapshot, got %T", data)
	}

	if snap.CPUPercent != 42.5 {
		t.Errorf("cpu: got %v", snap.CPUPercent)
	}
	if snap.MemoryUsed != 8<<30 || snap.MemoryTotal != 16<<30 {
		t.Errorf("memory: got used=%d total=%d", snap.MemoryUsed, snap.MemoryTotal)
	}
	if snap.MemoryPercent() != 50 {
		t.Errorf("memory percent: got %v", snap.MemoryPercent())
	}
	if snap.NetworkRxBytes != 1000 || snap.NetworkTxBytes != 2000 {
		t.Errorf("network: got rx=%d tx=%d", snap.NetworkRxBytes, snap.NetworkTxBytes)
	}
	if len(snap.Disks) != 2 {
		t.Errorf("disks: got %d", len(snap.Disks))
	}
	if len(snap.Processes) != 2 {
		t.Errorf("processes: got %d", len(snap.Processes))
	}
	if snap.Host.Hostname != "testhost" || snap.Host.CPUCount != 8 {
		t.Errorf("host: got %+v", snap.Host)
	}
	if snap.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestCollectCPUFailureFailsCycle(t *testing.T) {
	c := newFakeCollector()
	c.cpuPercent = func(ctx context.Context) ([]float64, error) {
		return nil, errors.New("proc unavailable")
	}

	if _, err := c.Collect(context.Background()); err == nil {
		t.Error("expected cycle failure when CPU probe fails")
	}
}

func TestCollectMemoryFailureFailsCycle(t *testing.T) {
	c := newFakeCollector()
	c.virtualMemory = func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return nil, errors.New("meminfo unavailable")
	}

	if _, err := c.Collect(context.Background()); err == nil {
		t.Error("expected cycle failure when memory probe fails")
	}
}

func TestCollectDegradesOnOptionalProbeFailure(t *testing.T) {
	c := newFakeCollector()
	probeErr := errors.New("unavailable")
	c.swapMemory = func(ctx context.Context) (*mem.SwapMemoryStat, error) { return nil, probeErr }
	c.loadAvg = func(ctx context.Context) (*load.AvgStat, error) { return nil, probeErr }
	c.netCounters = func(ctx context.Context) ([]net.IOCountersStat, error) { return nil, probeErr }
	c.partitions = func(ctx context.Context) ([]disk.PartitionStat, error) { return nil, probeErr }
	c.listProcs = func(ctx context.Context) ([]ProcessInfo, error) { return nil, probeErr }
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) { return nil, probeErr }

	data, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("optional probe failures must not fail the cycle: %v", err)
	}

	snap := data.(*Snapshot)
	if snap.CPUPercent != 42.5 {
		t.Errorf("required metrics lost: cpu=%v", snap.CPUPercent)
	}
	if len(snap.Disks) != 0 || len(snap.Processes) != 0 {
		t.Errorf("expected empty optional sections, got %d disks %d procs",
			len(snap.Disks), len(snap.Processes))
	}
}

func TestCollectClampsOutOfRangePercents(t *testing.T) {
	c := newFakeCollector()
	c.cpuPercent = func(ctx context.Context) ([]float64, error) {
		return []float64{135.0}, nil
	}

	data, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := data.(*Snapshot).CPUPercent; got != 100 {
		t.Errorf("expected clamp to 100, got %v", got)
	}
}

func TestCollectRespectsCancelledContext(t *testing.T) {
	c := newFakeCollector()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCollectDeduplicatesMountpoints(t *testing.T) {
	c := newFakeCollector()
	c.partitions = func(ctx context.Context) ([]disk.PartitionStat, error) {
		return []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		}, nil
	}

	data, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := len(data.(*Snapshot).Disks); got != 1 {
		t.Errorf("expected duplicate mountpoint collapsed, got %d entries", got)
	}
}
