package sysinfo

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/lincooln/dockboard/internal/domain"
)

// Collector implements domain.HostStatsSource on top of the gopsutil
// library, with a short TTL cache in front of the sampling.
type Collector struct {
	clock   clockwork.Clock
	ttl     time.Duration
	hostIP  func() string
	sysPath string

	sampleFn func(ctx context.Context) domain.HostStats

	mu        sync.Mutex
	cached    domain.HostStats
	sampledAt time.Time
	primed    bool
}

// NewCollector creates a collector. hostIP supplies the address shown as the
// host's local IP; ttl bounds how often the host is actually sampled.
func NewCollector(hostIP func() string, ttl time.Duration, clock clockwork.Clock) *Collector {
	c := &Collector{
		clock:   clock,
		ttl:     ttl,
		hostIP:  hostIP,
		sysPath: "/sys",
	}
	c.sampleFn = c.sample
	return c
}

// HostStats returns the latest sample, refreshing it when the cache TTL has
// passed. Individual metric failures degrade to zero values rather than
// failing the whole sample.
func (c *Collector) HostStats(ctx context.Context) (domain.HostStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.HostStats{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.primed && c.clock.Since(c.sampledAt) < c.ttl {
		return c.cached, nil
	}

	c.cached = c.sampleFn(ctx)
	c.sampledAt = c.clock.Now()
	c.primed = true
	return c.cached, nil
}

func (c *Collector) sample(ctx context.Context) domain.HostStats {
	stats := domain.HostStats{
		CPUTemp: cpuTemperature(ctx, c.sysPath),
		Disks:   c.disks(ctx),
	}

	if hostname, err := os.Hostname(); err == nil {
		stats.Hostname = hostname
	}

	if ip := c.hostIP(); ip != "" && ip != fallbackHostIP {
		stats.LocalIPs = append(stats.LocalIPs, ip)
	}

	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	} else if err != nil {
		slog.Warn("failed to sample cpu usage", "error", err)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.Memory = domain.MemoryStats{Total: vm.Total, Used: vm.Used, Percent: vm.UsedPercent}
	} else {
		slog.Warn("failed to sample memory usage", "error", err)
	}

	return stats
}

func (c *Collector) disks(ctx context.Context) []domain.Disk {
	partitions, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		slog.Warn("failed to list disk partitions", "error", err)
		return []domain.Disk{}
	}

	disks := make([]domain.Disk, 0, len(partitions))
	for _, p := range partitions {
		if skipPartition(p.Device, p.Fstype, p.Mountpoint) {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			slog.Warn("failed to read disk usage", "mountpoint", p.Mountpoint, "error", err)
			continue
		}

		icon, kind := classifyFilesystem(p.Fstype, p.Device, p.Mountpoint)
		disks = append(disks, domain.Disk{
			Mountpoint: p.Mountpoint,
			Device:     p.Device,
			Fstype:     p.Fstype,
			Total:      usage.Total,
			Used:       usage.Used,
			Percent:    usage.UsedPercent,
			Icon:       icon,
			Type:       kind,
		})
	}

	sort.Slice(disks, func(i, j int) bool { return disks[i].Mountpoint < disks[j].Mountpoint })
	return disks
}
