package docker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lincooln/dockboard/internal/domain"
)

// ContainerStats reads a single usage snapshot for one container.
func (s *Source) ContainerStats(ctx context.Context, id string) (domain.ContainerStats, error) {
	resp, err := s.cli.ContainerStats(ctx, id, false)
	if err != nil {
		return domain.ContainerStats{}, fmt.Errorf("failed to read stats for %s: %w", id, err)
	}
	defer resp.Body.Close()

	var raw statsJSON
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return domain.ContainerStats{}, fmt.Errorf("failed to decode stats for %s: %w", id, err)
	}

	memoryPercent := 0.0
	if raw.MemoryStats.Limit > 0 {
		memoryPercent = float64(raw.MemoryStats.Usage) / float64(raw.MemoryStats.Limit) * 100
	}

	return domain.ContainerStats{
		ID:            id,
		CPUPercent:    cpuPercent(&raw),
		MemoryUsage:   raw.MemoryStats.Usage,
		MemoryLimit:   raw.MemoryStats.Limit,
		MemoryPercent: memoryPercent,
	}, nil
}

// statsJSON is the subset of the engine stats payload the dashboard uses.
type statsJSON struct {
	CPUStats struct {
		CPUUsage struct {
			TotalUsage uint64 `json:"total_usage"`
		} `json:"cpu_usage"`
		SystemCPUUsage uint64 `json:"system_cpu_usage"`
		OnlineCPUs     uint64 `json:"online_cpus"`
	} `json:"cpu_stats"`
	PreCPUStats struct {
		CPUUsage struct {
			TotalUsage uint64 `json:"total_usage"`
		} `json:"cpu_usage"`
		SystemCPUUsage uint64 `json:"system_cpu_usage"`
	} `json:"precpu_stats"`
	MemoryStats struct {
		Usage uint64 `json:"usage"`
		Limit uint64 `json:"limit"`
	} `json:"memory_stats"`
}

// cpuPercent computes usage the same way docker stats does: the container's
// CPU delta over the whole-system delta, scaled by the online CPU count.
func cpuPercent(raw *statsJSON) float64 {
	cpuDelta := float64(raw.CPUStats.CPUUsage.TotalUsage) - float64(raw.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(raw.CPUStats.SystemCPUUsage) - float64(raw.PreCPUStats.SystemCPUUsage)
	if systemDelta <= 0 || cpuDelta < 0 {
		return 0
	}

	cpus := float64(raw.CPUStats.OnlineCPUs)
	if cpus == 0 {
		cpus = 1
	}
	return cpuDelta / systemDelta * cpus * 100
}
