package domain

import "context"

// MemoryStats describes host virtual memory usage in bytes.
type MemoryStats struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Percent float64 `json:"percent"`
}

// Disk describes one mounted filesystem after virtual filesystems have been
// filtered out.
type Disk struct {
	Mountpoint string  `json:"mountpoint"`
	Device     string  `json:"device"`
	Fstype     string  `json:"fstype"`
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Percent    float64 `json:"percent"`
	Icon       string  `json:"icon"`
	Type       string  `json:"type"`
}

// System reports whether the disk is one of the host's own partitions rather
// than an attached share.
func (d Disk) System() bool {
	return d.Mountpoint == "/" || d.Mountpoint == "/boot"
}

// Network reports whether the disk is a remote mount (SMB, NFS and friends).
func (d Disk) Network() bool {
	switch d.Type {
	case "SMB", "NFS", "SMB (FUSE)", "NFS (FUSE)":
		return true
	}
	return false
}

// HostStats is one sampling of the host the dashboard runs on.
type HostStats struct {
	Hostname   string      `json:"hostname"`
	LocalIPs   []string    `json:"local_ips"`
	CPUTemp    string      `json:"cpu_temp"`
	CPUPercent float64     `json:"cpu_percent"`
	Memory     MemoryStats `json:"memory"`
	Disks      []Disk      `json:"disks"`
}

// ContainerCounts summarizes the container population by state.
type ContainerCounts struct {
	Total   int `json:"total"`
	Running int `json:"running"`
	Stopped int `json:"stopped"`
}

// HostStatsSource samples host-level metrics.
type HostStatsSource interface {
	HostStats(ctx context.Context) (HostStats, error)
}
