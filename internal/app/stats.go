package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lincooln/dockboard/internal/domain"
)

const (
	gigabyte = 1 << 30

	diskWarningPercent = 80
	diskDangerPercent  = 90
)

// Stats is the JSON payload of the stats API: raw host metrics plus the
// container population.
type Stats struct {
	System     domain.HostStats       `json:"system"`
	Containers domain.ContainerCounts `json:"containers"`
}

// DiskView is a disk prepared for rendering: shortened mount path, gigabyte
// values and a usage severity class.
type DiskView struct {
	domain.Disk
	ShortPath string  `json:"short_path"`
	UsedGB    float64 `json:"used_gb"`
	TotalGB   float64 `json:"total_gb"`
	CSSClass  string  `json:"css_class"`
}

// PageStats is the formatted stats block shared by all pages.
type PageStats struct {
	Hostname   string
	CPU        string
	CPUTemp    string
	Memory     string
	Containers domain.ContainerCounts
	Disks      []DiskView
	HasDisks   bool
	LocalIPs   []string
	UpdateTime string
}

// Stats assembles the raw stats payload. Metric failures degrade to zero
// values so the endpoint always answers.
func (s *Service) Stats(ctx context.Context) Stats {
	return Stats{
		System:     s.hostStats(ctx),
		Containers: s.containerCounts(ctx),
	}
}

// PageStats assembles the formatted stats block for the HTML pages, with
// disks filtered per the stored disk settings.
func (s *Service) PageStats(ctx context.Context) PageStats {
	host := s.hostStats(ctx)

	diskSettings, err := s.store.GetDiskSettings(ctx)
	if err != nil {
		slog.Warn("failed to read disk settings, using defaults", "error", err)
		diskSettings = domain.DefaultDiskSettings()
	}

	fontSize := defaultFontSize
	if ui, err := s.store.GetUISettings(ctx); err == nil {
		fontSize = parseFontSize(ui.FontSizeBase)
	}

	disks := PrepareDisks(host.Disks, diskSettings, fontSize)

	hostname := host.Hostname
	if hostname == "" {
		hostname = "N/A"
	}

	return PageStats{
		Hostname:   hostname,
		CPU:        fmt.Sprintf("%.1f%%", host.CPUPercent),
		CPUTemp:    host.CPUTemp,
		Memory:     FormatMemory(host.Memory),
		Containers: s.containerCounts(ctx),
		Disks:      disks,
		HasDisks:   len(disks) > 0,
		LocalIPs:   host.LocalIPs,
		UpdateTime: s.clock.Now().Format("15:04:05"),
	}
}

// ContainerUsage returns one usage snapshot per container. Stopped
// containers and containers whose stats read fails appear with zero usage so
// the details page always shows the full population.
func (s *Service) ContainerUsage(ctx context.Context) ([]domain.ContainerStats, error) {
	containers, err := s.source.ListContainers(ctx, true)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ContainerStats, 0, len(containers))
	for _, ctr := range containers {
		entry := domain.ContainerStats{ID: ctr.ID, Name: ctr.Name}
		if ctr.State == domain.StateRunning {
			usage, err := s.usage.ContainerStats(ctx, ctr.ID)
			if err != nil {
				slog.Warn("failed to read container stats", "container_id", ctr.ID, "error", err)
			} else {
				usage.Name = ctr.Name
				entry = usage
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *Service) hostStats(ctx context.Context) domain.HostStats {
	host, err := s.host.HostStats(ctx)
	if err != nil {
		slog.Warn("failed to sample host stats", "error", err)
		return domain.HostStats{CPUTemp: "N/A", LocalIPs: []string{}, Disks: []domain.Disk{}}
	}
	return host
}

func (s *Service) containerCounts(ctx context.Context) domain.ContainerCounts {
	containers, err := s.source.ListContainers(ctx, true)
	if err != nil {
		slog.Warn("failed to count containers", "error", err)
		return domain.ContainerCounts{}
	}

	counts := domain.ContainerCounts{Total: len(containers)}
	for _, ctr := range containers {
		if ctr.State == domain.StateRunning {
			counts.Running++
		} else {
			counts.Stopped++
		}
	}
	return counts
}

// FormatMemory renders memory usage as "P% (U.UG/T.TG)", or "N/A" when
// nothing was sampled.
func FormatMemory(m domain.MemoryStats) string {
	if m.Total == 0 {
		return "N/A"
	}
	used := float64(m.Used) / gigabyte
	total := float64(m.Total) / gigabyte
	return fmt.Sprintf("%.1f%% (%.1fG/%.1fG)", m.Percent, used, total)
}

const defaultFontSize = 14

func parseFontSize(raw string) int {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || size <= 0 {
		return defaultFontSize
	}
	return size
}

// ShortenMountPath compresses long mount paths to "/first/.../last". The
// length threshold shrinks as the configured font grows, so the disk list
// stays on one line.
func ShortenMountPath(path string, fontSize int) string {
	threshold := 34 - fontSize
	if threshold < 10 {
		threshold = 10
	}
	if len(path) <= threshold {
		return path
	}

	parts := make([]string, 0, 4)
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) <= 2 {
		return path
	}

	short := fmt.Sprintf("/%s/.../%s", parts[0], parts[len(parts)-1])
	if len(short) >= len(path) {
		return path
	}
	return short
}

// PrepareDisks filters disks per the display settings and decorates them for
// rendering.
func PrepareDisks(disks []domain.Disk, settings domain.DiskSettings, fontSize int) []DiskView {
	views := make([]DiskView, 0, len(disks))
	for _, d := range disks {
		if !settings.ShowSystem && d.System() {
			continue
		}
		if !settings.ShowMounted && d.Network() {
			continue
		}

		cssClass := ""
		switch {
		case d.Percent > diskDangerPercent:
			cssClass = "danger"
		case d.Percent > diskWarningPercent:
			cssClass = "warning"
		}

		views = append(views, DiskView{
			Disk:      d,
			ShortPath: ShortenMountPath(d.Mountpoint, fontSize),
			UsedGB:    float64(d.Used) / gigabyte,
			TotalGB:   float64(d.Total) / gigabyte,
			CSSClass:  cssClass,
		})
	}
	return views
}
