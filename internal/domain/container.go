package domain

import "context"

// Container states as reported by the runtime.
const (
	StateRunning = "running"
	StateExited  = "exited"
	StatePaused  = "paused"
)

// Well-known container labels consulted during discovery.
const (
	// LabelDashboardName is an explicit display name set by the user on the
	// container itself.
	LabelDashboardName = "dashboard.name"
	// LabelComposeProject and LabelComposeService identify containers started
	// together as one compose application.
	LabelComposeProject = "com.docker.compose.project"
	LabelComposeService = "com.docker.compose.service"
)

// Container is a raw container record as returned by the container runtime.
// It is read-only input to discovery; its lifecycle is owned entirely by the
// runtime.
type Container struct {
	ID     string
	Name   string
	State  string
	Status string
	Image  string
	Labels map[string]string

	// Ports maps a container port spec (e.g. "80/tcp") to the host ports it
	// is published on. Host ports are kept as strings; malformed entries are
	// tolerated and skipped during normalization.
	Ports map[string][]string
}

// ContainerSource enumerates containers from the runtime.
type ContainerSource interface {
	// ListContainers returns all containers, including stopped ones when
	// includeStopped is true.
	ListContainers(ctx context.Context, includeStopped bool) ([]Container, error)
}

// ContainerController starts and stops containers by ID.
type ContainerController interface {
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
}

// ContainerStats is a point-in-time resource usage snapshot for one
// container.
type ContainerStats struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryUsage   uint64  `json:"memory_usage"`
	MemoryLimit   uint64  `json:"memory_limit"`
	MemoryPercent float64 `json:"memory_percent"`
}

// ContainerStatsSource reads usage snapshots from the runtime.
type ContainerStatsSource interface {
	ContainerStats(ctx context.Context, id string) (ContainerStats, error)
}
