package domain

// Service is the canonical, user-facing representation of one discovered
// container: the raw record merged with its stored override. It is a pure
// projection recomputed on every discovery call and never persisted.
type Service struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	AutoURL       string `json:"auto_url"`
	CustomURL     string `json:"custom_url"`
	HasCustomURL  bool   `json:"has_custom_url"`
	Icon          string `json:"icon"`
	Ports         []int  `json:"ports"`
	Status        string `json:"status"`
	Image         string `json:"image"`
	Visible       bool   `json:"visible"`
	ContainerName string `json:"container_name"`
}

// Running reports whether the underlying container is in the running state.
// Everything else counts as "not running" for status grouping.
func (s Service) Running() bool {
	return s.Status == StateRunning
}

// MaxPort returns the highest detected host port, or 0 when none were found.
// Used as the sort key for port-based ordering.
func (s Service) MaxPort() int {
	if len(s.Ports) == 0 {
		return 0
	}
	return s.Ports[len(s.Ports)-1]
}
