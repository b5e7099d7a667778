package discovery

import (
	"sort"
	"strings"

	"github.com/lincooln/dockboard/internal/domain"
)

// SortServices orders services per the given settings and returns a new
// slice; the input and the settings are never mutated. An unknown method
// falls back to name_asc. Sorting is stable, so services with equal keys
// keep their relative order.
func SortServices(services []domain.Service, settings domain.SortSettings) []domain.Service {
	out := make([]domain.Service, len(services))
	copy(out, services)

	less := lessFunc(settings.Method)

	if !settings.GroupByStatus {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
		return out
	}

	// Partition running-first, then sort each partition independently.
	running := make([]domain.Service, 0, len(out))
	stopped := make([]domain.Service, 0, len(out))
	for _, svc := range out {
		if svc.Running() {
			running = append(running, svc)
		} else {
			stopped = append(stopped, svc)
		}
	}
	sort.SliceStable(running, func(i, j int) bool { return less(running[i], running[j]) })
	sort.SliceStable(stopped, func(i, j int) bool { return less(stopped[i], stopped[j]) })

	return append(running, stopped...)
}

func lessFunc(method string) func(a, b domain.Service) bool {
	switch method {
	case domain.SortNameDesc:
		return func(a, b domain.Service) bool { return nameKey(a) > nameKey(b) }
	case domain.SortPortsAsc:
		return func(a, b domain.Service) bool { return a.MaxPort() < b.MaxPort() }
	case domain.SortPortsDesc:
		return func(a, b domain.Service) bool { return a.MaxPort() > b.MaxPort() }
	default:
		return func(a, b domain.Service) bool { return nameKey(a) < nameKey(b) }
	}
}

func nameKey(s domain.Service) string {
	return strings.ToLower(s.Name)
}
