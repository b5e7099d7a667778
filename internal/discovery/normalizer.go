package discovery

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/lincooln/dockboard/internal/domain"
)

// Host ports outside this range are assumed not to be web UIs (ephemeral
// ranges, SSH, databases) and are dropped during port extraction.
const (
	minWebPort = 80
	maxWebPort = 9999
)

// Compose service names that carry no information on their own. When a
// compose container uses one of these, the project name makes the better
// display name.
var genericComposeServices = map[string]bool{
	"web":    true,
	"app":    true,
	"server": true,
}

var errUnusableRecord = errors.New("unusable container record")

// Normalize merges one raw container with its stored override into a
// Service. A nil override means the container has never been seen; defaults
// are applied and created is returned true so the caller can persist them.
// Normalize itself has no side effects.
func Normalize(ctr domain.Container, override *domain.Override, hostIP string) (domain.Service, domain.Override, bool, error) {
	if ctr.ID == "" {
		return domain.Service{}, domain.Override{}, false, fmt.Errorf("%w: missing container ID", errUnusableRecord)
	}

	created := false
	ov := domain.DefaultOverride()
	if override != nil {
		ov = *override
	} else {
		created = true
	}

	ports := webPorts(ctr.Ports)

	autoURL := ""
	if len(ports) > 0 {
		autoURL = fmt.Sprintf("http://%s:%d", hostIP, ports[0])
	}

	url := autoURL
	if ov.CustomURL != "" {
		url = ov.CustomURL
	}

	icon := ov.Icon
	if icon == "" {
		icon = domain.DefaultServiceIcon
	}

	svc := domain.Service{
		ID:            ctr.ID,
		Name:          displayName(ctr, ov),
		URL:           url,
		AutoURL:       autoURL,
		CustomURL:     ov.CustomURL,
		HasCustomURL:  ov.CustomURL != "",
		Icon:          icon,
		Ports:         ports,
		Status:        ctr.State,
		Image:         ctr.Image,
		Visible:       ov.Visible,
		ContainerName: ctr.Name,
	}
	return svc, ov, created, nil
}

// webPorts extracts the published host ports that look like web UIs:
// parseable integers within [minWebPort, maxWebPort], deduplicated and
// sorted ascending. Malformed entries are skipped, never fatal.
func webPorts(bindings map[string][]string) []int {
	seen := map[int]bool{}
	for _, hostPorts := range bindings {
		for _, raw := range hostPorts {
			p, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			if p < minWebPort || p > maxWebPort {
				continue
			}
			seen[p] = true
		}
	}

	ports := make([]int, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}

// displayName resolves the service name with the documented precedence:
// user override, explicit dashboard label, compose project/service, raw
// container name.
func displayName(ctr domain.Container, ov domain.Override) string {
	if ov.CustomName != "" {
		return ov.CustomName
	}
	if name := ctr.Labels[domain.LabelDashboardName]; name != "" {
		return name
	}

	project := ctr.Labels[domain.LabelComposeProject]
	service := ctr.Labels[domain.LabelComposeService]
	if project != "" && service != "" {
		if genericComposeServices[service] {
			return project
		}
		return service
	}

	return ctr.Name
}
