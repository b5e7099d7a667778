package discovery

import (
	"testing"

	"github.com/lincooln/dockboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svc(name string, running bool, ports ...int) domain.Service {
	status := domain.StateExited
	if running {
		status = domain.StateRunning
	}
	return domain.Service{ID: name, Name: name, Status: status, Ports: ports}
}

func names(services []domain.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Name
	}
	return out
}

func TestSortServices_NameAscCaseInsensitive(t *testing.T) {
	in := []domain.Service{svc("B", true), svc("a", true)}

	out := SortServices(in, domain.SortSettings{Method: domain.SortNameAsc})

	assert.Equal(t, []string{"a", "B"}, names(out))
}

func TestSortServices_NameAscStableOnTies(t *testing.T) {
	first := svc("same", true, 8080)
	second := svc("same", true, 9090)

	out := SortServices([]domain.Service{first, second}, domain.SortSettings{Method: domain.SortNameAsc})

	require.Len(t, out, 2)
	assert.Equal(t, []int{8080}, out[0].Ports)
	assert.Equal(t, []int{9090}, out[1].Ports)
}

func TestSortServices_NameDesc(t *testing.T) {
	in := []domain.Service{svc("alpha", true), svc("Charlie", true), svc("bravo", true)}

	out := SortServices(in, domain.SortSettings{Method: domain.SortNameDesc})

	assert.Equal(t, []string{"Charlie", "bravo", "alpha"}, names(out))
}

func TestSortServices_PortsAscUsesMaxPort(t *testing.T) {
	in := []domain.Service{
		svc("high", true, 80, 9090),
		svc("low", true, 8080),
		svc("none", true),
	}

	out := SortServices(in, domain.SortSettings{Method: domain.SortPortsAsc})

	assert.Equal(t, []string{"none", "low", "high"}, names(out))
}

func TestSortServices_PortsDesc(t *testing.T) {
	in := []domain.Service{
		svc("low", true, 8080),
		svc("high", true, 9090),
		svc("none", true),
	}

	out := SortServices(in, domain.SortSettings{Method: domain.SortPortsDesc})

	assert.Equal(t, []string{"high", "low", "none"}, names(out))
}

func TestSortServices_GroupByStatusRunningFirst(t *testing.T) {
	in := []domain.Service{
		svc("a-stopped", false),
		svc("z-running", true),
		svc("b-running", true),
		svc("y-stopped", false),
	}

	for _, method := range []string{domain.SortNameAsc, domain.SortNameDesc, domain.SortPortsAsc, domain.SortPortsDesc} {
		t.Run(method, func(t *testing.T) {
			out := SortServices(in, domain.SortSettings{Method: method, GroupByStatus: true})

			require.Len(t, out, 4)
			assert.True(t, out[0].Running())
			assert.True(t, out[1].Running())
			assert.False(t, out[2].Running())
			assert.False(t, out[3].Running())
		})
	}
}

func TestSortServices_GroupingSortsPartitionsIndependently(t *testing.T) {
	in := []domain.Service{
		svc("zeta", true),
		svc("alpha", false),
		svc("beta", true),
		svc("omega", false),
	}

	out := SortServices(in, domain.SortSettings{Method: domain.SortNameAsc, GroupByStatus: true})

	assert.Equal(t, []string{"beta", "zeta", "alpha", "omega"}, names(out))
}

func TestSortServices_PausedCountsAsNotRunning(t *testing.T) {
	paused := domain.Service{ID: "p", Name: "paused", Status: domain.StatePaused}
	running := svc("running", true)

	out := SortServices([]domain.Service{paused, running}, domain.SortSettings{Method: domain.SortNameAsc, GroupByStatus: true})

	assert.Equal(t, []string{"running", "paused"}, names(out))
}

func TestSortServices_UnknownMethodDefaultsToNameAsc(t *testing.T) {
	in := []domain.Service{svc("bravo", true), svc("Alpha", true)}

	out := SortServices(in, domain.SortSettings{Method: "bogus"})

	assert.Equal(t, []string{"Alpha", "bravo"}, names(out))
}

func TestSortServices_DoesNotMutateInput(t *testing.T) {
	in := []domain.Service{svc("b", true), svc("a", true)}

	_ = SortServices(in, domain.SortSettings{Method: domain.SortNameAsc})

	assert.Equal(t, []string{"b", "a"}, names(in))
}
