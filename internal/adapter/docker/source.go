package docker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/lincooln/dockboard/internal/domain"
)

const stopTimeout = 10 * time.Second

// Source implements domain.ContainerSource and domain.ContainerController
// against a local or DOCKER_HOST-configured engine.
type Source struct {
	cli *client.Client
}

// NewSource creates a client from the environment (DOCKER_HOST, TLS vars)
// with API version negotiation, matching what the docker CLI itself does.
func NewSource() (*Source, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Source{cli: cli}, nil
}

// Ping verifies the engine is reachable. Used by health checks.
func (s *Source) Ping(ctx context.Context) error {
	if _, err := s.cli.Ping(ctx); err != nil {
		return fmt.Errorf("docker engine unreachable: %w", err)
	}
	return nil
}

// Close releases the underlying HTTP client.
func (s *Source) Close() error {
	return s.cli.Close()
}

// ListContainers returns all containers as domain records.
func (s *Source) ListContainers(ctx context.Context, includeStopped bool) ([]domain.Container, error) {
	summaries, err := s.cli.ContainerList(ctx, container.ListOptions{All: includeStopped})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	result := make([]domain.Container, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, toDomainContainer(summary))
	}
	return result, nil
}

// StartContainer starts a stopped container.
func (s *Source) StartContainer(ctx context.Context, id string) error {
	if err := s.cli.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		if errdefs.IsNotFound(err) {
			return fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
		}
		return fmt.Errorf("failed to start container %s: %w", id, err)
	}
	return nil
}

// StopContainer stops a running container, giving it stopTimeout to exit
// gracefully.
func (s *Source) StopContainer(ctx context.Context, id string) error {
	seconds := int(stopTimeout.Seconds())
	if err := s.cli.ContainerStop(ctx, id, container.StopOptions{Timeout: &seconds}); err != nil {
		if errdefs.IsNotFound(err) {
			return fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
		}
		return fmt.Errorf("failed to stop container %s: %w", id, err)
	}
	return nil
}

func toDomainContainer(summary types.Container) domain.Container {
	name := ""
	if len(summary.Names) > 0 {
		name = strings.TrimPrefix(summary.Names[0], "/")
	}

	image := summary.Image
	if image == "" {
		image = "unknown"
	}

	return domain.Container{
		ID:     summary.ID,
		Name:   name,
		State:  summary.State,
		Status: summary.Status,
		Image:  image,
		Labels: summary.Labels,
		Ports:  portBindings(summary.Ports),
	}
}

// portBindings converts the engine's flat port list into the container-port
// to host-ports map the normalizer consumes. Unpublished ports produce an
// entry with no host ports.
func portBindings(ports []types.Port) map[string][]string {
	if len(ports) == 0 {
		return map[string][]string{}
	}

	bindings := make(map[string][]string, len(ports))
	for _, p := range ports {
		spec := fmt.Sprintf("%d/%s", p.PrivatePort, p.Type)
		if p.PublicPort == 0 {
			if _, ok := bindings[spec]; !ok {
				bindings[spec] = nil
			}
			continue
		}
		bindings[spec] = append(bindings[spec], strconv.Itoa(int(p.PublicPort)))
	}
	return bindings
}
