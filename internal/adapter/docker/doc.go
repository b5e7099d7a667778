// Package docker implements the container source on top of the Docker
// Engine API. It maps engine summaries to domain records and exposes the
// small set of control and stats operations the dashboard needs.
package docker
