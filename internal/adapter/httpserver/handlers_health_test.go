package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
}

func TestReadiness_AllChecksPass(t *testing.T) {
	srv := newTestServer(t, &mockAppService{}, withHealthChecks(
		HealthCheck{Name: "docker", Check: func(context.Context) error { return nil }},
		HealthCheck{Name: "settings", Check: func(context.Context) error { return nil }},
	))

	rec := doRequest(srv, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp["status"])
}

func TestReadiness_FailingCheck(t *testing.T) {
	srv := newTestServer(t, &mockAppService{}, withHealthChecks(
		HealthCheck{Name: "docker", Check: func(context.Context) error { return fmt.Errorf("engine unreachable") }},
	))

	rec := doRequest(srv, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Equal(t, "docker", resp["failed_check"])
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "version")
	assert.Contains(t, resp, "go_version")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
