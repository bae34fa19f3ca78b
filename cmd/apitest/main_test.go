package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/panchanga-api/internal/api"
	"github.com/zapponejosh/panchanga-api/internal/config"
	"github.com/zapponejosh/panchanga-api/internal/database"
	"github.com/zapponejosh/panchanga-api/internal/logger"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	slog.SetDefault(logger.Discard())

	db, err := database.Open(database.DefaultConfig(":memory:"), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Migrate(context.Background())
	require.NoError(t, err)

	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg), cfg, logger.Discard()))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunnerAgainstServer(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, APIKey: "smoke", HistoryEnabled: true}
	srv := newTestServer(t, cfg)

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, "smoke", &out, true)
	runner.Run()

	assert.Zero(t, runner.errorCount, out.String())
	assert.Contains(t, out.String(), "History lists 5 calculation(s)")
	assert.Contains(t, out.String(), "All tests passed!")
}

func TestRunnerReportsFailures(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, APIKey: "smoke", HistoryEnabled: true}
	srv := newTestServer(t, cfg)

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, "wrong-key", &out, false)
	runner.Run()

	require.Equal(t, 1, runner.errorCount, out.String())
	assert.Contains(t, runner.errors[0], "History: HTTP 401")
}
