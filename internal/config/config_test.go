package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4, cfg.CPWorkers)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadDotenvMissingFileIsNotAnError(t *testing.T) {
	LoadDotenv("/nonexistent/path/.env")
}

func TestApplyEnvOverridesDefaults(t *testing.T) {
	os.Setenv("CP_WORKERS", "8")
	os.Setenv("METRICS_ENABLED", "true")
	defer os.Unsetenv("CP_WORKERS")
	defer os.Unsetenv("METRICS_ENABLED")

	cfg := ApplyEnv(Default())
	assert.Equal(t, 8, cfg.CPWorkers)
	assert.True(t, cfg.MetricsEnabled)
}

func TestApplyEnvIgnoresInvalidWorkerCount(t *testing.T) {
	os.Setenv("CP_WORKERS", "not-a-number")
	defer os.Unsetenv("CP_WORKERS")

	cfg := ApplyEnv(Default())
	assert.Equal(t, 4, cfg.CPWorkers)
}
