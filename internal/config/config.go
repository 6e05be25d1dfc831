// Package config resolves the scheduler's run-time knobs. cmd/scheduler
// starts from compiled-in defaults, applies CLI flags, and then overlays
// environment variables (after loading an optional .env file into the
// environment) — no layer is required (spec §6: "no environment variables
// are required").
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config bounds one invocation of the scheduler binary.
type Config struct {
	TimeLimit      time.Duration
	CPWorkers      int
	Seed           int64
	HasSeed        bool
	MetricsEnabled bool
}

// Default returns the compiled-in defaults named in spec §4.5/§5.
// CPWorkers is resolved here but cmd/scheduler does not hand it to the
// driver; the CP path runs with cpsolve.DefaultConfig's worker count.
func Default() Config {
	return Config{
		TimeLimit: 60 * time.Second,
		CPWorkers: 4,
	}
}

// LoadDotenv loads a .env file if one is present in the working directory.
// Its absence is never an error — this is an optional override layer, not
// a requirement.
func LoadDotenv(path string) {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// ApplyEnv overlays any recognized environment variables onto cfg. Every
// variable is optional; an absent one leaves cfg untouched.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("CP_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CPWorkers = n
		}
	}
	if v := os.Getenv("METRICS_ENABLED"); v == "1" || v == "true" {
		cfg.MetricsEnabled = true
	}
	return cfg
}
