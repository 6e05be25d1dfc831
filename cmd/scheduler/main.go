// Command scheduler reads one JSON request document from stdin, solves it
// (CP-SAT path first, genetic-algorithm fallback second), and writes one
// JSON response document to stdout. Nothing else touches stdout: logs go
// to stderr, and metrics, when enabled, are dumped to stderr after the
// response so neither can corrupt the one document a caller parses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/udp-timetabling/scheduler/internal/config"
	"github.com/udp-timetabling/scheduler/internal/cpsolve"
	"github.com/udp-timetabling/scheduler/internal/intake"
	"github.com/udp-timetabling/scheduler/internal/obslog"
)

// cli is the flag surface described in spec §6: every flag is optional,
// defaults come from config.Default().
var cli struct {
	TimeLimit int    `name:"time-limit" help:"Wall-clock budget in seconds for the CP path." default:"60"`
	Workers   int    `name:"workers" help:"CP-SAT search worker count; stored in the config only, the CP path always runs with 4 workers." default:"4"`
	Seed      int64  `name:"seed" help:"PRNG seed; 0 means derive one from the current time."`
	Metrics   bool   `name:"metrics" help:"Dump solve metrics to stderr after the response is written."`
	EnvFile   string `name:"env-file" help:"Optional .env path overlaying defaults before flags." default:".env"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("scheduler"),
		kong.Description("Weekly academic timetable solver: CP-SAT first, GA fallback second."),
	)

	config.LoadDotenv(cli.EnvFile)
	cfg := config.Default()
	cfg.TimeLimit = time.Duration(cli.TimeLimit) * time.Second
	cfg.CPWorkers = cli.Workers
	cfg.MetricsEnabled = cli.Metrics
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
		cfg.HasSeed = true
	}
	cfg = config.ApplyEnv(cfg)

	logger, err := obslog.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "scheduler: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	solveID := obslog.CorrelationID()
	log := obslog.WithSolve(logger, solveID)

	var req intake.Request
	decoder := json.NewDecoder(os.Stdin)
	if err := decoder.Decode(&req); err != nil {
		log.Error("failed to decode request document", zap.Error(err))
		writeResponse(intake.Response{Success: false, Message: "malformed request document", Errors: []string{err.Error()}})
		return
	}
	if cfg.HasSeed && req.Seed == nil {
		seed := cfg.Seed
		req.Seed = &seed
	}
	if cli.TimeLimit > 0 && req.TimeLimitSec == 0 {
		req.TimeLimitSec = cli.TimeLimit
	}

	metrics := obslog.NewMetrics()

	driver := intake.Driver{
		CPEngine: cpsolve.OrToolsEngine{},
		Logger:   log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.TimeLimit+45*time.Second)
	defer cancel()

	started := time.Now()
	resp := driver.Solve(ctx, req)
	metrics.ObserveSolve(time.Since(started))
	metrics.RecordConflicts(resp.Conflicts)
	metrics.AddGenerations(resp.GenerationsRun)

	writeResponse(resp)

	if cfg.MetricsEnabled {
		if err := metrics.Dump(os.Stderr); err != nil {
			log.Warn("failed to dump metrics", zap.Error(err))
		}
	}
}

// writeResponse marshals resp to stdout. Exit codes follow spec §6: 0 once
// a response document has been produced, non-zero only on I/O failure that
// prevents that document from being written at all.
func writeResponse(resp intake.Response) {
	encoder := json.NewEncoder(os.Stdout)
	if err := encoder.Encode(resp); err != nil {
		fmt.Fprintln(os.Stderr, "scheduler: failed to write response:", err)
		os.Exit(1)
	}
}
