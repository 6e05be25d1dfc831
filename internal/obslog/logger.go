// Package obslog is the ambient logging/metrics layer: structured,
// leveled logging to stderr (stdout is reserved for the one response
// document, spec §6), a per-solve correlation id, and optional solve
// metrics dumped after the response is written so they never interleave
// with it.
package obslog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds a production zap logger writing to stderr only.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// CorrelationID mints a per-invocation id used to tie together every log
// line for one solve. It is not passed to the CP problem document, and it
// is never included in the response JSON — spec §6's output schema is
// closed.
func CorrelationID() string {
	return uuid.NewString()
}

// WithSolve returns a child logger tagged with the solve's correlation id.
func WithSolve(logger *zap.Logger, solveID string) *zap.Logger {
	return logger.With(zap.String("solve_id", solveID))
}
