package intake

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/conflict"
	"github.com/udp-timetabling/scheduler/internal/cpsolve"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/gasolve"
	"github.com/udp-timetabling/scheduler/internal/load"
	"github.com/udp-timetabling/scheduler/internal/rng"
	"github.com/udp-timetabling/scheduler/internal/room"
)

// unitToleranceHours is the §8 invariant: Σ(end-start) must match the
// decomposition within this tolerance.
const unitToleranceHours = 0.1

// Driver wires the request through the CP path, falls back to the GA path
// on CP failure, and produces the response document. It holds no state
// across Solve calls — each invocation is one independent solve.
type Driver struct {
	CPEngine cpsolve.Engine
	Logger   *zap.Logger
}

// Solve runs the full pipeline described in spec §4.8.
func (d Driver) Solve(ctx context.Context, req Request) Response {
	if msgs := req.Validate(); len(msgs) > 0 {
		return Response{Success: false, Message: "invalid request", Errors: msgs}
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	prng := rng.New(seed)

	demands := req.ToDemands()
	rooms := req.ToRooms()
	instructors := BuildInstructors(demands)

	timeLimit := time.Duration(req.TimeLimitSec) * time.Second
	if req.TimeLimitSec <= 0 {
		timeLimit = 60 * time.Second
	}

	catalog := calendar.Generate(prng)

	cpCfg := cpsolve.DefaultConfig()
	cpCfg.WallTime = timeLimit

	d.logInfo("dispatching to CP path", zap.Int("demands", len(demands)), zap.Duration("time_limit", timeLimit))

	outcome, err := cpsolve.Solve(ctx, d.CPEngine, demands, instructors, catalog, cpCfg)
	if err != nil {
		d.logInfo("CP path failed, falling back to GA", zap.Error(err))
	}

	var sessions []domain.ScheduledSession
	var warnings []string
	resp := Response{Success: true}

	if outcome.Status == cpsolve.Optimal || outcome.Status == cpsolve.Feasible {
		assigner := room.NewAssigner(rooms)
		for i, s := range outcome.Sessions {
			s.RoomID = assigner.Assign(s.Demand, s)
			outcome.Sessions[i] = s
		}
		sessions = outcome.Sessions
		resp.Message = fmt.Sprintf("CP solver returned %s", outcome.Status)
	} else {
		d.logInfo("CP path infeasible/timeout, running GA fallback", zap.String("status", string(outcome.Status)))
		gaResult := gasolve.Run(ctx, demands, instructors, rooms, catalog, prng, gasolve.DefaultConfig())
		sessions = gaResult.Best.Sessions

		resp.Conflicts = countsToMap(gaResult.Conflicts.Counts)
		resp.Fitness = gaResult.Fitness
		resp.TotalConflicts = gaResult.Conflicts.Total()
		resp.GenerationsRun = gaResult.GenerationsRun
		if gaResult.UsedFallback {
			warnings = append(warnings, "GA population collapsed; used first-fit greedy fallback")
		}
		resp.Message = "CP path unavailable; scheduled via genetic algorithm"
	}

	warnings = append(warnings, coverageWarnings(demands, sessions)...)
	warnings = append(warnings, labShortageWarnings(demands, rooms)...)

	resp.Schedules = toScheduleItems(sessions, instructors)
	if len(warnings) > 0 {
		resp.Errors = warnings
		resp.Message = resp.Message + "; " + fmt.Sprintf("%d warning(s)", len(warnings))
		d.logInfo("solve completed with warnings", zap.Error(combineWarnings(warnings)))
	}
	return resp
}

func (d Driver) logInfo(msg string, fields ...zap.Field) {
	if d.Logger == nil {
		return
	}
	d.Logger.Info(msg, fields...)
}

// combineWarnings folds every warning string into one error so the logger
// emits a single event per solve instead of one line per warning.
func combineWarnings(warnings []string) error {
	var combined error
	for _, w := range warnings {
		combined = multierr.Append(combined, errors.New(w))
	}
	return combined
}

func countsToMap(counts map[conflict.Kind]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	return out
}

// coverageWarnings flags demands whose placed session hours deviate from
// their decomposition by more than the invariant tolerance (§7.4).
func coverageWarnings(demands []domain.CourseDemand, sessions []domain.ScheduledSession) []string {
	placedHours := make(map[string]float64)
	for _, s := range sessions {
		placedHours[conflict.DemandKey(s.Demand)] += hoursOf(s)
	}

	var warnings []string
	for _, dmd := range demands {
		durations := load.Sessions(dmd.Units, dmd.EmploymentType)
		expected := 0.0
		for _, h := range durations {
			expected += h
		}
		key := conflict.DemandKey(dmd)
		if math.Abs(placedHours[key]-expected) > unitToleranceHours {
			warnings = append(warnings, fmt.Sprintf(
				"unit-coverage mismatch for %s (%s): expected %.1fh, placed %.1fh",
				dmd.CourseCode, dmd.Section(), expected, placedHours[key]))
		}
	}
	return warnings
}

// labShortageWarnings flags lab demands left unroomed because no active
// lab room exists.
func labShortageWarnings(demands []domain.CourseDemand, rooms []domain.Room) []string {
	hasLabRoom := false
	for _, r := range rooms {
		if r.IsLab && r.IsActive {
			hasLabRoom = true
			break
		}
	}
	if hasLabRoom {
		return nil
	}
	var warnings []string
	seen := make(map[string]bool)
	for _, dmd := range demands {
		if !dmd.RequiresLab || seen[dmd.CourseCode] {
			continue
		}
		seen[dmd.CourseCode] = true
		warnings = append(warnings, fmt.Sprintf("no active lab room available for %s; left unroomed", dmd.CourseCode))
	}
	return warnings
}

func hoursOf(s domain.ScheduledSession) float64 {
	sh, sm := clockParts(s.Start)
	eh, em := clockParts(s.End)
	return float64(eh*60+em-(sh*60+sm)) / 60.0
}

func clockParts(hms string) (hour, minute int) {
	if len(hms) < 5 {
		return 0, 0
	}
	hour = int(hms[0]-'0')*10 + int(hms[1]-'0')
	minute = int(hms[3]-'0')*10 + int(hms[4]-'0')
	return hour, minute
}
