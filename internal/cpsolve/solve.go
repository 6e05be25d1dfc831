package cpsolve

import (
	"context"
	"fmt"
	"time"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/load"
)

// Config bounds the external engine invocation: wall-clock budget and
// worker count, both with the defaults named in §4.5/§5.
type Config struct {
	WallTime time.Duration
	Workers  int
}

// DefaultConfig is the 60s/4-worker budget named in spec §4.5 and §5.
func DefaultConfig() Config {
	return Config{WallTime: 60 * time.Second, Workers: 4}
}

// Outcome is what Solve hands back to the driver: the resolved status and,
// when OPTIMAL or FEASIBLE, the placed sessions (rooms not yet assigned —
// that is internal/room's job).
type Outcome struct {
	Status   Status
	Sessions []domain.ScheduledSession
}

// Solve builds the CP model for demands over the window catalog, invokes
// engine, and decodes its result. Instructors must already be resolved
// (one per distinct name) so the returned sessions carry a populated
// Instructor field.
func Solve(ctx context.Context, engine Engine, demands []domain.CourseDemand, instructors map[string]domain.Instructor, catalog calendar.Catalog, cfg Config) (Outcome, error) {
	inputs := make([]demandInput, 0, len(demands))
	for _, d := range demands {
		durations := load.Sessions(d.Units, d.EmploymentType)
		if len(durations) == 0 {
			continue
		}
		inputs = append(inputs, demandInput{
			demand:    d,
			durations: durations,
			windows:   catalog.ForEmploymentType(d.EmploymentType),
		})
	}

	problem := Build(inputs, int(cfg.WallTime.Milliseconds()), cfg.Workers)
	problem.ID = fmt.Sprintf("solve-%d-demands", len(inputs))

	if len(problem.Variables) == 0 {
		return Outcome{Status: Infeasible}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.WallTime)
	defer cancel()

	result, err := engine.Solve(ctx, problem)
	if err != nil {
		return Outcome{Status: Infeasible}, err
	}
	if result.Status != Optimal && result.Status != Feasible {
		return Outcome{Status: result.Status}, nil
	}

	byID := make(map[int]Variable, len(problem.Variables))
	for _, v := range problem.Variables {
		byID[v.ID] = v
	}

	sessions := make([]domain.ScheduledSession, 0, len(result.Selected))
	for _, id := range result.Selected {
		v, ok := byID[id]
		if !ok {
			continue
		}
		d := inputs[v.DemandIdx].demand
		instructor := instructors[d.InstructorName]
		sessionType := "Non-Lab session"
		if d.RequiresLab {
			sessionType = "Lab session"
		}
		sessions = append(sessions, domain.ScheduledSession{
			Demand:      d,
			Instructor:  instructor,
			Day:         v.Window.Day,
			Start:       v.Window.Start,
			End:         v.Window.End,
			Period:      v.Window.Period,
			SessionType: sessionType,
		})
	}

	return Outcome{Status: result.Status, Sessions: sessions}, nil
}
