// Package gasolve is the genetic-algorithm fallback path (C7): a
// population of candidate schedules evolved via tournament selection,
// course-level crossover, targeted mutation and a conflict-aware repair
// pass. It reuses the calendar (C2), load (C3) and room (C4/C6) packages
// exactly as the CP path does, and shares the conflict taxonomy (C_shared)
// so both paths report comparable statistics.
package gasolve

import (
	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/load"
	"github.com/udp-timetabling/scheduler/internal/room"
)

// Individual is one candidate schedule.
type Individual struct {
	Sessions []domain.ScheduledSession
}

// seedOne constructively builds one individual: for each demand, decompose
// its sessions, then for each session pick a suitable window of sufficient
// length, preferring windows on less-used days via inverse-frequency
// sampling, and assign a conflict-free room where possible.
func seedOne(demands []domain.CourseDemand, instructors map[string]domain.Instructor, catalog calendar.Catalog, rooms []domain.Room, rng calendar.Rand) Individual {
	dayLoad := calendar.NewDayLoad()
	assigner := room.NewAssigner(rooms)

	var sessions []domain.ScheduledSession
	for _, d := range demands {
		durations := load.Sessions(d.Units, d.EmploymentType)
		windows := catalog.ForEmploymentType(d.EmploymentType)
		for _, duration := range durations {
			w, ok := pickWindow(windows, duration, dayLoad, rng)
			if !ok {
				continue
			}
			dayLoad.Record(w.Day)

			sessionType := "Non-Lab session"
			if d.RequiresLab {
				sessionType = "Lab session"
			}
			session := domain.ScheduledSession{
				Demand:      d,
				Instructor:  instructors[d.InstructorName],
				Day:         w.Day,
				Start:       w.Start,
				End:         w.End,
				Period:      w.Period,
				SessionType: sessionType,
			}
			session.RoomID = assigner.Assign(d, session)
			sessions = append(sessions, session)
		}
	}
	return Individual{Sessions: sessions}
}

// pickWindow chooses a window long enough for duration, weighting the
// choice by inverse day frequency so the seeder spreads load across days
// instead of piling onto the first windows the catalog happens to list.
func pickWindow(windows []domain.Window, duration float64, dayLoad *calendar.DayLoad, rng calendar.Rand) (domain.Window, bool) {
	var fits []domain.Window
	for _, w := range windows {
		if calendar.FitsDuration(w, duration) {
			fits = append(fits, w)
		}
	}
	if len(fits) == 0 {
		return domain.Window{}, false
	}

	total := 0.0
	weights := make([]float64, len(fits))
	for i, w := range fits {
		weights[i] = dayLoad.Weight(w.Day)
		total += weights[i]
	}
	target := rng.Float64() * total
	cursor := 0.0
	for i, w := range fits {
		cursor += weights[i]
		if cursor >= target {
			return w, true
		}
	}
	return fits[len(fits)-1], true
}

// SeedPopulation builds the fixed-size starting population (§4.7: 50).
func SeedPopulation(size int, demands []domain.CourseDemand, instructors map[string]domain.Instructor, catalog calendar.Catalog, rooms []domain.Room, rng calendar.Rand) []Individual {
	pop := make([]Individual, size)
	for i := range pop {
		pop[i] = seedOne(demands, instructors, catalog, rooms, rng)
	}
	return pop
}

// GreedyFallback is the "no individual produced" last resort (§4.7): a
// single first-fit pass that may violate constraints, surfaced with
// warnings by the driver rather than failing outright.
func GreedyFallback(demands []domain.CourseDemand, instructors map[string]domain.Instructor, catalog calendar.Catalog, rooms []domain.Room) Individual {
	assigner := room.NewAssigner(rooms)
	var sessions []domain.ScheduledSession
	for _, d := range demands {
		durations := load.Sessions(d.Units, d.EmploymentType)
		windows := catalog.ForEmploymentType(d.EmploymentType)
		for _, duration := range durations {
			var chosen domain.Window
			found := false
			for _, w := range windows {
				if calendar.FitsDuration(w, duration) {
					chosen = w
					found = true
					break
				}
			}
			if !found {
				continue
			}
			sessionType := "Non-Lab session"
			if d.RequiresLab {
				sessionType = "Lab session"
			}
			session := domain.ScheduledSession{
				Demand:      d,
				Instructor:  instructors[d.InstructorName],
				Day:         chosen.Day,
				Start:       chosen.Start,
				End:         chosen.End,
				Period:      chosen.Period,
				SessionType: sessionType,
			}
			session.RoomID = assigner.Assign(d, session)
			sessions = append(sessions, session)
		}
	}
	return Individual{Sessions: sessions}
}
