package gasolve

import (
	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/room"
)

// tournamentSelect picks the fittest of k random individuals (size 4,
// §4.7). fitness is pre-computed per generation so selection never
// re-scores an individual.
func tournamentSelect(pop []Individual, fitness []float64, size int, rng calendar.Rand) Individual {
	bestIdx := rng.Intn(len(pop))
	for i := 1; i < size; i++ {
		idx := rng.Intn(len(pop))
		if fitness[idx] < fitness[bestIdx] {
			bestIdx = idx
		}
	}
	return pop[bestIdx]
}

// crossover recombines two parents at course-code granularity: for each
// course code appearing in either parent, the child inherits that
// course's entire session list from one randomly chosen parent.
func crossover(a, b Individual, rng calendar.Rand) Individual {
	byCourse := func(ind Individual) map[string][]domain.ScheduledSession {
		m := make(map[string][]domain.ScheduledSession)
		for _, s := range ind.Sessions {
			m[s.Demand.CourseCode] = append(m[s.Demand.CourseCode], s)
		}
		return m
	}
	aCourses, bCourses := byCourse(a), byCourse(b)

	codes := make(map[string]bool)
	for code := range aCourses {
		codes[code] = true
	}
	for code := range bCourses {
		codes[code] = true
	}

	var child []domain.ScheduledSession
	for code := range codes {
		from := aCourses
		if rng.Float64() < 0.5 {
			from = bCourses
		}
		sessions, ok := from[code]
		if !ok {
			// the chosen parent never scheduled this course; fall back to
			// whichever parent did so the child never silently drops a demand.
			sessions = aCourses[code]
			if sessions == nil {
				sessions = bCourses[code]
			}
		}
		child = append(child, sessions...)
	}
	return Individual{Sessions: child}
}

// mutationKind enumerates the dispatch table; "instructor" is intentionally
// a no-op (spec fix: some GA implementations advertise instructor mutation
// but never act on it — kept explicit here instead of silently absent).
type mutationKind int

const (
	mutateTime mutationKind = iota
	mutateRoom
	mutateSwap
	mutateAddRemove
	mutateInstructor
)

// mutate applies one randomly chosen operator to a copy of ind.
func mutate(ind Individual, demands []domain.CourseDemand, instructors map[string]domain.Instructor, catalog calendar.Catalog, rooms []domain.Room, rng calendar.Rand) Individual {
	sessions := append([]domain.ScheduledSession(nil), ind.Sessions...)
	if len(sessions) == 0 {
		return Individual{Sessions: sessions}
	}

	switch mutationKind(rng.Intn(5)) {
	case mutateTime:
		i := rng.Intn(len(sessions))
		windows := catalog.ForEmploymentType(sessions[i].Instructor.EmploymentType)
		duration := hoursOf(sessions[i])
		if w, ok := pickWindow(windows, duration, calendar.NewDayLoad(), rng); ok {
			sessions[i].Day, sessions[i].Start, sessions[i].End, sessions[i].Period = w.Day, w.Start, w.End, w.Period
		}
	case mutateRoom:
		i := rng.Intn(len(sessions))
		assigner := room.NewAssigner(rooms)
		sessions[i].RoomID = assigner.Assign(sessions[i].Demand, sessions[i])
	case mutateSwap:
		if len(sessions) >= 2 {
			i := rng.Intn(len(sessions))
			j := rng.Intn(len(sessions))
			sessions[i].Day, sessions[j].Day = sessions[j].Day, sessions[i].Day
			sessions[i].Start, sessions[j].Start = sessions[j].Start, sessions[i].Start
			sessions[i].End, sessions[j].End = sessions[j].End, sessions[i].End
			sessions[i].Period, sessions[j].Period = sessions[j].Period, sessions[i].Period
		}
	case mutateAddRemove:
		sessions = mutateAddOrRemove(sessions, demands, instructors, catalog, rooms, rng)
	case mutateInstructor:
		// intentional no-op: preserves the original instructor assignment.
	}
	return Individual{Sessions: sessions}
}

func mutateAddOrRemove(sessions []domain.ScheduledSession, demands []domain.CourseDemand, instructors map[string]domain.Instructor, catalog calendar.Catalog, rooms []domain.Room, rng calendar.Rand) []domain.ScheduledSession {
	addCap := len(demands) * 3
	if rng.Float64() < 0.5 && len(sessions) < addCap && len(demands) > 0 {
		d := demands[rng.Intn(len(demands))]
		windows := catalog.ForEmploymentType(d.EmploymentType)
		if w, ok := pickWindow(windows, 1.0, calendar.NewDayLoad(), rng); ok {
			sessionType := "Non-Lab session"
			if d.RequiresLab {
				sessionType = "Lab session"
			}
			session := domain.ScheduledSession{
				Demand: d, Instructor: instructors[d.InstructorName],
				Day: w.Day, Start: w.Start, End: w.End, Period: w.Period,
				SessionType: sessionType,
			}
			session.RoomID = room.NewAssigner(rooms).Assign(d, session)
			sessions = append(sessions, session)
		}
		return sessions
	}

	// remove a random session, but never drop a demand to zero sessions.
	counts := make(map[string]int)
	for _, s := range sessions {
		counts[s.Demand.Section()+"|"+s.Demand.CourseCode]++
	}
	for attempt := 0; attempt < len(sessions); attempt++ {
		i := rng.Intn(len(sessions))
		key := sessions[i].Demand.Section() + "|" + sessions[i].Demand.CourseCode
		if counts[key] <= 1 {
			continue
		}
		return append(sessions[:i], sessions[i+1:]...)
	}
	return sessions
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
