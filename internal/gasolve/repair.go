package gasolve

import (
	"sort"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/room"
)

// repair runs up to 10 deterministic passes fixing, in priority order:
// section time overlaps, lunch violations, cross-section clashes at an
// identical window, then instructor/room clashes — by rescheduling the
// later-sorted offender into the first non-conflicting suitable window,
// or by swapping its room. It always converges or exhausts its budget;
// either way it returns whatever it has.
func repair(ind Individual, catalog calendar.Catalog, rooms []domain.Room, rng calendar.Rand) Individual {
	sessions := append([]domain.ScheduledSession(nil), ind.Sessions...)

	for pass := 0; pass < 10; pass++ {
		sort.SliceStable(sessions, func(i, j int) bool {
			if sessions[i].Day != sessions[j].Day {
				return sessions[i].Day < sessions[j].Day
			}
			return sessions[i].Start < sessions[j].Start
		})

		fixed := false
		fixed = fixSectionOverlaps(sessions, catalog, rng) || fixed
		fixed = fixLunchViolations(sessions, catalog, rng) || fixed
		fixed = fixCrossSectionClashes(sessions, catalog, rng) || fixed
		fixed = fixInstructorRoomClashes(sessions, catalog, rooms, rng) || fixed

		if !fixed {
			break
		}
	}
	return Individual{Sessions: sessions}
}

// rescheduleOffender moves sessions[idx] to the first window (by catalog
// order) of sufficient length that does not overlap any other session for
// the same instructor or section. It is a no-op if none is found.
func rescheduleOffender(sessions []domain.ScheduledSession, idx int, catalog calendar.Catalog) bool {
	offender := sessions[idx]
	duration := hoursOf(offender)
	windows := catalog.ForEmploymentType(offender.Instructor.EmploymentType)

	for _, w := range windows {
		if !calendar.FitsDuration(w, duration) {
			continue
		}
		candidate := offender
		candidate.Day, candidate.Start, candidate.End, candidate.Period = w.Day, w.Start, w.End, w.Period

		clashes := false
		for j, other := range sessions {
			if j == idx {
				continue
			}
			if !candidate.Overlaps(other) {
				continue
			}
			if other.Instructor.Name == candidate.Instructor.Name || other.Demand.Section() == candidate.Demand.Section() {
				clashes = true
				break
			}
		}
		if !clashes {
			sessions[idx] = candidate
			return true
		}
	}
	return false
}

func fixSectionOverlaps(sessions []domain.ScheduledSession, catalog calendar.Catalog, rng calendar.Rand) bool {
	changed := false
	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			if sessions[i].Demand.Section() != sessions[j].Demand.Section() {
				continue
			}
			if !sessions[i].Overlaps(sessions[j]) {
				continue
			}
			if rescheduleOffender(sessions, j, catalog) {
				changed = true
			}
		}
	}
	return changed
}

func fixLunchViolations(sessions []domain.ScheduledSession, catalog calendar.Catalog, rng calendar.Rand) bool {
	changed := false
	for i := range sessions {
		w := domain.Window{Day: sessions[i].Day, Start: sessions[i].Start, End: sessions[i].End}
		if !conflictLunch(w) {
			continue
		}
		if rescheduleOffender(sessions, i, catalog) {
			changed = true
		}
	}
	return changed
}

func conflictLunch(w domain.Window) bool {
	return w.Start < "12:59:00" && "12:00:00" < w.End
}

func fixCrossSectionClashes(sessions []domain.ScheduledSession, catalog calendar.Catalog, rng calendar.Rand) bool {
	changed := false
	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			a, b := sessions[i], sessions[j]
			if a.Demand.Section() == b.Demand.Section() {
				continue
			}
			if a.Demand.CourseCode != b.Demand.CourseCode {
				continue
			}
			if a.Day == b.Day && a.Start == b.Start && a.End == b.End {
				if rescheduleOffender(sessions, j, catalog) {
					changed = true
				}
			}
		}
	}
	return changed
}

func fixInstructorRoomClashes(sessions []domain.ScheduledSession, catalog calendar.Catalog, rooms []domain.Room, rng calendar.Rand) bool {
	changed := false
	assigner := room.NewAssigner(rooms)
	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			a, b := sessions[i], sessions[j]
			if !a.Overlaps(b) {
				continue
			}
			if a.Instructor.Name == b.Instructor.Name {
				if rescheduleOffender(sessions, j, catalog) {
					changed = true
				}
				continue
			}
			if a.RoomID != nil && b.RoomID != nil && *a.RoomID == *b.RoomID {
				if newID := assigner.Assign(b.Demand, b); newID != nil {
					sessions[j].RoomID = newID
					changed = true
				}
			}
		}
	}
	return changed
}
