// Package room implements room suitability (C4) and the post-hoc greedy
// room assigner (C6) shared by the CP and GA paths.
package room

import "github.com/udp-timetabling/scheduler/internal/domain"

// EstimatedStudents derives a rough headcount from units, clamped to
// [20, 50], which is all the catalog knows about enrollment at scheduling
// time.
func EstimatedStudents(units int) int {
	estimate := units * 10
	if estimate < 20 {
		estimate = 20
	}
	if estimate > 50 {
		estimate = 50
	}
	return estimate
}

// Suitable reports whether r may host a session of the given demand:
// active, capacity at least 80% of the estimated headcount, and lab
// exclusivity enforced both ways (a lab session needs a lab room and a
// non-lab session must not land in one).
func Suitable(d domain.CourseDemand, r domain.Room) bool {
	if !r.IsActive {
		return false
	}
	if r.IsLab != d.RequiresLab {
		return false
	}
	required := float64(EstimatedStudents(d.Units)) * 0.8
	return float64(r.Capacity) >= required
}

// FallbackRooms returns the first three rooms of the right lab-class when
// no room passed Suitable — the last resort before a demand is left
// unroomed. A lab demand with zero lab rooms yields an empty slice; the
// caller is responsible for surfacing the resulting warning.
func FallbackRooms(requiresLab bool, rooms []domain.Room) []domain.Room {
	var matches []domain.Room
	for _, r := range rooms {
		if !r.IsActive {
			continue
		}
		if r.IsLab != requiresLab {
			continue
		}
		matches = append(matches, r)
		if len(matches) == 3 {
			break
		}
	}
	return matches
}
