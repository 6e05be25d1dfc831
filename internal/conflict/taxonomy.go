// Package conflict is the single shared conflict/penalty taxonomy both
// solver paths report against (design note: "two solvers, one objective").
// The CP path and the GA path weight these differently, but they must
// agree on what counts as which kind of conflict so their statistics stay
// comparable.
package conflict

import (
	"math"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

// Kind names one category of conflict in the shared taxonomy.
type Kind string

const (
	InstructorOverlap    Kind = "instructor_overlap"
	RoomOverlap          Kind = "room_overlap"
	SectionDoubleBooked  Kind = "section_double_booked"
	SameCourseSameWindow Kind = "same_course_same_window"
	SectionTimeOverlap   Kind = "section_time_overlap"
	LunchViolation       Kind = "lunch_violation"
	EmploymentViolation  Kind = "employment_violation"
	RoomCapacityBreach   Kind = "room_capacity_violation"
	RoomScarcity         Kind = "room_scarcity"
)

// GAWeights are the per-occurrence penalty weights the genetic algorithm
// fitness function applies (§4.7). The five variance/deviation terms
// (day distribution, instructor load, room utilization, meeting pattern,
// units coverage) are not per-occurrence and are scored separately by
// Report's continuous fields, each multiplied by its own weight below.
var GAWeights = map[Kind]float64{
	InstructorOverlap:    200,
	RoomOverlap:          200,
	SectionDoubleBooked:  400,
	SameCourseSameWindow: 300,
	SectionTimeOverlap:   500,
	LunchViolation:       300,
	EmploymentViolation:  100,
	RoomCapacityBreach:   50,
	RoomScarcity:         150,
}

const (
	DayDistributionWeight  = 20
	InstructorLoadWeight   = 30
	RoomUtilizationWeight  = 15
	MeetingPatternWeight   = 25
	UnitsCoverageWeight    = 100
	ExactSessionCountBonus = -100
)

// CP soft-penalty weights (§4.5), applied per placement rather than per
// conflicting pair — the CP model's hard constraints already forbid the
// overlaps the GA weights above are penalizing.
const (
	CPLunchOverlap             = 10
	CPPartTimeNonEvening       = 2
	CPFullTimeEvening          = 3
	CPPartTimeMorningExtra     = 5
	CPDayUsageTax              = 1
)

// LunchOverlaps reports whether a window's [start,end) intersects the
// lunch band [12:00, 12:59].
func LunchOverlaps(w domain.Window) bool {
	return w.Start < "12:59:00" && "12:00:00" < w.End
}

// CPSoftCost computes the §4.5 soft-penalty contribution of placing one
// session of the given employment type into window w. Day-usage tax (1,
// uniform) is added by the caller once per placement since it does not
// depend on w.
func CPSoftCost(w domain.Window, emp domain.EmploymentType) float64 {
	cost := 0.0
	if LunchOverlaps(w) {
		cost += CPLunchOverlap
	}
	switch emp {
	case domain.PartTime:
		if w.Period != domain.Evening {
			cost += CPPartTimeNonEvening
		}
		if w.Period == domain.Morning {
			cost += CPPartTimeMorningExtra
		}
	case domain.FullTime:
		if w.Period == domain.Evening {
			cost += CPFullTimeEvening
		}
	}
	return cost
}

// Report is the full conflict breakdown over a candidate schedule,
// produced by Detect and consumed by the GA fitness function and by the
// driver's "conflicts"/"total_conflicts" response fields.
type Report struct {
	Counts                   map[Kind]int
	DayDistributionVariance  float64
	InstructorLoadVariance   float64
	RoomUtilizationDeviation float64
	MeetingPatternPenalty    int
	UnitsCoverageDeviation   float64
	ExactSessionCounts       bool
}

// Total sums every per-occurrence count in the report, ignoring the
// continuous terms (those are reported separately since they are not
// "occurrences").
func (r Report) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Detect scans a candidate schedule for every conflict kind in the shared
// taxonomy. expectedHours and expectedCounts map each demand (by DemandKey)
// to the total hours and the number of sessions its decomposition calls
// for, so units-coverage deviation and the exact-session-count bonus can be
// computed.
func Detect(sessions []domain.ScheduledSession, rooms map[int]domain.Room, expectedHours map[string]float64, expectedCounts map[string]int) Report {
	counts := make(map[Kind]int)

	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			a, b := sessions[i], sessions[j]
			if !a.Overlaps(b) {
				continue
			}
			if a.Instructor.Name == b.Instructor.Name {
				counts[InstructorOverlap]++
			}
			if a.RoomID != nil && b.RoomID != nil && *a.RoomID == *b.RoomID {
				counts[RoomOverlap]++
			}
			sameSection := a.Demand.Section() == b.Demand.Section()
			if sameSection {
				if a.Start == b.Start && a.End == b.End {
					counts[SectionDoubleBooked]++
				} else {
					counts[SectionTimeOverlap]++
				}
			}
			if !sameSection && a.Demand.CourseCode == b.Demand.CourseCode && a.Start == b.Start && a.End == b.End && a.Day == b.Day {
				counts[SameCourseSameWindow]++
			}
		}

		w := domain.Window{Day: sessions[i].Day, Start: sessions[i].Start, End: sessions[i].End, Period: sessions[i].Period}
		if LunchOverlaps(w) {
			counts[LunchViolation]++
		}
		if employmentViolates(sessions[i]) {
			counts[EmploymentViolation]++
		}
		if sessions[i].RoomID != nil {
			if r, ok := rooms[*sessions[i].RoomID]; ok && !roomCapacityOK(sessions[i], r) {
				counts[RoomCapacityBreach]++
			}
		}
	}

	dayTotals := make(map[domain.Day]int)
	instructorTotals := make(map[string]int)
	roomTotals := make(map[int]int)
	courseSessionCount := make(map[string][]domain.ScheduledSession)
	courseHours := make(map[string]float64)

	for _, s := range sessions {
		dayTotals[s.Day]++
		instructorTotals[s.Instructor.Name]++
		if s.RoomID != nil {
			roomTotals[*s.RoomID]++
		}
		key := DemandKey(s.Demand)
		courseSessionCount[key] = append(courseSessionCount[key], s)
		courseHours[key] += hoursOf(s)
	}

	report := Report{
		Counts:                  counts,
		DayDistributionVariance: variance(intValues(dayTotals)),
		InstructorLoadVariance:  variance(intValues(instructorTotals)),
		RoomUtilizationDeviation: variance(intValues(roomTotals)),
		ExactSessionCounts:      true,
	}

	for key, placed := range courseSessionCount {
		expectedCount := expectedCounts[key]
		if len(placed) != expectedCount {
			report.ExactSessionCounts = false
		}
		if expectedCount > 0 && len(placed) == 1 {
			// a single session for a course whose units imply more than one
			// meeting, or every session landing on the same day, is a poor
			// meeting-pattern shape even though no hard rule forbids it.
			if expectedHours[key] > 2.0 {
				report.MeetingPatternPenalty++
			}
		}
		if allSameDay(placed) && len(placed) > 1 {
			report.MeetingPatternPenalty++
		}
	}

	for key, expected := range expectedHours {
		report.UnitsCoverageDeviation += math.Abs(courseHours[key] - expected)
	}

	return report
}

// DemandKey identifies one demand across a schedule, the grouping key used
// for units-coverage and meeting-pattern checks.
func DemandKey(d domain.CourseDemand) string {
	return d.CourseCode + "|" + d.Section() + "|" + d.InstructorName
}

func employmentViolates(s domain.ScheduledSession) bool {
	switch s.Instructor.EmploymentType {
	case domain.PartTime:
		return s.Period != domain.Evening
	case domain.FullTime:
		return s.Period == domain.Evening
	}
	return false
}

func roomCapacityOK(s domain.ScheduledSession, r domain.Room) bool {
	// Session duration alone does not carry headcount; the driver feeds a
	// pre-resolved demand through CourseDemand instead when checking this
	// at assignment time (internal/room.Suitable). Detect only flags the
	// case actually observable from the schedule itself: an inactive or
	// lab-mismatched room slipping through, which would be a bug upstream.
	return r.IsActive && r.IsLab == s.Demand.RequiresLab
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

func allSameDay(sessions []domain.ScheduledSession) bool {
	if len(sessions) == 0 {
		return false
	}
	first := sessions[0].Day
	for _, s := range sessions[1:] {
		if s.Day != first {
			return false
		}
	}
	return true
}

func intValues[K comparable](m map[K]int) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, float64(v))
	}
	return out
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

// Fitness applies GAWeights plus the continuous-term weights to a Report,
// producing the single scalar the GA's tournament selection compares —
// lower is better.
func Fitness(r Report) float64 {
	score := 0.0
	for kind, count := range r.Counts {
		score += GAWeights[kind] * float64(count)
	}
	score += DayDistributionWeight * r.DayDistributionVariance
	score += InstructorLoadWeight * r.InstructorLoadVariance
	score += RoomUtilizationWeight * r.RoomUtilizationDeviation
	score += MeetingPatternWeight * float64(r.MeetingPatternPenalty)
	score += UnitsCoverageWeight * r.UnitsCoverageDeviation
	if r.ExactSessionCounts {
		score += ExactSessionCountBonus
	}
	return score
}
