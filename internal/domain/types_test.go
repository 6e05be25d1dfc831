package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseDemandSection(t *testing.T) {
	d := CourseDemand{Department: "CS", YearLevel: "2", Block: "A"}
	assert.Equal(t, "CS-2 A", d.Section())
}

func TestScheduledSessionOverlaps(t *testing.T) {
	base := ScheduledSession{Day: Monday, Start: "09:00:00", End: "10:30:00"}

	cases := []struct {
		name string
		with ScheduledSession
		want bool
	}{
		{"identical window", ScheduledSession{Day: Monday, Start: "09:00:00", End: "10:30:00"}, true},
		{"partial overlap", ScheduledSession{Day: Monday, Start: "10:00:00", End: "11:00:00"}, true},
		{"touching edge is not overlap", ScheduledSession{Day: Monday, Start: "10:30:00", End: "12:00:00"}, false},
		{"different day", ScheduledSession{Day: Tuesday, Start: "09:00:00", End: "10:30:00"}, false},
		{"fully contained", ScheduledSession{Day: Monday, Start: "09:15:00", End: "09:45:00"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.with))
			assert.Equal(t, tc.want, tc.with.Overlaps(base))
		})
	}
}
