package gasolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/rng"
)

func TestRepairResolvesSectionOverlap(t *testing.T) {
	demand := domain.CourseDemand{CourseCode: "CS101", Department: "CS", YearLevel: "1", Block: "A", EmploymentType: domain.FullTime}
	instructor := domain.Instructor{Name: "Jane", EmploymentType: domain.FullTime}

	ind := Individual{Sessions: []domain.ScheduledSession{
		{Demand: demand, Instructor: instructor, Day: domain.Monday, Start: "09:00:00", End: "10:30:00"},
		{Demand: demand, Instructor: instructor, Day: domain.Monday, Start: "09:30:00", End: "11:00:00"},
	}}

	catalog := calendar.Generate(rng.New(9))
	repaired := repair(ind, catalog, sampleRooms(), rng.New(9))

	for i := 0; i < len(repaired.Sessions); i++ {
		for j := i + 1; j < len(repaired.Sessions); j++ {
			if repaired.Sessions[i].Demand.Section() == repaired.Sessions[j].Demand.Section() {
				assert.False(t, repaired.Sessions[i].Overlaps(repaired.Sessions[j]))
			}
		}
	}
}

func TestRepairResolvesLunchViolation(t *testing.T) {
	demand := domain.CourseDemand{CourseCode: "CS101", Department: "CS", YearLevel: "1", Block: "A", EmploymentType: domain.FullTime}
	instructor := domain.Instructor{Name: "Jane", EmploymentType: domain.FullTime}

	ind := Individual{Sessions: []domain.ScheduledSession{
		{Demand: demand, Instructor: instructor, Day: domain.Monday, Start: "11:30:00", End: "13:00:00"},
	}}

	catalog := calendar.Generate(rng.New(13))
	repaired := repair(ind, catalog, sampleRooms(), rng.New(13))
	for _, s := range repaired.Sessions {
		assert.False(t, conflictLunch(domain.Window{Start: s.Start, End: s.End}))
	}
}
