package gasolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/rng"
)

func sampleDemands() []domain.CourseDemand {
	return []domain.CourseDemand{
		{CourseCode: "CS101", Department: "CS", YearLevel: "1", Block: "A", Units: 3, EmploymentType: domain.FullTime, InstructorName: "Jane"},
		{CourseCode: "CS102", Department: "CS", YearLevel: "1", Block: "B", Units: 2, EmploymentType: domain.PartTime, InstructorName: "Bob", RequiresLab: true},
	}
}

func sampleRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Capacity: 50, IsActive: true},
		{ID: 2, Capacity: 50, IsActive: true, IsLab: true},
	}
}

func TestSeedOneCoversEveryDemand(t *testing.T) {
	demands := sampleDemands()
	instructors := map[string]domain.Instructor{
		"Jane": {ID: 1, Name: "Jane", EmploymentType: domain.FullTime},
		"Bob":  {ID: 2, Name: "Bob", EmploymentType: domain.PartTime},
	}
	catalog := calendar.Generate(rng.New(11))

	ind := seedOne(demands, instructors, catalog, sampleRooms(), rng.New(11))
	require.NotEmpty(t, ind.Sessions)

	byCode := make(map[string]int)
	for _, s := range ind.Sessions {
		byCode[s.Demand.CourseCode]++
	}
	assert.Greater(t, byCode["CS101"], 0)
	assert.Greater(t, byCode["CS102"], 0)
}

func TestSeedPopulationSizeMatchesRequest(t *testing.T) {
	demands := sampleDemands()
	instructors := map[string]domain.Instructor{
		"Jane": {ID: 1, Name: "Jane", EmploymentType: domain.FullTime},
		"Bob":  {ID: 2, Name: "Bob", EmploymentType: domain.PartTime},
	}
	catalog := calendar.Generate(rng.New(4))

	pop := SeedPopulation(6, demands, instructors, catalog, sampleRooms(), rng.New(4))
	assert.Len(t, pop, 6)
}
