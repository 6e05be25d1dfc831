package gasolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/rng"
)

// cyclicRand deterministically visits every index 0..n-1 in order, so a
// tournament of size n is guaranteed to sample the whole population once.
type cyclicRand struct{ calls int }

func (c *cyclicRand) Intn(n int) int {
	v := c.calls % n
	c.calls++
	return v
}
func (c *cyclicRand) Float64() float64                    { return 0 }
func (c *cyclicRand) Shuffle(n int, swap func(i, j int)) {}

func TestTournamentSelectPrefersLowerFitness(t *testing.T) {
	pop := []Individual{
		{Sessions: []domain.ScheduledSession{{Demand: domain.CourseDemand{CourseCode: "A"}}}},
		{Sessions: []domain.ScheduledSession{{Demand: domain.CourseDemand{CourseCode: "B"}}}},
		{Sessions: []domain.ScheduledSession{{Demand: domain.CourseDemand{CourseCode: "C"}}}},
	}
	fitness := []float64{500, 10, 900}

	best := tournamentSelect(pop, fitness, 3, &cyclicRand{})
	assert.Equal(t, pop[1], best)
}

func TestCrossoverKeepsEveryCourse(t *testing.T) {
	a := Individual{Sessions: []domain.ScheduledSession{
		{Demand: domain.CourseDemand{CourseCode: "CS101"}},
	}}
	b := Individual{Sessions: []domain.ScheduledSession{
		{Demand: domain.CourseDemand{CourseCode: "CS102"}},
	}}

	child := crossover(a, b, rng.New(2))
	codes := make(map[string]bool)
	for _, s := range child.Sessions {
		codes[s.Demand.CourseCode] = true
	}
	assert.True(t, codes["CS101"])
	assert.True(t, codes["CS102"])
}

func TestMutateAddOrRemoveNeverDropsLastSessionOfADemand(t *testing.T) {
	demands := sampleDemands()
	instructors := map[string]domain.Instructor{
		"Jane": {ID: 1, Name: "Jane", EmploymentType: domain.FullTime},
		"Bob":  {ID: 2, Name: "Bob", EmploymentType: domain.PartTime},
	}
	sessions := []domain.ScheduledSession{
		{Demand: demands[0], Instructor: instructors["Jane"], Day: domain.Monday, Start: "09:00:00", End: "10:30:00"},
	}

	r := rng.New(5)
	catalog := calendar.Generate(rng.New(5))
	out := mutateAddOrRemove(sessions, demands, instructors, catalog, sampleRooms(), r)
	require.NotEmpty(t, out)
}
