package cpsolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udp-timetabling/scheduler/internal/calendar"
	"github.com/udp-timetabling/scheduler/internal/domain"
	"github.com/udp-timetabling/scheduler/internal/rng"
)

func TestSolveWithGreedyEngineProducesDisjointSessions(t *testing.T) {
	catalog := calendar.Generate(rng.New(3))

	demands := []domain.CourseDemand{
		{CourseCode: "CS101", Department: "CS", YearLevel: "1", Block: "A", Units: 3, EmploymentType: domain.FullTime, InstructorName: "Jane"},
		{CourseCode: "CS102", Department: "CS", YearLevel: "1", Block: "B", Units: 3, EmploymentType: domain.FullTime, InstructorName: "Jane"},
	}
	instructors := map[string]domain.Instructor{
		"Jane": {ID: 1, Name: "Jane", EmploymentType: domain.FullTime},
	}

	outcome, err := Solve(context.Background(), GreedyEngine{}, demands, instructors, catalog, DefaultConfig())
	require.NoError(t, err)
	require.Contains(t, []Status{Optimal, Feasible, Infeasible}, outcome.Status)

	for i := 0; i < len(outcome.Sessions); i++ {
		for j := i + 1; j < len(outcome.Sessions); j++ {
			if outcome.Sessions[i].Instructor.Name == outcome.Sessions[j].Instructor.Name {
				assert.False(t, outcome.Sessions[i].Overlaps(outcome.Sessions[j]), "same instructor sessions must not overlap")
			}
		}
	}
}

func TestSolveEmptyDemandsYieldsInfeasible(t *testing.T) {
	catalog := calendar.Generate(rng.New(1))
	outcome, err := Solve(context.Background(), GreedyEngine{}, nil, nil, catalog, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Infeasible, outcome.Status)
}
