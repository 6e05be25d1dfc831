package intake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udp-timetabling/scheduler/internal/cpsolve"
)

func sampleSolveRequest() Request {
	seed := int64(99)
	return Request{
		InstructorData: []InstructorDataItem{
			{Name: "Jane Doe", CourseCode: "CS101", Subject: "Intro to CS", Unit: 3, YearLevel: "1", Block: "A", EmploymentType: "FULL-TIME", Dept: "CS", SessionType: "Non-Lab session"},
			{Name: "Bob Ray", CourseCode: "CS102", Subject: "Data Structures", Unit: 2, YearLevel: "1", Block: "B", EmploymentType: "PART-TIME", Dept: "CS", SessionType: "Non-Lab session"},
		},
		Rooms: []RoomItem{
			{RoomID: 1, RoomName: "R101", Capacity: 40, IsActive: true},
			{RoomID: 2, RoomName: "R102", Capacity: 40, IsActive: true},
		},
		TimeLimitSec: 5,
		Seed:         &seed,
	}
}

func TestDriverSolveRejectsInvalidRequest(t *testing.T) {
	driver := Driver{CPEngine: cpsolve.GreedyEngine{}}
	resp := driver.Solve(context.Background(), Request{})
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
}

func TestDriverSolveWithGreedyCPEngineProducesSchedule(t *testing.T) {
	driver := Driver{CPEngine: cpsolve.GreedyEngine{}}
	resp := driver.Solve(context.Background(), sampleSolveRequest())
	require.True(t, resp.Success)
	assert.NotEmpty(t, resp.Schedules)
}
