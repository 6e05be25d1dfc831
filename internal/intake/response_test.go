package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

func TestToScheduleItemsPopulatesInstructorID(t *testing.T) {
	instructors := map[string]domain.Instructor{
		"Jane": {ID: 7, Name: "Jane", EmploymentType: domain.FullTime},
	}
	sessions := []domain.ScheduledSession{
		{
			Demand:      domain.CourseDemand{CourseCode: "CS101", Description: "Intro", Units: 3, YearLevel: "1", Block: "A", Department: "CS", InstructorName: "Jane"},
			Instructor:  instructors["Jane"],
			Day:         domain.Wednesday,
			Start:       "09:00:00",
			End:         "10:30:00",
			SessionType: "Non-Lab session",
		},
	}

	items := toScheduleItems(sessions, instructors)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].InstructorID)
	assert.Equal(t, "Wednesday", items[0].Day)
	assert.Equal(t, "CS-1 A", items[0].Section)
}

func TestTo12Hour(t *testing.T) {
	assert.Equal(t, "9:00 AM", To12Hour("09:00:00"))
	assert.Equal(t, "12:00 PM", To12Hour("12:00:00"))
	assert.Equal(t, "1:30 PM", To12Hour("13:30:00"))
	assert.Equal(t, "12:00 AM", To12Hour("00:00:00"))
}

func TestDayNameUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", dayName(domain.UnknownDay))
	assert.Equal(t, "Monday", dayName(domain.Monday))
}
