package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

func TestEstimatedStudentsClamps(t *testing.T) {
	assert.Equal(t, 20, EstimatedStudents(1))
	assert.Equal(t, 30, EstimatedStudents(3))
	assert.Equal(t, 50, EstimatedStudents(10))
}

func TestSuitable(t *testing.T) {
	demand := domain.CourseDemand{Units: 3, RequiresLab: false}
	assert.True(t, Suitable(demand, domain.Room{IsActive: true, IsLab: false, Capacity: 24}))
	assert.False(t, Suitable(demand, domain.Room{IsActive: false, IsLab: false, Capacity: 50}))
	assert.False(t, Suitable(demand, domain.Room{IsActive: true, IsLab: true, Capacity: 50}))
	assert.False(t, Suitable(demand, domain.Room{IsActive: true, IsLab: false, Capacity: 10}))
}

func TestFallbackRoomsLimitsToThree(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, IsActive: true, IsLab: true},
		{ID: 2, IsActive: true, IsLab: true},
		{ID: 3, IsActive: true, IsLab: true},
		{ID: 4, IsActive: true, IsLab: true},
		{ID: 5, IsActive: true, IsLab: false},
	}
	out := FallbackRooms(true, rooms)
	assert.Len(t, out, 3)
	for _, r := range out {
		assert.True(t, r.IsLab)
	}
}

func TestFallbackRoomsEmptyWhenNoLab(t *testing.T) {
	rooms := []domain.Room{{ID: 1, IsActive: true, IsLab: false}}
	assert.Empty(t, FallbackRooms(true, rooms))
}
