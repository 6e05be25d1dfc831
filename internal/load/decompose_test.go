package load

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

func TestSessionsZeroUnits(t *testing.T) {
	assert.Nil(t, Sessions(0, domain.FullTime))
	assert.Nil(t, Sessions(-1, domain.PartTime))
}

func TestSessionsPartTimeBoundaries(t *testing.T) {
	assert.Equal(t, []float64{1.5, 1.5}, Sessions(3, domain.PartTime))
	assert.Equal(t, []float64{1.5}, Sessions(2, domain.PartTime))
}

func TestPartTimeSessionsFractionalUnits(t *testing.T) {
	assert.Equal(t, []float64{1.5, 1.0}, partTimeSessions(2.5))
	assert.Equal(t, []float64{1.5}, partTimeSessions(1.5))
}

func TestSessionsFullTimeBoundaries(t *testing.T) {
	assert.Equal(t, []float64{1.0}, Sessions(1, domain.FullTime))
	assert.Equal(t, []float64{2.0}, Sessions(2, domain.FullTime))
	assert.Equal(t, []float64{2.5, 2.5}, Sessions(5, domain.FullTime))
	assert.Equal(t, []float64{5, 5}, Sessions(10, domain.FullTime))
}

func TestSessionsFullTimeBeyondTable(t *testing.T) {
	out := Sessions(12, domain.FullTime)
	total := 0.0
	for _, h := range out {
		total += h
	}
	assert.InDelta(t, 12.0, total, 0.01)
	for _, h := range out {
		assert.LessOrEqual(t, h, 5.0)
	}
}

func TestDistributionPartTimePacksThreeToFourHours(t *testing.T) {
	out := Distribution(12, domain.PartTime, OptionSingleBlock)
	total := 0.0
	for _, h := range out {
		assert.GreaterOrEqual(t, h, 3.0)
		assert.LessOrEqual(t, h, 4.0)
		total += h
	}
	assert.InDelta(t, 12.0, total, 0.01)
}

func TestDistributionFullTimeTwoHalves(t *testing.T) {
	out := Distribution(8, domain.FullTime, OptionTwoHalves)
	assert.Len(t, out, 2)
	assert.InDelta(t, 8.0, out[0]+out[1], 0.01)
}
