package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

func TestDayLoadWeightDecreasesAsCountGrows(t *testing.T) {
	dl := NewDayLoad()
	before := dl.Weight(domain.Monday)
	dl.Record(domain.Monday)
	after := dl.Weight(domain.Monday)

	assert.Greater(t, before, after)
	assert.Equal(t, 1, dl.Count(domain.Monday))
}

func TestDayLoadIgnoresOutOfRangeDay(t *testing.T) {
	dl := NewDayLoad()
	dl.Record(domain.UnknownDay)
	assert.Equal(t, 0, dl.Count(domain.UnknownDay))
}
