package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedProducesSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestIntnZeroIsSafe(t *testing.T) {
	r := New(1)
	assert.Equal(t, 0, r.Intn(0))
}

func TestShuffleIsDeterministicForSameSeed(t *testing.T) {
	a := New(7)
	b := New(7)

	sliceA := []int{1, 2, 3, 4, 5}
	sliceB := []int{1, 2, 3, 4, 5}
	a.Shuffle(len(sliceA), func(i, j int) { sliceA[i], sliceA[j] = sliceA[j], sliceA[i] })
	b.Shuffle(len(sliceB), func(i, j int) { sliceB[i], sliceB[j] = sliceB[j], sliceB[i] })

	assert.Equal(t, sliceA, sliceB)
}
