// Package load turns a course's (units, employment type) into the ordered
// list of session durations both solver paths place — the session
// decomposer, component C3.
package load

import (
	"math"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

// fullTimeTable is the fixed decomposition for the unit counts the catalog
// names explicitly; anything else falls through to the general rules.
var fullTimeTable = map[int][]float64{
	5:  {2.5, 2.5},
	6:  {3, 3},
	7:  {3.5, 3.5},
	8:  {4, 4},
	9:  {4.5, 4.5},
	10: {5, 5},
}

// Sessions decomposes units into an ordered list of session durations for
// the given employment type. units <= 0 returns an empty list; the caller
// must treat that as an upstream error, not silently skip the demand.
func Sessions(units int, emp domain.EmploymentType) []float64 {
	if units <= 0 {
		return nil
	}
	if emp == domain.PartTime {
		return partTimeSessions(float64(units))
	}
	return fullTimeSessions(units)
}

// partTimeSessions greedily packs 1.5h blocks, appending a trailing 1.0h
// block if at least that much remains.
func partTimeSessions(units float64) []float64 {
	var out []float64
	remaining := units
	for remaining >= 1.5 {
		out = append(out, 1.5)
		remaining -= 1.5
	}
	if remaining >= 1.0 {
		out = append(out, 1.0)
	}
	return out
}

// fullTimeSessions uses the fixed table for {5..10}; beyond 10 it packs 5h
// blocks with a trailing remainder block if it's at least 1.0h; everything
// else splits in two, capped at 5h per session and a 2.0h floor on the
// first half.
func fullTimeSessions(units int) []float64 {
	if shape, ok := fullTimeTable[units]; ok {
		return append([]float64(nil), shape...)
	}
	if units > 10 {
		var out []float64
		remaining := units
		for remaining >= 5 {
			out = append(out, 5)
			remaining -= 5
		}
		if remaining > 0 {
			if float64(remaining) >= 1.0 {
				out = append(out, round1(float64(remaining)))
			} else if len(out) > 0 {
				out[len(out)-1] = round1(out[len(out)-1] + float64(remaining))
			}
		}
		return out
	}
	return evenSplit(float64(units))
}

// evenSplit divides units into two sessions capped at 5h each, with the
// first session never dropping below 2.0h.
func evenSplit(units float64) []float64 {
	if units <= 2.0 {
		return []float64{round1(units)}
	}
	half := units / 2
	if half > 5 {
		half = 5
	}
	if half < 2.0 {
		half = 2.0
	}
	first := round1(half)
	second := round1(units - first)
	if second <= 0 {
		return []float64{first}
	}
	return []float64{first, second}
}

// Option selects between the user-facing session shapes exposed by
// Distribution.
type Option string

const (
	OptionSingleBlock Option = "A"
	OptionTwoHalves   Option = "B"
)

// Distribution exposes user-selectable shapes that do not change any hard
// constraint, only the shape handed to the solvers: option A chunks
// full-time units into a single block (split at 5h if it would otherwise
// exceed the per-session cap), option B splits into two roughly equal
// halves (minimum 2 units before splitting is worthwhile), and part-time
// always uses 3-4h packs for courses of 6 or more units.
func Distribution(units int, emp domain.EmploymentType, option Option) []float64 {
	if units <= 0 {
		return nil
	}
	if emp == domain.PartTime {
		if units >= 6 {
			return packRange(float64(units), 3.0, 4.0)
		}
		return partTimeSessions(float64(units))
	}

	switch option {
	case OptionTwoHalves:
		if units < 2 {
			return []float64{round1(float64(units))}
		}
		return evenSplit(float64(units))
	default: // OptionSingleBlock
		if units <= 5 {
			return []float64{round1(float64(units))}
		}
		var out []float64
		remaining := float64(units)
		for remaining > 5 {
			out = append(out, 5)
			remaining -= 5
		}
		if remaining > 0 {
			out = append(out, round1(remaining))
		}
		return out
	}
}

// packRange greedily packs blocks between [lo, hi] hours. A remainder
// shorter than lo is topped up to lo by shortening earlier blocks, none of
// them below lo; that keeps every block in range whenever units >= 2*lo.
func packRange(units, lo, hi float64) []float64 {
	var out []float64
	remaining := units
	for remaining > hi {
		out = append(out, hi)
		remaining -= hi
	}
	if remaining > 0 {
		if remaining < lo && len(out) > 0 {
			need := lo - remaining
			for i := len(out) - 1; i >= 0 && need > 0; i-- {
				take := math.Min(out[i]-lo, need)
				out[i] = round1(out[i] - take)
				need -= take
			}
			out = append(out, round1(lo-need))
		} else {
			out = append(out, round1(remaining))
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
