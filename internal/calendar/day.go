// Package calendar provides the day model (C1) and the weekly time-window
// catalog (C2). Both are pure functions of fixed templates: nothing here
// reads external state beyond the PRNG handed in for window interleaving.
package calendar

import (
	"sort"
	"strings"

	"github.com/udp-timetabling/scheduler/internal/domain"
)

// canonicalNames is Monday..Saturday in catalog order; index == domain.Day.
var canonicalNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// compactLabels mirrors canonicalNames for the abbreviation builder.
var compactLabels = []string{"M", "T", "W", "Th", "F", "Sat"}

// aliases maps every spelling/abbreviation we accept (lower-cased) to its
// canonical day. Unknown spellings are left for the caller to reject.
var aliases = map[string]domain.Day{
	"monday": domain.Monday, "mon": domain.Monday, "m": domain.Monday,
	"tuesday": domain.Tuesday, "tue": domain.Tuesday, "tues": domain.Tuesday, "t": domain.Tuesday,
	"wednesday": domain.Wednesday, "wed": domain.Wednesday, "w": domain.Wednesday,
	"thursday": domain.Thursday, "thu": domain.Thursday, "thur": domain.Thursday, "thurs": domain.Thursday, "th": domain.Thursday,
	"friday": domain.Friday, "fri": domain.Friday, "f": domain.Friday,
	"saturday": domain.Saturday, "sat": domain.Saturday,
}

// Normalize converts a free-form day spelling to its canonical form.
// Already-canonical input is returned unchanged. Unknown input is returned
// unchanged too, but Validate on it will fail — callers that need to reject
// bad input should always call Validate, not just Normalize.
func Normalize(raw string) string {
	if day, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonicalNames[day]
	}
	return raw
}

// Validate reports whether raw names a recognized day (any accepted
// spelling, case-insensitive).
func Validate(raw string) bool {
	_, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// Index resolves raw to its ordinal, or domain.UnknownDay if unrecognized.
func Index(raw string) domain.Day {
	if day, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return day
	}
	return domain.UnknownDay
}

// NextDay returns the following day, wrapping Saturday back to Monday.
func NextDay(raw string) string {
	day := Index(raw)
	if day == domain.UnknownDay {
		return raw
	}
	if day == domain.Saturday {
		return canonicalNames[domain.Monday]
	}
	return canonicalNames[day+1]
}

// SortSessions orders sessions by (day ordinal, start time), with unknown
// days sorted after all known days while preserving their relative input
// order (a stable sort gives us that for free).
func SortSessions(sessions []domain.ScheduledSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		di, dj := sessions[i].Day, sessions[j].Day
		if di != dj {
			return rank(di) < rank(dj)
		}
		return sessions[i].Start < sessions[j].Start
	})
}

func rank(d domain.Day) int {
	if d == domain.UnknownDay {
		return int(domain.Saturday) + 1
	}
	return int(d)
}

// GroupByDay buckets sessions by day, each bucket ordered internally by
// start time (SortSessions guarantees this if called first).
func GroupByDay(sessions []domain.ScheduledSession) map[domain.Day][]domain.ScheduledSession {
	buckets := make(map[domain.Day][]domain.ScheduledSession)
	for _, s := range sessions {
		buckets[s.Day] = append(buckets[s.Day], s)
	}
	for day := range buckets {
		bucket := buckets[day]
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Start < bucket[j].Start })
		buckets[day] = bucket
	}
	return buckets
}

// CompactLabel builds an abbreviated label from a list of day spellings,
// emitted in canonical Monday..Saturday order with duplicates suppressed.
// CompactLabel(["wed","Mon","fri","FRI"]) == "MWF".
func CompactLabel(raw []string) string {
	seen := make([]bool, len(canonicalNames))
	for _, r := range raw {
		if day := Index(r); day != domain.UnknownDay {
			seen[day] = true
		}
	}
	var b strings.Builder
	for day, present := range seen {
		if present {
			b.WriteString(compactLabels[day])
		}
	}
	return b.String()
}

// SuggestPattern maps a weekly meeting count to a conventional day pattern.
// A single meeting has no canonical day, so the caller's rng picks one.
func SuggestPattern(numSessions int, rng Rand) []domain.Day {
	switch {
	case numSessions <= 1:
		return []domain.Day{domain.Day(rng.Intn(len(canonicalNames)))}
	case numSessions == 2:
		return []domain.Day{domain.Monday, domain.Friday}
	case numSessions == 3:
		return []domain.Day{domain.Monday, domain.Wednesday, domain.Friday}
	default:
		pattern := make([]domain.Day, numSessions)
		for i := range pattern {
			pattern[i] = domain.Day(i % len(canonicalNames))
		}
		return pattern
	}
}

// Rand is the minimal PRNG surface calendar needs, so tests and solvers can
// supply a seeded source without calendar importing math/rand directly
// everywhere it needs randomness.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}
