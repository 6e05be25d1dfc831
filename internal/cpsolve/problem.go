// Package cpsolve is the constraint-programming path (C5): it encodes the
// assignment as boolean decision variables with hard constraints and a
// weighted objective, hands the encoding to an in-process CP-SAT engine
// (OrToolsEngine, backed by github.com/google/or-tools/sat), and decodes
// the returned assignment back into scheduled sessions. Room
// assignment happens afterward, in internal/room (C6) — rooms are
// deliberately not CP variables (design note, spec §9): lifting them in
// would roughly quadruple the variable count, and the post-hoc greedy pass
// is cheap because §4.4 filters aggressively and room overlap is rare once
// time windows are disjoint per instructor/section.
package cpsolve

import (
	"strconv"

	"github.com/udp-timetabling/scheduler/internal/conflict"
	"github.com/udp-timetabling/scheduler/internal/domain"
)

// Variable is one boolean decision x[c,k,s]: "session k of demand c is
// placed in window s".
type Variable struct {
	ID         int           `json:"id"`
	DemandIdx  int           `json:"demand_index"`
	SessionIdx int           `json:"session_index"`
	Window     domain.Window `json:"window"`
	Weight     float64       `json:"weight"` // soft-penalty cost if selected
}

// Group is a set of variable ids with a cardinality bound: "exactly one"
// encodes H1, "at most one" encodes H2 and H3.
type Group struct {
	VariableIDs []int  `json:"variable_ids"`
	Bound       string `json:"bound"` // "exactly_one" | "at_most_one"
}

// Problem is the self-contained document handed to the external engine.
type Problem struct {
	ID         string     `json:"id"`
	Variables  []Variable `json:"variables"`
	Groups     []Group    `json:"groups"`
	WallTimeMS int        `json:"wall_time_ms"`
	Workers    int        `json:"workers"`
	Presolve   bool       `json:"presolve"`
}

// demandInput bundles what Build needs to know per demand: its decomposed
// session durations and the windows it is allowed to use (already filtered
// by employment type).
type demandInput struct {
	demand    domain.CourseDemand
	durations []float64
	windows   []domain.Window
}

// Build encodes demands (with their pre-decomposed session durations) over
// the supplied per-demand candidate windows into a Problem. A window is
// disqualified for a session whose duration exceeds it (§4.5); sessions
// with no surviving candidate window are simply omitted from the model —
// the driver is expected to have rejected units <= 0 demands upstream, so
// this should only happen if the catalog itself is too sparse for a given
// shape. Solve reports INFEASIBLE only when no variable survives at all.
func Build(demands []demandInput, wallTimeMS, workers int) Problem {
	var variables []Variable
	var groups []Group

	instructorWindow := make(map[string][]int) // "instructor|windowKey" -> var ids (overlap set)
	sectionOverlap := make(map[string][]int)    // "section|windowKey" -> var ids (overlap set)

	nextID := 0
	for di, in := range demands {
		for si, duration := range in.durations {
			var exactlyOne []int
			for _, w := range in.windows {
				if !fitsDuration(w, duration) {
					continue
				}
				v := Variable{
					ID:         nextID,
					DemandIdx:  di,
					SessionIdx: si,
					Window:     w,
					Weight:     conflict.CPSoftCost(w, in.demand.EmploymentType) + conflict.CPDayUsageTax,
				}
				variables = append(variables, v)
				exactlyOne = append(exactlyOne, v.ID)

				for _, ow := range overlappingWindows(in.windows, w) {
					ikey := in.demand.InstructorName + "|" + windowKey(ow)
					instructorWindow[ikey] = append(instructorWindow[ikey], v.ID)
					skey := in.demand.Section() + "|" + windowKey(ow)
					sectionOverlap[skey] = append(sectionOverlap[skey], v.ID)
				}

				nextID++
			}
			if len(exactlyOne) > 0 {
				groups = append(groups, Group{VariableIDs: exactlyOne, Bound: "exactly_one"})
			}
		}
	}

	for _, ids := range instructorWindow {
		if len(ids) > 1 {
			groups = append(groups, Group{VariableIDs: dedupe(ids), Bound: "at_most_one"})
		}
	}
	for _, ids := range sectionOverlap {
		if len(ids) > 1 {
			groups = append(groups, Group{VariableIDs: dedupe(ids), Bound: "at_most_one"})
		}
	}

	return Problem{
		Variables:  variables,
		Groups:     groups,
		WallTimeMS: wallTimeMS,
		Workers:    workers,
		Presolve:   true,
	}
}

func windowKey(w domain.Window) string {
	return strconv.Itoa(int(w.Day)) + w.Start + w.End
}

// overlappingWindows returns every window in pool (including w itself)
// that falls on the same day and intersects w's [start, end).
func overlappingWindows(pool []domain.Window, w domain.Window) []domain.Window {
	var out []domain.Window
	for _, other := range pool {
		if other.Day != w.Day {
			continue
		}
		if other.Start < w.End && w.Start < other.End {
			out = append(out, other)
		}
	}
	return out
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func fitsDuration(w domain.Window, hours float64) bool {
	sh, sm := clockParts(w.Start)
	eh, em := clockParts(w.End)
	windowHours := float64(eh*60+em-(sh*60+sm)) / 60.0
	return windowHours >= hours-0.01
}

func clockParts(hms string) (hour, minute int) {
	if len(hms) < 5 {
		return 0, 0
	}
	hour = int(hms[0]-'0')*10 + int(hms[1]-'0')
	minute = int(hms[3]-'0')*10 + int(hms[4]-'0')
	return hour, minute
}
