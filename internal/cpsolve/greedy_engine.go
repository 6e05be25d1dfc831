package cpsolve

import (
	"context"
	"sort"
)

// GreedyEngine is a test-only stand-in for OrToolsEngine: it greedily
// picks the lowest-weight surviving candidate per exactly-one group,
// skipping any candidate that would violate an at-most-one group already
// committed to. It exercises the problem.go encoding in package tests
// without paying for a real CP-SAT solve; production always uses
// OrToolsEngine.
type GreedyEngine struct{}

func (GreedyEngine) Solve(_ context.Context, problem Problem) (Result, error) {
	membership := make(map[int][]int) // variable id -> at-most-one group indices
	var atMostOne []Group
	var exactlyOne []Group
	for _, g := range problem.Groups {
		switch g.Bound {
		case "at_most_one":
			idx := len(atMostOne)
			atMostOne = append(atMostOne, g)
			for _, id := range g.VariableIDs {
				membership[id] = append(membership[id], idx)
			}
		case "exactly_one":
			exactlyOne = append(exactlyOne, g)
		}
	}

	weight := make(map[int]float64, len(problem.Variables))
	for _, v := range problem.Variables {
		weight[v.ID] = v.Weight
	}

	used := make([]bool, len(atMostOne))
	var selected []int
	feasible := true

	for _, g := range exactlyOne {
		candidates := append([]int(nil), g.VariableIDs...)
		sort.Slice(candidates, func(i, j int) bool { return weight[candidates[i]] < weight[candidates[j]] })

		picked := -1
		for _, id := range candidates {
			if !anyUsed(membership[id], used) {
				picked = id
				break
			}
		}
		if picked == -1 {
			// every candidate collides with something already chosen; take
			// the cheapest anyway and record the model as infeasible.
			picked = candidates[0]
			feasible = false
		}
		for _, idx := range membership[picked] {
			used[idx] = true
		}
		selected = append(selected, picked)
	}

	status := Feasible
	if !feasible {
		status = Infeasible
	}
	if len(exactlyOne) == 0 {
		status = Infeasible
	}
	return Result{Status: status, Selected: selected}, nil
}

func anyUsed(groupIdxs []int, used []bool) bool {
	for _, idx := range groupIdxs {
		if used[idx] {
			return true
		}
	}
	return false
}
