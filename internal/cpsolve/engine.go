package cpsolve

import (
	"context"
	"fmt"

	"github.com/google/or-tools/sat"
)

// Status mirrors the CP-SAT status vocabulary the driver understands;
// only Optimal and Feasible yield a schedule.
type Status string

const (
	Optimal    Status = "OPTIMAL"
	Feasible   Status = "FEASIBLE"
	Infeasible Status = "INFEASIBLE"
	Timeout    Status = "TIMEOUT"
)

// Result is what an Engine returns: a status and, when solvable, the
// chosen variable id per exactly-one group.
type Result struct {
	Status   Status
	Selected []int
}

// Engine is the pluggable CP-SAT collaborator. Production uses
// OrToolsEngine; tests substitute GreedyEngine so the encoding in
// problem.go is exercised without paying for a real solve.
type Engine interface {
	Solve(ctx context.Context, problem Problem) (Result, error)
}

// objectiveScale converts the float soft-penalty weights in problem.go
// into the integer coefficients CP-SAT's linear objective requires.
// Three decimal digits of precision survives conflict.CPSoftCost's costs
// without the rounding perturbing which candidate is cheapest.
const objectiveScale = 1000

// OrToolsEngine solves a Problem in-process with CP-SAT: one BoolVar per
// Variable, one linear constraint per Group (exactly_one -> sum == 1,
// at_most_one -> sum in [0,1]), and a Minimize objective built from each
// Variable's Weight. Modeled on the encode/solve/read-status shape in
// temirov-SummerCamp25's scheduling tool, the closest example in the pack
// to actually drive this library.
type OrToolsEngine struct{}

func (OrToolsEngine) Solve(ctx context.Context, problem Problem) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Status: Timeout}, nil
	}

	model := sat.NewCpModel()
	vars := make(map[int]*sat.BoolVar, len(problem.Variables))
	for _, v := range problem.Variables {
		vars[v.ID] = model.NewBoolVar(fmt.Sprintf("x%d", v.ID))
	}

	for _, g := range problem.Groups {
		group := make([]*sat.BoolVar, 0, len(g.VariableIDs))
		for _, id := range g.VariableIDs {
			group = append(group, vars[id])
		}
		switch g.Bound {
		case "exactly_one":
			model.AddLinearConstraint(group, 1, 1)
		case "at_most_one":
			model.AddLinearConstraint(group, 0, 1)
		}
	}

	objective := model.NewLinearExpr()
	for _, v := range problem.Variables {
		objective.AddTerm(vars[v.ID], int64(v.Weight*objectiveScale))
	}
	model.Minimise(objective)

	solver := sat.NewCpSolver()
	solver.MaxTimeInSeconds = float64(problem.WallTimeMS) / 1000
	solver.NumSearchWorkers = problem.Workers

	switch status := solver.Solve(model); status {
	case sat.Optimal, sat.Feasible:
		selected := make([]int, 0, len(problem.Groups))
		for _, v := range problem.Variables {
			if solver.BooleanValue(vars[v.ID]) {
				selected = append(selected, v.ID)
			}
		}
		result := Result{Status: Infeasible, Selected: selected}
		if status == sat.Optimal {
			result.Status = Optimal
		} else {
			result.Status = Feasible
		}
		return result, nil
	default:
		if ctx.Err() != nil {
			return Result{Status: Timeout}, nil
		}
		return Result{Status: Infeasible}, nil
	}
}
