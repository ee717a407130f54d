package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver, so no external binary is required
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.New()
	present := make(map[int64]bool) // Variables that are explicitly stated in the clauses

	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if variable == 0 || uint64(variable) > sat.Variables {
				return nil, fmt.Errorf("literal %d is out of range for %d variables", literal, sat.Variables)
			}
			present[variable] = true
			g.Add(toLit(literal))
		}
		g.Add(0)
	}

	// Solve returns 1 for satisfiable, -1 for unsatisfiable and 0 when undecided
	switch g.Solve() {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini could not decide the instance")
	}

	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		if present[variable] && g.Value(toLit(variable)) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}

func toLit(literal int64) z.Lit {
	if literal < 0 {
		return z.Var(-literal).Neg()
	}
	return z.Var(literal).Pos()
}
