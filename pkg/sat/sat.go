package sat

import (
	"fmt"
	"strings"
)

// SATSolution holds one signed literal per variable: positive when the variable is true
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

type SATSolver interface {
	Solve(sat SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
