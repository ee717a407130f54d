package sat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// parseSolution reads the "v ..." lines of a DIMACS solver output, dropping the terminating 0
func parseSolution(solverOutput string) (SATSolution, error) {
	fields := lo.Reduce(
		lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
			return len(line) > 0 && line[0] == 'v'
		}),
		func(values []string, line string, _ int) []string {
			return append(values, strings.Fields(line[1:])...)
		},
		[]string{},
	)

	solution := make(SATSolution, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal in solver output: %w", err)
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}

// Satisfies checks that the solution is consistent (no duplicates nor contradictions) and satisfies every clause
func Satisfies(satInstance SAT, satSolution SATSolution) bool {
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	for _, clause := range satInstance.Clauses {
		if !lo.SomeBy(clause, func(literal int64) bool { return literals[literal] }) {
			return false
		}
	}

	return true
}
