package model

import (
	"fmt"

	"github.com/limaJavier/coursescheduler/pkg/sat"
)

// Feasibility tells whether the courses admit a conflict-free completion, and provides one when they do
type Feasibility struct {
	Feasible  bool
	Choice    []int // Choice[i] = index of the section taken from course i
	Variables uint64
	Clauses   uint64
}

type constraintState struct {
	courses []*Course
	indexer indexer
}

// CheckFeasibility encodes "one section per course and no two chosen sections overlap" as CNF and hands it to the solver
func CheckFeasibility(courses []*Course, solver sat.SATSolver) (Feasibility, error) {
	if err := ValidateInput(courses); err != nil {
		return Feasibility{}, err
	}
	if len(courses) == 0 {
		return Feasibility{Feasible: true, Choice: []int{}}, nil
	}

	//** Build SAT instance
	indexer := newIndexer(courses)
	state := constraintState{courses: courses, indexer: indexer}
	constraints := []func(state constraintState) [][]int64{
		completenessConstraints,
		uniquenessConstraints,
		conflictConstraints,
	}
	satInstance := buildSat(indexer.Variables(), constraints, state)

	//** Solve SAT instance
	solution, err := solver.Solve(satInstance)
	if err != nil {
		return Feasibility{}, err
	}

	feasibility := Feasibility{
		Variables: satInstance.Variables,
		Clauses:   uint64(len(satInstance.Clauses)),
	}
	if solution == nil { // Not satisfiable
		return feasibility, nil
	}

	choice := make([]int, len(courses))
	for i := range choice {
		choice[i] = undecided
	}
	for _, variable := range solution {
		if variable <= 0 {
			continue
		}
		course, section := indexer.Attributes(uint64(variable))
		choice[course] = int(section)
	}
	for i, sectionIndex := range choice {
		if sectionIndex == undecided {
			return Feasibility{}, fmt.Errorf("solver left course %q without a section", courses[i].Id)
		}
	}

	feasibility.Feasible = true
	feasibility.Choice = choice
	return feasibility, nil
}

// Every course takes at least one of its sections
func completenessConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, len(state.courses))
	for course := range state.courses {
		clause := make([]int64, 0, len(state.courses[course].Sections))
		for section := range state.courses[course].Sections {
			clause = append(clause, int64(state.indexer.Index(uint64(course), uint64(section))))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// Every course takes at most one of its sections
func uniquenessConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	for course := range state.courses {
		sections := len(state.courses[course].Sections)
		for section1 := 0; section1 < sections-1; section1++ {
			for section2 := section1 + 1; section2 < sections; section2++ {
				index1 := state.indexer.Index(uint64(course), uint64(section1))
				index2 := state.indexer.Index(uint64(course), uint64(section2))
				clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
			}
		}
	}
	return clauses
}

// Two overlapping sections of different courses cannot both be taken
func conflictConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	for course1 := 0; course1 < len(state.courses)-1; course1++ {
		for course2 := course1 + 1; course2 < len(state.courses); course2++ {
			for section1, s1 := range state.courses[course1].Sections {
				for section2, s2 := range state.courses[course2].Sections {
					if !Overlap(s1, s2) {
						continue
					}
					index1 := state.indexer.Index(uint64(course1), uint64(section1))
					index2 := state.indexer.Index(uint64(course2), uint64(section2))
					clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
				}
			}
		}
	}
	return clauses
}

func buildSat(variables uint64, constraints []func(state constraintState) [][]int64, state constraintState) sat.SAT {
	satInstance := sat.SAT{
		Variables: variables,
		Clauses:   [][]int64{},
	}

	constraintsChannel := make(chan [][]int64, len(constraints)) // Channel to collect constraints

	// Execute constraints functions on different goroutines, they only read the state
	for _, constraint := range constraints {
		go func(constraint func(state constraintState) [][]int64) {
			constraintsChannel <- constraint(state)
		}(constraint)
	}

	// Collect generated constraints
	for range constraints {
		satInstance.Clauses = append(satInstance.Clauses, <-constraintsChannel...)
	}

	return satInstance
}
