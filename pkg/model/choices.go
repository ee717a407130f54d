package model

const undecided = -1

// choiceWalker enumerates choice vectors where choice[i] is the index of the section picked for course i.
// Entries that haven't been decided yet hold the undecided sentinel.
type choiceWalker struct {
	domains []int
}

func newChoiceWalker(courses []*Course) *choiceWalker {
	domains := make([]int, len(courses))
	for i, course := range courses {
		domains[i] = len(course.Sections)
	}
	return &choiceWalker{domains: domains}
}

// Walk calls visit for every complete choice vector such that each decision satisfied all the constraints at the time it was made.
// Constraints receive the vector and the index of the course that was just decided; the vector passed to visit is reused, so copy it to keep it.
func (walker *choiceWalker) Walk(constraints []func(choice []int, decided int) bool, visit func(choice []int)) {
	choice := make([]int, len(walker.domains))
	for i := range choice {
		choice[i] = undecided
	}
	walker.walk(constraints, 0, choice, visit)
}

func (walker *choiceWalker) walk(constraints []func(choice []int, decided int) bool, current int, choice []int, visit func(choice []int)) {
	if current >= len(walker.domains) {
		visit(choice)
		return
	}

	for i := range walker.domains[current] {
		choice[current] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(choice, current) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		walker.walk(constraints, current+1, choice, visit)
	}

	choice[current] = undecided
}

// materialize builds the schedule implied by a choice vector, skipping undecided courses
func materialize(courses []*Course, choice []int) Schedule {
	schedule := NewSchedule(len(courses))
	for courseIndex, sectionIndex := range choice {
		if sectionIndex == undecided || sectionIndex >= len(courses[courseIndex].Sections) {
			continue
		}
		schedule.Add(courses[courseIndex].Sections[sectionIndex])
	}
	return *schedule
}

// firstSectionCompletion is returned when no conflict-free completion exists: every course contributes its first section
func firstSectionCompletion(courses []*Course, preferences StudentPreferences) Schedule {
	choice := make([]int, len(courses))
	schedule := materialize(courses, choice)
	schedule.Score = Score(schedule, preferences)
	return schedule
}
