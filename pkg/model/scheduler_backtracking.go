package model

import "go.uber.org/zap"

type backtrackingScheduler struct {
	logger *zap.Logger
}

func NewBacktrackingScheduler(logger *zap.Logger) Scheduler {
	return &backtrackingScheduler{logger: nopIfNil(logger)}
}

func (scheduler *backtrackingScheduler) Build(courses []*Course, preferences StudentPreferences) (Schedule, error) {
	return build(Backtracking, courses, preferences, scheduler.logger, BacktrackingSchedule)
}

func (scheduler *backtrackingScheduler) Verify(schedule Schedule, courses []*Course) bool {
	return verify(schedule, courses)
}

// bestSchedule accumulates the best complete schedule found during a search
type bestSchedule struct {
	schedule Schedule
	found    bool
}

func (best *bestSchedule) beatenBy(score int) bool {
	return !best.found || score > best.schedule.Score
}

// BacktrackingSchedule runs a depth-first search in course order, descending into a branch only while the
// score of the partial schedule exceeds the best complete score seen so far.
// The partial score is not an upper bound on what the branch can reach, so the global optimum may be pruned.
func BacktrackingSchedule(courses []*Course, preferences StudentPreferences) Schedule {
	if len(courses) == 0 {
		return *NewSchedule(0)
	}

	best := &bestSchedule{}
	backtrack(courses, preferences, 0, NewSchedule(len(courses)), best)

	if !best.found {
		return firstSectionCompletion(courses, preferences)
	}
	return best.schedule
}

func backtrack(courses []*Course, preferences StudentPreferences, courseIndex int, current *Schedule, best *bestSchedule) {
	if courseIndex == len(courses) {
		score := Score(*current, preferences)
		if best.beatenBy(score) {
			best.schedule = current.Clone()
			best.schedule.Score = score
			best.found = true
		}
		return
	}

	for _, section := range courses[courseIndex].Sections {
		current.Add(section)

		if !current.HasConflicts() {
			// Partial score used as the continuation estimate
			estimate := Score(*current, preferences)
			if best.beatenBy(estimate) {
				backtrack(courses, preferences, courseIndex+1, current, best)
			}
		}

		current.Pop()
	}
}
