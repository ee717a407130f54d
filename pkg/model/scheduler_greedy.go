package model

import (
	"math"
	"slices"

	"go.uber.org/zap"
)

type greedyScheduler struct {
	logger *zap.Logger
}

func NewGreedyScheduler(logger *zap.Logger) Scheduler {
	return &greedyScheduler{logger: nopIfNil(logger)}
}

func (scheduler *greedyScheduler) Build(courses []*Course, preferences StudentPreferences) (Schedule, error) {
	return build(Greedy, courses, preferences, scheduler.logger, GreedySchedule)
}

func (scheduler *greedyScheduler) Verify(schedule Schedule, courses []*Course) bool {
	return verify(schedule, courses)
}

// GreedySchedule commits, course by course, the section that maximizes the score of the sections committed so far.
// Courses with fewer sections are decided first; the search never revisits a commitment.
func GreedySchedule(courses []*Course, preferences StudentPreferences) Schedule {
	schedule := NewSchedule(len(courses))
	if len(courses) == 0 {
		return *schedule
	}

	// Sort a copy so the caller's order is left untouched
	sortedCourses := slices.Clone(courses)
	slices.SortStableFunc(sortedCourses, func(a, b *Course) int {
		return len(a.Sections) - len(b.Sections)
	})

	for _, course := range sortedCourses {
		bestSection, bestScore := -1, math.MinInt
		for i, section := range course.Sections {
			schedule.Add(section)
			score := Score(*schedule, preferences)
			schedule.Pop()

			if score > bestScore {
				bestScore = score
				bestSection = i
			}
		}

		if bestSection != -1 {
			schedule.Add(course.Sections[bestSection])
		}
	}

	schedule.Score = Score(*schedule, preferences)
	return *schedule
}
