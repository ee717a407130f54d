package model

import (
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type enumerativeScheduler struct {
	logger *zap.Logger
}

func NewEnumerativeScheduler(logger *zap.Logger) Scheduler {
	return &enumerativeScheduler{logger: nopIfNil(logger)}
}

func (scheduler *enumerativeScheduler) Build(courses []*Course, preferences StudentPreferences) (Schedule, error) {
	return build(Enumerative, courses, preferences, scheduler.logger, EnumerateSchedule)
}

func (scheduler *enumerativeScheduler) Verify(schedule Schedule, courses []*Course) bool {
	return verify(schedule, courses)
}

// EnumerateSchedule explores every conflict-free completion in course order and returns the highest-scoring one.
// Ties keep the completion found first. When no conflict-free completion exists the first-section completion is returned.
func EnumerateSchedule(courses []*Course, preferences StudentPreferences) Schedule {
	if len(courses) == 0 {
		return *NewSchedule(0)
	}

	walker := newChoiceWalker(courses)

	// A section is only taken if it doesn't collide with the sections of the courses already decided
	noConflict := func(choice []int, decided int) bool {
		committed := lo.Map(choice[:decided], func(sectionIndex int, courseIndex int) Section {
			return courses[courseIndex].Sections[sectionIndex]
		})
		return !conflictsWith(committed, courses[decided].Sections[choice[decided]])
	}

	var bestChoice []int
	bestScore := 0
	walker.Walk([]func(choice []int, decided int) bool{noConflict}, func(choice []int) {
		score := Score(materialize(courses, choice), preferences)
		if bestChoice == nil || score > bestScore {
			bestChoice = slices.Clone(choice)
			bestScore = score
		}
	})

	if bestChoice == nil {
		return firstSectionCompletion(courses, preferences)
	}

	schedule := materialize(courses, bestChoice)
	schedule.Score = bestScore
	return schedule
}
