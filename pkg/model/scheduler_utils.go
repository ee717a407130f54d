package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func build(
	strategy Strategy,
	courses []*Course,
	preferences StudentPreferences,
	logger *zap.Logger,
	search func([]*Course, StudentPreferences) Schedule,
) (Schedule, error) {
	//** Validate input
	if err := ValidateInput(courses); err != nil {
		return Schedule{}, err
	}
	if err := preferences.Validate(); err != nil {
		return Schedule{}, err
	}

	//** Search
	runId := uuid.NewString()
	logger.Debug("search started",
		zap.String("run_id", runId),
		zap.Stringer("strategy", strategy),
		zap.Int("courses", len(courses)),
		zap.Int("sections", lo.SumBy(courses, func(course *Course) int { return len(course.Sections) })),
	)

	start := time.Now()
	schedule := search(courses, preferences)

	fields := []zap.Field{
		zap.String("run_id", runId),
		zap.Stringer("strategy", strategy),
		zap.Int("score", schedule.Score),
		zap.Int("sections", schedule.Len()),
		zap.Duration("elapsed", time.Since(start)),
	}
	if len(courses) > 0 && schedule.Score == ConflictPenalty {
		logger.Warn("search finished with conflicts", fields...)
	} else {
		logger.Info("search finished", fields...)
	}

	return schedule, nil
}

// ValidateInput rejects course sets the search strategies are not defined for
func ValidateInput(courses []*Course) error {
	courseIds := make(map[string]bool, len(courses))
	for i, course := range courses {
		if course == nil {
			return fmt.Errorf("%w: course at position %d is nil", ErrInvalidInput, i)
		}
		if course.Id == "" {
			return fmt.Errorf("%w: course at position %d has no id", ErrInvalidCourse, i)
		}
		if courseIds[course.Id] {
			return fmt.Errorf("%w: course %q is present more than once", ErrInvalidInput, course.Id)
		}
		courseIds[course.Id] = true

		if len(course.Sections) == 0 {
			return fmt.Errorf("%w: course %q has no sections", ErrInvalidCourse, course.Id)
		}

		sectionIds := make(map[string]bool, len(course.Sections))
		for _, section := range course.Sections {
			if section.CourseId != course.Id {
				return fmt.Errorf("%w: section %q belongs to course %q, not %q", ErrInvalidSection, section.Id, section.CourseId, course.Id)
			}
			if err := section.Validate(); err != nil {
				return err
			}
			if sectionIds[section.Id] {
				return fmt.Errorf("%w: course %q already has section %q", ErrDuplicateSection, course.Id, section.Id)
			}
			sectionIds[section.Id] = true
		}
	}
	return nil
}

func verify(schedule Schedule, courses []*Course) bool {
	if len(schedule.Sections) != len(courses) {
		return false
	}

	coursesById := lo.Associate(courses, func(course *Course) (string, *Course) { return course.Id, course })
	assigned := make(map[string]bool, len(courses))

	for _, section := range schedule.Sections {
		course, ok := coursesById[section.CourseId]
		// Check that:
		// - The section belongs to one of the given courses
		// - The course hasn't already contributed a section
		// - The section is one of the course's candidates
		if !ok ||
			assigned[section.CourseId] ||
			!lo.ContainsBy(course.Sections, func(candidate Section) bool { return candidate.Id == section.Id }) {
			return false
		}
		assigned[section.CourseId] = true
	}

	return !HasConflicts(schedule.Sections)
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
