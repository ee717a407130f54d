package model

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSection(t *testing.T, id, courseId string, days []Weekday, start, end int) Section {
	t.Helper()
	section, err := NewSection(id, courseId, days, start, end, "Staff")
	require.NoError(t, err)
	return section
}

func mustCourse(t *testing.T, id string, sections ...Section) *Course {
	t.Helper()
	course, err := NewCourse(id, id)
	require.NoError(t, err)
	for _, section := range sections {
		require.NoError(t, course.AddSection(section))
	}
	return course
}

// randomCourses builds a small random instance; sections may meet on Saturday
func randomCourses(random *rand.Rand) []*Course {
	courses := make([]*Course, 0)
	totalCourses := 2 + random.IntN(3)
	for c := range totalCourses {
		course := &Course{Id: fmt.Sprintf("C%d", c), Name: fmt.Sprintf("Course %d", c)}
		totalSections := 1 + random.IntN(4)
		for s := range totalSections {
			days := make([]Weekday, 0)
			for _, day := range AllDays {
				if random.Float32() < 0.35 {
					days = append(days, day)
				}
			}
			if len(days) == 0 {
				days = append(days, AllDays[random.IntN(len(AllDays))])
			}
			start := 8*60 + 30*random.IntN(20)
			end := start + 50 + 25*random.IntN(4)
			course.Sections = append(course.Sections, Section{
				Id:       fmt.Sprint(s + 1),
				CourseId: course.Id,
				Days:     days,
				Start:    start,
				End:      end,
			})
		}
		courses = append(courses, course)
	}
	return courses
}

// Checks that every course contributes exactly one of its sections, regardless of conflicts
func assertCardinality(t *testing.T, schedule Schedule, courses []*Course) {
	t.Helper()
	require.Len(t, schedule.Sections, len(courses))
	counts := make(map[string]int)
	for _, section := range schedule.Sections {
		counts[section.CourseId]++
	}
	for _, course := range courses {
		require.Equal(t, 1, counts[course.Id], "course %v", course.Id)
	}
}
