package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConflictPenalty(t *testing.T) {
	schedule := Schedule{Sections: []Section{
		{Id: "1", CourseId: "A", Days: []Weekday{Monday}, Start: 540, End: 600},
		{Id: "1", CourseId: "B", Days: []Weekday{Monday, Friday}, Start: 590, End: 650},
	}}

	for _, weight := range []int{1, 5, 10} {
		preferences := StudentPreferences{
			NoMorningWeight:          weight,
			FreeDaysWeight:           weight,
			EarlyDismissalWeight:     weight,
			ConsecutiveClassesWeight: weight,
			LongBreaksWeight:         weight,
			PreferredEarliestTime:    weight * 60,
			PreferredLatestTime:      20 * 60,
			MinimumBreakTime:         weight,
			PreferredBreakTime:       weight * 10,
			MaxClassesPerDay:         weight,
		}
		assert.Equal(t, ConflictPenalty, Score(schedule, preferences))
	}
}

func TestScoreEmptySchedule(t *testing.T) {
	for weight := 1; weight <= 10; weight++ {
		preferences := DefaultPreferences()
		preferences.FreeDaysWeight = weight

		assert.Equal(t, 5*weight, Score(Schedule{}, preferences))
	}
}

func TestScoreDay(t *testing.T) {
	preferences := DefaultPreferences() // no-morning 8, free 10, early 5, consecutive 7, long breaks 3

	t.Run("Single late morning class", func(t *testing.T) {
		schedule := Schedule{Sections: []Section{
			{Id: "1", CourseId: "A", Days: []Weekday{Tuesday}, Start: 11 * 60, End: 12 * 60},
		}}
		// 4 free days + early dismissal + no morning + daily load
		assert.Equal(t, 4*10+5+8+3, Score(schedule, preferences))
	})

	t.Run("Preferred break", func(t *testing.T) {
		schedule := Schedule{Sections: []Section{
			{Id: "2", CourseId: "B", Days: []Weekday{Monday}, Start: 11 * 60, End: 12*60 + 30},
			{Id: "1", CourseId: "A", Days: []Weekday{Monday}, Start: 9 * 60, End: 10 * 60},
		}}
		// 4 free days + long break + all breaks good + early dismissal + daily load (starts before 10:00)
		assert.Equal(t, 4*10+3+5+5+3, Score(schedule, preferences))
	})

	t.Run("Back to back classes", func(t *testing.T) {
		schedule := Schedule{Sections: []Section{
			{Id: "1", CourseId: "A", Days: []Weekday{Monday}, Start: 10 * 60, End: 11 * 60},
			{Id: "1", CourseId: "B", Days: []Weekday{Monday}, Start: 11*60 + 10, End: 12 * 60},
			{Id: "1", CourseId: "C", Days: []Weekday{Monday}, Start: 12 * 60, End: 13 * 60},
			{Id: "1", CourseId: "D", Days: []Weekday{Monday}, Start: 15 * 60, End: 17 * 60},
		}}
		// Gaps: 10, 0, 120 -> two consecutive, one good break (not all good), no long breaks
		// Ends after 16:00 and four classes exceed the daily cap
		assert.Equal(t, 4*10+8+2*7, Score(schedule, preferences))
	})

	t.Run("Saturday is not scored", func(t *testing.T) {
		weekdayOnly := Schedule{Sections: []Section{
			{Id: "1", CourseId: "A", Days: []Weekday{Monday}, Start: 11 * 60, End: 12 * 60},
		}}
		withSaturday := Schedule{Sections: []Section{
			{Id: "1", CourseId: "A", Days: []Weekday{Monday, Saturday}, Start: 11 * 60, End: 12 * 60},
			{Id: "1", CourseId: "B", Days: []Weekday{Saturday}, Start: 7 * 60, End: 8 * 60},
		}}
		assert.Equal(t, Score(weekdayOnly, preferences), Score(withSaturday, preferences))
	})

	t.Run("Deterministic", func(t *testing.T) {
		schedule := Schedule{Sections: []Section{
			{Id: "1", CourseId: "A", Days: []Weekday{Monday, Wednesday}, Start: 9 * 60, End: 10*60 + 30},
			{Id: "1", CourseId: "B", Days: []Weekday{Wednesday, Friday}, Start: 15 * 60, End: 16*60 + 30},
		}}
		assert.Equal(t, Score(schedule, preferences), Score(schedule, preferences))
	})
}
