package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputsDir = "../../test/inputs/"

func TestInputFromJson(t *testing.T) {
	t.Run("Sample", func(t *testing.T) {
		//** Act
		input, err := InputFromJson(filepath.Join(inputsDir, "sample.json"))

		//** Assert
		require.NoError(t, err)

		expectedPreferences := StudentPreferences{
			NoMorningWeight:          10,
			FreeDaysWeight:           8,
			EarlyDismissalWeight:     6,
			ConsecutiveClassesWeight: 3,
			LongBreaksWeight:         7,
			PreferredEarliestTime:    600,
			PreferredLatestTime:      1020,
			MinimumBreakTime:         30, // Missing from the file
			PreferredBreakTime:       60,
			MaxClassesPerDay:         3, // Missing from the file
		}
		assert.Equal(t, expectedPreferences, input.Preferences)

		require.Len(t, input.Courses, 4)
		assert.Equal(t, "CS101 - Intro to Programming", input.Courses[0].String())
		assert.Equal(t,
			Section{Id: "1", CourseId: "CS101", Days: []Weekday{Monday, Wednesday}, Start: 540, End: 630, Instructor: "Smith"},
			input.Courses[0].Sections[0],
		)
		assert.Equal(t, []Weekday{Monday, Wednesday, Friday}, input.Courses[2].Sections[0].Days)
		assert.Equal(t, 480, input.Courses[2].Sections[0].Start)
		assert.Equal(t, []Weekday{Tuesday, Thursday}, input.Courses[3].Sections[0].Days)
		assert.Equal(t, 990, input.Courses[3].Sections[0].End)
	})

	t.Run("Missing preferences", func(t *testing.T) {
		input, err := InputFromJson(filepath.Join(inputsDir, "infeasible.json"))

		require.NoError(t, err)
		assert.Equal(t, DefaultPreferences(), input.Preferences)
		assert.Len(t, input.Courses, 2)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := InputFromJson(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	invalid := map[string]string{
		"Bad clock":        `{"courses":[{"id":"A","sections":[{"id":"1","days":["M"],"start":"25:99","end":"26:00"}]}]}`,
		"Bad day":          `{"courses":[{"id":"A","sections":[{"id":"1","days":["Sunday"],"start":"9:00","end":"10:00"}]}]}`,
		"Reversed times":   `{"courses":[{"id":"A","sections":[{"id":"1","days":["M"],"start":"11:00","end":"10:00"}]}]}`,
		"Duplicate course": `{"courses":[{"id":"A","sections":[{"id":"1","days":["M"],"start":540,"end":600}]},{"id":"A","sections":[{"id":"1","days":["T"],"start":540,"end":600}]}]}`,
		"Without sections": `{"courses":[{"id":"A","sections":[]}]}`,
		"Bad weight":       `{"preferences":{"freeDaysWeight":0},"courses":[]}`,
		"Malformed json":   `{"courses":`,
	}
	for name, content := range invalid {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "input.json")
			require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

			_, err := InputFromJson(file)

			assert.Error(t, err)
		})
	}

	t.Run("Error kinds", func(t *testing.T) {
		section := RawSection{Id: "1", Days: []Weekday{Monday}, Start: 540, End: 600}
		_, err := ProcessRawInput(RawInput{Courses: []RawCourse{
			{Id: "A", Sections: []RawSection{section}},
			{Id: "A", Sections: []RawSection{section}},
		}})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = ProcessRawInput(RawInput{Courses: []RawCourse{{Id: "A"}}})
		assert.ErrorIs(t, err, ErrInvalidCourse)

		_, err = ProcessRawInput(RawInput{Preferences: map[string]any{"longBreaksWeight": 20}})
		assert.ErrorIs(t, err, ErrInvalidPreferences)

		_, err = ProcessRawInput(RawInput{Courses: []RawCourse{{Id: "A", Sections: []RawSection{section, section}}}})
		assert.ErrorIs(t, err, ErrDuplicateSection)
	})
}

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"09:00":   540,
		"9:30":    570,
		" 10:15 ": 615,
		"0:00":    0,
		"24:00":   1440,
	}
	for clock, expected := range valid {
		minutes, err := ParseClock(clock)
		require.NoError(t, err, clock)
		assert.Equal(t, expected, minutes, clock)
	}

	for _, clock := range []string{"24:01", "12:60", "-1:00", "abc", "9", "9:x"} {
		_, err := ParseClock(clock)
		assert.Error(t, err, clock)
	}
}

func TestParseWeekday(t *testing.T) {
	valid := map[string]Weekday{
		"Monday":   Monday,
		"mon":      Monday,
		"M":        Monday,
		"T":        Tuesday,
		"Th":       Thursday,
		"thu":      Thursday,
		"Thursday": Thursday,
		"F":        Friday,
		"S":        Saturday,
		"sat":      Saturday,
	}
	for name, expected := range valid {
		day, err := ParseWeekday(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, day, name)
	}

	for _, name := range []string{"", "X", "Sunday", "Mo"} {
		_, err := ParseWeekday(name)
		assert.Error(t, err, name)
	}
}
