package model

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type RawSection struct {
	Id         string
	Days       []Weekday
	Start      int // Accepts either minutes from midnight or an "HH:MM" clock
	End        int
	Instructor string
}

type RawCourse struct {
	Id       string
	Name     string
	Sections []RawSection
}

type RawInput struct {
	Preferences map[string]any
	Courses     []RawCourse
}

type Input struct {
	Courses     []*Course
	Preferences StudentPreferences
}

func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var rawInput RawInput
	if err := decode(inputJson, &rawInput); err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return ProcessRawInput(rawInput)
}

// ProcessRawInput builds validated courses and fills every preference missing from the raw input with its default
func ProcessRawInput(rawInput RawInput) (Input, error) {
	//** Manage preferences
	preferences := DefaultPreferences()
	if rawInput.Preferences != nil {
		if err := decode(rawInput.Preferences, &preferences); err != nil {
			return Input{}, fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
		}
	}
	if err := preferences.Validate(); err != nil {
		return Input{}, err
	}

	//** Manage courses
	courses := make([]*Course, 0, len(rawInput.Courses))
	seen := make(map[string]bool, len(rawInput.Courses))
	for _, rawCourse := range rawInput.Courses {
		if seen[rawCourse.Id] {
			return Input{}, fmt.Errorf("%w: course %q is present more than once", ErrInvalidInput, rawCourse.Id)
		}
		seen[rawCourse.Id] = true

		course, err := NewCourse(rawCourse.Id, rawCourse.Name)
		if err != nil {
			return Input{}, err
		}

		for _, rawSection := range rawCourse.Sections {
			section, err := NewSection(rawSection.Id, course.Id, rawSection.Days, rawSection.Start, rawSection.End, rawSection.Instructor)
			if err != nil {
				return Input{}, err
			}
			if err := course.AddSection(section); err != nil {
				return Input{}, err
			}
		}

		if len(course.Sections) == 0 {
			return Input{}, fmt.Errorf("%w: course %q has no sections", ErrInvalidCourse, course.Id)
		}
		courses = append(courses, course)
	}

	return Input{Courses: courses, Preferences: preferences}, nil
}

// ParseClock turns an "HH:MM" clock into minutes from midnight
func ParseClock(clock string) (int, error) {
	hourStr, minuteStr, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q: expected HH:MM", clock)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if hour < 0 || minute < 0 || minute >= 60 || hour*60+minute > MinutesPerDay {
		return 0, fmt.Errorf("invalid clock %q: out of range", clock)
	}
	return hour*60 + minute, nil
}

// ParseWeekday accepts full names ("Monday") and the short forms used when rendering ("M", "Th")
func ParseWeekday(name string) (Weekday, error) {
	name = strings.TrimSpace(name)
	for _, day := range AllDays {
		if strings.EqualFold(name, day.String()) || strings.EqualFold(name, day.Short()) || strings.EqualFold(name, day.String()[:3]) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", name)
}

func decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: clockAndWeekdayHook,
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

var weekdayType = reflect.TypeOf(Weekday(0))

// clockAndWeekdayHook lets raw input express times as clocks and days by name
func clockAndWeekdayHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	str := reflect.ValueOf(data).String()

	if to == weekdayType {
		return ParseWeekday(str)
	}
	if to.Kind() == reflect.Int && strings.Contains(str, ":") {
		return ParseClock(str)
	}
	return data, nil
}
