package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	ErrInvalidSection     = errors.New("invalid section")
	ErrInvalidCourse      = errors.New("invalid course")
	ErrDuplicateSection   = errors.New("duplicate section")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidInput       = errors.New("invalid input")
)

var validate = validator.New()

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const MinutesPerDay = 24 * 60

var (
	Weekdays  = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday} // Days that take part in scoring
	AllDays   = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	dayNames  = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	dayShorts = [...]string{"M", "T", "W", "Th", "F", "S"}
)

func (day Weekday) String() string {
	if !day.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(day))
	}
	return dayNames[day]
}

func (day Weekday) Short() string {
	if !day.Valid() {
		return "?"
	}
	return dayShorts[day]
}

func (day Weekday) Valid() bool {
	return day >= Monday && day <= Saturday
}

type Section struct {
	Id         string    `validate:"required"`
	CourseId   string    `validate:"required"`
	Days       []Weekday `validate:"required,min=1,unique,dive,min=0,max=5"`
	Start      int       `validate:"min=0,max=1440"` // Minutes from midnight
	End        int       `validate:"gtfield=Start,max=1440"`
	Instructor string
}

func NewSection(id, courseId string, days []Weekday, start, end int, instructor string) (Section, error) {
	section := Section{
		Id:         id,
		CourseId:   courseId,
		Days:       slices.Clone(days),
		Start:      start,
		End:        end,
		Instructor: instructor,
	}
	if err := section.Validate(); err != nil {
		return Section{}, err
	}
	return section, nil
}

func (section Section) Validate() error {
	if err := validate.Struct(section); err != nil {
		return fmt.Errorf("%w: section %q of course %q: %v", ErrInvalidSection, section.Id, section.CourseId, err)
	}
	return nil
}

// Checks whether the section meets on the given day
func (section Section) MeetsOn(day Weekday) bool {
	return slices.Contains(section.Days, day)
}

func (section Section) Duration() int {
	return section.End - section.Start
}

func (section Section) String() string {
	days := lo.Map(section.Days, func(day Weekday, _ int) string { return day.Short() })
	return fmt.Sprintf("Section %v (%v %v-%v, Prof. %v)", section.Id, strings.Join(days, ""), FormatClock24(section.Start), FormatClock24(section.End), section.Instructor)
}

type Course struct {
	Id       string
	Name     string
	Sections []Section
}

func NewCourse(id, name string) (*Course, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: course id must not be empty", ErrInvalidCourse)
	}
	return &Course{Id: id, Name: name, Sections: make([]Section, 0)}, nil
}

// AddSection attaches a candidate section, rejecting sections that belong to another course or reuse an id
func (course *Course) AddSection(section Section) error {
	if section.CourseId != course.Id {
		return fmt.Errorf("%w: section %q belongs to course %q, not %q", ErrInvalidSection, section.Id, section.CourseId, course.Id)
	}
	if err := section.Validate(); err != nil {
		return err
	}
	if lo.ContainsBy(course.Sections, func(existing Section) bool { return existing.Id == section.Id }) {
		return fmt.Errorf("%w: course %q already has section %q", ErrDuplicateSection, course.Id, section.Id)
	}
	course.Sections = append(course.Sections, section)
	return nil
}

func (course *Course) String() string {
	return fmt.Sprintf("%v - %v", course.Id, course.Name)
}
