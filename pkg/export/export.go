package export

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/limaJavier/coursescheduler/pkg/model"
)

type ScheduleCSVRow struct {
	CourseId   string `csv:"course_id"`
	CourseName string `csv:"course_name"`
	SectionId  string `csv:"section_id"`
	Day        string `csv:"day"`
	Start      string `csv:"start"`
	End        string `csv:"end"`
	Instructor string `csv:"instructor"`
}

type sortableRow struct {
	row   *ScheduleCSVRow
	day   model.Weekday
	start int
}

// Rows flattens a schedule into one row per section and meeting day, ordered by day and start time
func Rows(schedule model.Schedule, courses []*model.Course) []*ScheduleCSVRow {
	names := lo.Associate(courses, func(course *model.Course) (string, string) { return course.Id, course.Name })

	rows := make([]sortableRow, 0, len(schedule.Sections))
	for _, section := range schedule.Sections {
		for _, day := range section.Days {
			row := &ScheduleCSVRow{
				CourseId:   section.CourseId,
				CourseName: names[section.CourseId],
				SectionId:  section.Id,
				Day:        day.String(),
				Start:      model.FormatClock24(section.Start),
				End:        model.FormatClock24(section.End),
				Instructor: section.Instructor,
			}
			rows = append(rows, sortableRow{row: row, day: day, start: section.Start})
		}
	}

	slices.SortStableFunc(rows, func(a, b sortableRow) int {
		if a.day != b.day {
			return int(a.day - b.day)
		}
		return a.start - b.start
	})
	return lo.Map(rows, func(row sortableRow, _ int) *ScheduleCSVRow { return row.row })
}

func WriteCSV(w io.Writer, schedule model.Schedule, courses []*model.Course) error {
	rows := Rows(schedule, courses)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("cannot write schedule csv: %w", err)
	}
	return nil
}

// ToFile writes the schedule as CSV to path, replacing any existing file
func ToFile(path string, schedule model.Schedule, courses []*model.Course) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	defer out.Close()

	return WriteCSV(out, schedule, courses)
}
