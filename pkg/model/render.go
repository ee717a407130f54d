package model

import (
	"fmt"
	"strings"
)

type Entry struct {
	CourseId   string
	SectionId  string
	Instructor string
	Start      int
	End        int
	BreakAfter int // Minutes until the next class of the same day (0 for the last one)
}

type DayView struct {
	Day     Weekday
	Entries []Entry
}

// Weekly groups the schedule's sections by Monday-Friday (Saturday only shows up when some section meets on it)
func (schedule Schedule) Weekly() []DayView {
	buckets := dayBuckets(schedule.Sections)

	days := Weekdays
	if len(buckets[Saturday]) > 0 {
		days = AllDays
	}

	views := make([]DayView, 0, len(days))
	for _, day := range days {
		sections := buckets[day]
		view := DayView{Day: day, Entries: make([]Entry, 0, len(sections))}
		for i, section := range sections {
			entry := Entry{
				CourseId:   section.CourseId,
				SectionId:  section.Id,
				Instructor: section.Instructor,
				Start:      section.Start,
				End:        section.End,
			}
			if i < len(sections)-1 {
				entry.BreakAfter = sections[i+1].Start - section.End
			}
			view.Entries = append(view.Entries, entry)
		}
		views = append(views, view)
	}
	return views
}

func (schedule Schedule) Render() string {
	var builder strings.Builder
	builder.WriteString("\n===== YOUR OPTIMIZED SCHEDULE =====\n")

	for _, view := range schedule.Weekly() {
		fmt.Fprintf(&builder, "\n%v:\n", view.Day)
		if len(view.Entries) == 0 {
			builder.WriteString("  No classes\n")
			continue
		}

		for _, entry := range view.Entries {
			fmt.Fprintf(&builder, "  %v - %v: %v (Section %v)\n", FormatClock(entry.Start), FormatClock(entry.End), entry.CourseId, entry.SectionId)
			if entry.BreakAfter > 0 {
				fmt.Fprintf(&builder, "  ↓ %v break ↓\n", FormatDuration(entry.BreakAfter))
			}
		}
	}

	fmt.Fprintf(&builder, "\nTotal Score: %v\n", schedule.Score)
	return builder.String()
}

// FormatClock renders minutes from midnight on a 12-hour clock, e.g. 870 -> "2:30 PM"
func FormatClock(minutes int) string {
	hour, minute := (minutes/60)%24, minutes%60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	} else if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %v", hour, minute, period)
}

func FormatClock24(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
