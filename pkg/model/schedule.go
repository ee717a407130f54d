package model

import "slices"

// Schedule is a candidate (or final) selection of sections; strategies build it incrementally and score it once finished
type Schedule struct {
	Sections []Section
	Score    int
}

func NewSchedule(capacity int) *Schedule {
	return &Schedule{Sections: make([]Section, 0, capacity)}
}

func (schedule *Schedule) Add(section Section) {
	schedule.Sections = append(schedule.Sections, section)
}

// Pop removes the most recently added section
func (schedule *Schedule) Pop() {
	if len(schedule.Sections) == 0 {
		return
	}
	schedule.Sections = schedule.Sections[:len(schedule.Sections)-1]
}

func (schedule *Schedule) Len() int {
	return len(schedule.Sections)
}

func (schedule *Schedule) HasConflicts() bool {
	return HasConflicts(schedule.Sections)
}

func (schedule *Schedule) Clone() Schedule {
	return Schedule{
		Sections: slices.Clone(schedule.Sections),
		Score:    schedule.Score,
	}
}
