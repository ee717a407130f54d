package model

import (
	"slices"

	"github.com/samber/lo"
)

const (
	ConflictPenalty = -1000

	breakTolerance     = 15 // Minutes a gap may deviate from the preferred break and still be rewarded
	consecutiveGap     = 15 // Gaps up to this length count as back-to-back classes
	allGoodBreaksBonus = 5
	dailyLoadBonus     = 3
)

// Score computes the desirability of a schedule under the given preferences.
// Sections meeting on Saturday participate in the conflict check but not in any day bucket.
func Score(schedule Schedule, preferences StudentPreferences) int {
	if HasConflicts(schedule.Sections) {
		return ConflictPenalty
	}

	score := 0
	buckets := dayBuckets(schedule.Sections)

	for _, day := range Weekdays {
		sections := buckets[day]
		if len(sections) == 0 {
			score += preferences.FreeDaysWeight
			continue
		}
		score += scoreDay(sections, preferences)
	}

	return score
}

func scoreDay(sections []Section, preferences StudentPreferences) int {
	score := 0

	// Early dismissal preference
	lastEnd := lo.MaxBy(sections, func(a, b Section) bool { return a.End > b.End }).End
	if lastEnd <= preferences.PreferredLatestTime {
		score += preferences.EarlyDismissalWeight
	}

	// No morning classes preference
	if sections[0].Start >= preferences.PreferredEarliestTime {
		score += preferences.NoMorningWeight
	}

	//** Breaks between classes
	if len(sections) > 1 {
		goodBreaks, consecutive := 0, 0
		for i := range len(sections) - 1 {
			gap := sections[i+1].Start - sections[i].End

			if gap >= preferences.MinimumBreakTime {
				goodBreaks++
				if abs(gap-preferences.PreferredBreakTime) <= breakTolerance {
					score += preferences.LongBreaksWeight
				}
			}
			if gap <= consecutiveGap {
				consecutive++
			}
		}

		if goodBreaks == len(sections)-1 {
			score += allGoodBreaksBonus
		}
		score += consecutive * preferences.ConsecutiveClassesWeight
	}

	// Max classes per day preference
	if len(sections) <= preferences.MaxClassesPerDay {
		score += dailyLoadBonus
	}

	return score
}

// dayBuckets groups sections by every legal day they meet on, each bucket sorted by start time
func dayBuckets(sections []Section) map[Weekday][]Section {
	buckets := make(map[Weekday][]Section, len(AllDays))
	for _, section := range sections {
		for _, day := range section.Days {
			if !day.Valid() {
				continue
			}
			buckets[day] = append(buckets[day], section)
		}
	}

	for day := range buckets {
		slices.SortStableFunc(buckets[day], func(a, b Section) int { return a.Start - b.Start })
	}
	return buckets
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
