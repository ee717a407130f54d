package model

import "github.com/samber/lo"

// Checks whether two sections share at least one day and their [start, end) intervals overlap
func Overlap(section1, section2 Section) bool {
	if !lo.SomeBy(section1.Days, section2.MeetsOn) {
		return false
	}
	return !(section1.End <= section2.Start || section1.Start >= section2.End)
}

// HasConflicts reports whether any unordered pair of sections overlaps
func HasConflicts(sections []Section) bool {
	for i := 0; i < len(sections)-1; i++ {
		for j := i + 1; j < len(sections); j++ {
			if Overlap(sections[i], sections[j]) {
				return true
			}
		}
	}
	return false
}

// Checks whether adding the candidate to the committed sections would produce a conflict
func conflictsWith(committed []Section, candidate Section) bool {
	return lo.SomeBy(committed, func(section Section) bool {
		return Overlap(section, candidate)
	})
}
