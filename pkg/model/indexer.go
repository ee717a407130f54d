package model

// indexer gives a unique SAT variable to every (course, section) pair and vice versa
type indexer interface {
	// Returns the variable standing for "the course takes that section"
	Index(course, section uint64) uint64
	// Returns the (course, section) pair behind a variable
	Attributes(index uint64) (course, section uint64)
	// Total amount of variables
	Variables() uint64
}

type indexerImplementation struct {
	offsets []uint64 // offsets[i] = amount of sections of the courses before i
	total   uint64
}

func newIndexer(courses []*Course) indexer {
	offsets := make([]uint64, len(courses))
	total := uint64(0)
	for i, course := range courses {
		offsets[i] = total
		total += uint64(len(course.Sections))
	}
	return &indexerImplementation{offsets: offsets, total: total}
}

func (indexer *indexerImplementation) Index(course, section uint64) uint64 {
	return indexer.offsets[course] + section + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) (course, section uint64) {
	index = index - 1
	// Offsets are non-decreasing, so the course is the last one whose offset doesn't exceed the index (this also skips courses without sections)
	low, high := 0, len(indexer.offsets)-1
	for low < high {
		middle := (low + high + 1) / 2
		if indexer.offsets[middle] <= index {
			low = middle
		} else {
			high = middle - 1
		}
	}
	return uint64(low), index - indexer.offsets[low]
}

func (indexer *indexerImplementation) Variables() uint64 {
	return indexer.total
}
