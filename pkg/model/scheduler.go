package model

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type Scheduler interface {
	// Returns a complete schedule (one section per course) carrying its score
	Build(courses []*Course, preferences StudentPreferences) (Schedule, error)

	// Checks that the schedule takes exactly one section from every course and has no conflicts
	Verify(schedule Schedule, courses []*Course) bool
}

type Strategy int

const (
	Greedy Strategy = iota
	Enumerative
	Backtracking
)

var strategyNames = map[Strategy]string{
	Greedy:       "greedy",
	Enumerative:  "enumerative",
	Backtracking: "backtracking",
}

func Strategies() []Strategy {
	return []Strategy{Greedy, Enumerative, Backtracking}
}

func (strategy Strategy) String() string {
	if name, ok := strategyNames[strategy]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(strategy))
}

// ParseStrategy accepts a strategy name; "dynamic" is kept as an alias of the enumerative strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return Greedy, nil
	case "enumerative", "dynamic":
		return Enumerative, nil
	case "backtracking":
		return Backtracking, nil
	}
	return 0, fmt.Errorf("%v is not a valid strategy", name)
}

func NewScheduler(strategy Strategy, logger *zap.Logger) (Scheduler, error) {
	switch strategy {
	case Greedy:
		return NewGreedyScheduler(logger), nil
	case Enumerative:
		return NewEnumerativeScheduler(logger), nil
	case Backtracking:
		return NewBacktrackingScheduler(logger), nil
	}
	return nil, fmt.Errorf("unknown strategy: %v", strategy)
}
