package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/coursescheduler/pkg/config"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/limaJavier/coursescheduler/pkg/sat"
)

const inputFile = "../../test/inputs/sample.json"

func buildSample(t *testing.T) (model.Schedule, []*model.Course) {
	t.Helper()
	input, err := model.InputFromJson(inputFile)
	require.NoError(t, err)

	scheduler, err := model.NewScheduler(model.Enumerative, nil)
	require.NoError(t, err)
	schedule, err := scheduler.Build(input.Courses, input.Preferences)
	require.NoError(t, err)
	require.True(t, scheduler.Verify(schedule, input.Courses))

	return schedule, input.Courses
}

func TestRender(t *testing.T) {
	schedule, courses := buildSample(t)

	t.Run("Text", func(t *testing.T) {
		output, err := render("text", model.Enumerative, schedule, courses, true)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output, "\nenumerative schedule:\n"))
		assert.Contains(t, output, "===== YOUR OPTIMIZED SCHEDULE =====")
		assert.Contains(t, output, "Total Score: ")
	})

	t.Run("CSV", func(t *testing.T) {
		output, err := render("csv", model.Enumerative, schedule, courses, true)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(output), "\n")
		assert.Equal(t, "course_id,course_name,section_id,day,start,end,instructor", lines[0])

		meetings := 0
		for _, section := range schedule.Sections {
			meetings += len(section.Days)
		}
		assert.Len(t, lines, meetings+1)
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := render("json", model.Enumerative, schedule, courses, true)
		require.NoError(t, err)

		var decoded jsonOutput
		require.NoError(t, json.Unmarshal([]byte(output), &decoded))

		assert.Equal(t, "enumerative", decoded.Strategy)
		assert.Equal(t, schedule.Score, decoded.Score)
		assert.True(t, decoded.Feasible)
		require.Len(t, decoded.Sections, len(courses))
		assert.Equal(t, schedule.Sections[0].CourseId, decoded.Sections[0].CourseId)
		assert.Equal(t, model.FormatClock24(schedule.Sections[0].Start), decoded.Sections[0].Start)
	})
}

func TestNewSolver(t *testing.T) {
	instance := sat.SAT{Variables: 2, Clauses: [][]int64{{1, 2}, {-1}}}

	solver := NewSolver(config.SolverConfig{Name: "gini"})
	solution, err := solver.Solve(instance)
	require.NoError(t, err)
	assert.Equal(t, sat.SATSolution{-1, 2}, solution)

	// Unknown names fall back to the in-process solver
	solution, err = NewSolver(config.SolverConfig{Name: "unknown"}).Solve(instance)
	require.NoError(t, err)
	assert.True(t, sat.Satisfies(instance, solution))

	assert.NotNil(t, NewSolver(config.SolverConfig{Name: "Kissat", KissatPath: "/opt/kissat"}))
}
