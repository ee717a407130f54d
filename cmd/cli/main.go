package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/coursescheduler/pkg/config"
	"github.com/limaJavier/coursescheduler/pkg/export"
	"github.com/limaJavier/coursescheduler/pkg/logger"
	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/limaJavier/coursescheduler/pkg/sat"
)

const (
	exitFeasible   = 10
	exitInfeasible = 20
)

var validFormats = []string{"text", "csv", "json"}

type jsonEntry struct {
	CourseId   string   `json:"course"`
	SectionId  string   `json:"section"`
	Days       []string `json:"days"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Instructor string   `json:"instructor"`
}

type jsonOutput struct {
	Strategy string      `json:"strategy"`
	Score    int         `json:"score"`
	Feasible bool        `json:"feasible"`
	Sections []jsonEntry `json:"sections"`
}

func main() {
	// Define arguments
	configPtr := flag.String("config", "", "Path to a configuration file (yaml, json or toml); COURSESCHED_* environment variables override it")
	strategyPtr := flag.String("strategy", "", `Strategy used to pick the sections. Allowed values are:
- "greedy" (Decides the most constrained courses first and never revisits a choice),
- "dynamic" or "enumerative" (Explores every conflict-free combination, the result is optimal) and
- "backtracking" (Depth-first search pruned by the partial score, the optimum may be pruned), where the configured strategy is the default`)
	filePathPtr := flag.String("file", "", "Path to the input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	formatPtr := flag.String("format", "text", `Output format: "text", "csv" or "json"`)
	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer zapLogger.Sync()

	strategyName := *strategyPtr
	if strategyName == "" {
		strategyName = cfg.Scheduler.Strategy
	}
	format := strings.ToLower(*formatPtr)

	// Validate arguments
	strategy, err := model.ParseStrategy(strategyName)
	if err != nil {
		log.Fatal(err)
	} else if *filePathPtr == "" {
		log.Fatal("an input file must be specified")
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	}

	// Extract input
	input, err := model.InputFromJson(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Initialize engines
	scheduler, err := model.NewScheduler(strategy, zapLogger)
	if err != nil {
		log.Fatal(err)
	}
	solver := NewSolver(cfg.Solver)

	// Build schedule
	schedule, err := scheduler.Build(input.Courses, input.Preferences)
	if err != nil {
		log.Fatalf("an error occurred during schedule construction: %v", err)
	}

	feasibility, err := model.CheckFeasibility(input.Courses, solver)
	if err != nil {
		log.Fatalf("an error occurred during the feasibility check: %v", err)
	}
	if !feasibility.Feasible {
		zapLogger.Warn("no conflict-free combination of sections exists",
			zap.Uint64("variables", feasibility.Variables),
			zap.Uint64("clauses", feasibility.Clauses),
		)
	}

	output, err := render(format, strategy, schedule, input.Courses, feasibility.Feasible)
	if err != nil {
		log.Fatalf("an error occurred while building the output: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if *outFilePathPtr == "" {
		fmt.Print(output)
	} else if err := os.WriteFile(*outFilePathPtr, []byte(output), 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	zapLogger.Sync()
	if scheduler.Verify(schedule, input.Courses) {
		os.Exit(exitFeasible)
	}
	os.Exit(exitInfeasible)
}

func NewSolver(cfg config.SolverConfig) sat.SATSolver {
	if strings.ToLower(cfg.Name) == "kissat" {
		return sat.NewKissatSolver(cfg.KissatPath)
	}
	return sat.NewGiniSolver()
}

func render(format string, strategy model.Strategy, schedule model.Schedule, courses []*model.Course, feasible bool) (string, error) {
	switch format {
	case "csv":
		var builder strings.Builder
		if err := export.WriteCSV(&builder, schedule, courses); err != nil {
			return "", err
		}
		return builder.String(), nil
	case "json":
		output := jsonOutput{
			Strategy: strategy.String(),
			Score:    schedule.Score,
			Feasible: feasible,
			Sections: make([]jsonEntry, 0, len(schedule.Sections)),
		}
		for _, section := range schedule.Sections {
			days := lo.Map(section.Days, func(day model.Weekday, _ int) string { return day.String() })
			output.Sections = append(output.Sections, jsonEntry{
				CourseId:   section.CourseId,
				SectionId:  section.Id,
				Days:       days,
				Start:      model.FormatClock24(section.Start),
				End:        model.FormatClock24(section.End),
				Instructor: section.Instructor,
			})
		}
		bytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return "", err
		}
		return string(bytes) + "\n", nil
	default:
		return fmt.Sprintf("\n%v schedule:\n%v", strategy, schedule.Render()), nil
	}
}
