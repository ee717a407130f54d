package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/limaJavier/coursescheduler/pkg/model"
	"github.com/limaJavier/coursescheduler/pkg/sat"
)

const defaultTestDirectory = "../../test/inputs/"

type ResultType int

const (
	solved ResultType = iota
	conflicting
)

var resultTypes = map[ResultType]string{
	solved:      "solved",
	conflicting: "conflicting",
}

type TestMetadata struct {
	Name     string
	Courses  int
	Sections int
	Feasible bool
}

type BenchmarkResult struct {
	RunId    string `csv:"run_id"`
	Strategy string `csv:"strategy"`
	Test     string `csv:"test"`
	Courses  int    `csv:"courses"`
	Sections int    `csv:"sections"`
	Feasible bool   `csv:"feasible"`
	Duration int64  `csv:"duration_us"`
	Score    int    `csv:"score"`
	Result   string `csv:"result"`
}

func main() {
	directoryPtr := flag.String("dir", defaultTestDirectory, "Directory holding the input files")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV report")
	flag.Parse()

	solver := sat.NewGiniSolver()
	tests, inputs := getTests(*directoryPtr, solver)
	results := make([]*BenchmarkResult, 0, len(tests)*len(model.Strategies()))

	for i, test := range tests {
		for _, strategy := range model.Strategies() {
			fmt.Printf("Benchmarking test \"%v\" with strategy \"%v\"\n", test.Name, strategy)
			results = append(results, measure(strategy, test, inputs[i]))
		}
	}

	if err := toCsv(results, *outPtr); err != nil {
		log.Fatal(err)
	}
}

func getTests(directory string, solver sat.SATSolver) ([]TestMetadata, []model.Input) {
	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	inputs := make([]model.Input, 0, len(testFiles))
	for _, file := range testFiles {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		input, err := model.InputFromJson(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		feasibility, err := model.CheckFeasibility(input.Courses, solver)
		if err != nil {
			log.Fatalf("cannot check feasibility of %v: %v", filename, err)
		}

		tests = append(tests, TestMetadata{
			Name:     filename,
			Courses:  len(input.Courses),
			Sections: lo.SumBy(input.Courses, func(course *model.Course) int { return len(course.Sections) }),
			Feasible: feasibility.Feasible,
		})
		inputs = append(inputs, input)
	}

	return tests, inputs
}

func measure(strategy model.Strategy, test TestMetadata, input model.Input) *BenchmarkResult {
	scheduler, err := model.NewScheduler(strategy, nil)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	schedule, err := scheduler.Build(input.Courses, input.Preferences)
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("an error occurred at test \"%v\" using strategy \"%v\": %v", test.Name, strategy, err)
	}

	result := solved
	if !scheduler.Verify(schedule, input.Courses) {
		result = conflicting
	}

	return &BenchmarkResult{
		RunId:    uuid.NewString(),
		Strategy: strategy.String(),
		Test:     test.Name,
		Courses:  test.Courses,
		Sections: test.Sections,
		Feasible: test.Feasible,
		Duration: duration.Microseconds(),
		Score:    schedule.Score,
		Result:   resultTypes[result],
	}
}

func toCsv(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		return fmt.Errorf("cannot write CSV records: %w", err)
	}
	return nil
}
