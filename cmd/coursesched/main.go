// Command coursesched runs the tutorial/lab scheduling GA over a
// department's course, room, and academic-plan-term tables and writes the
// resulting schedule and conflict report.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	scheduler "github.com/deptsched/coursesched"
	"github.com/deptsched/coursesched/internal/config"
	"github.com/deptsched/coursesched/internal/csvio"
	"github.com/deptsched/coursesched/internal/logging"
)

var (
	coursesPath string
	roomsPath   string
	plansPath   string
	schedulePath string
	conflictsPath string
	seed        int64
	verbose     bool
)

func main() {
	root := &cobra.Command{
		Use:   "coursesched",
		Short: "Tutorial/lab schedule optimizer",
		Long:  "coursesched evolves a conflict-minimizing tutorial and lab timetable from a fixed lecture schedule using a genetic algorithm.",
	}
	root.PersistentFlags().StringVar(&coursesPath, "courses", "", "path to the course list CSV (Input A)")
	root.PersistentFlags().StringVar(&roomsPath, "rooms", "", "path to the room allowlist CSV (Input B)")
	root.PersistentFlags().StringVar(&plansPath, "plans", "", "path to the academic-plan-term CSV (Input C)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and pretty-printed diagnostics")
	root.MarkPersistentFlagRequired("courses")
	root.MarkPersistentFlagRequired("rooms")
	root.MarkPersistentFlagRequired("plans")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evolve a schedule and write Output D and Output E",
		RunE:  runSchedule,
	}
	runCmd.Flags().StringVar(&schedulePath, "out-schedule", "schedule.csv", "path to write the final schedule (Output D)")
	runCmd.Flags().StringVar(&conflictsPath, "out-conflicts", "conflicts.csv", "path to write the conflict report (Output E)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 derives one from the current time")
	root.AddCommand(runCmd)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "load the three source tables and report rejected rows without running the GA",
		RunE:  runValidate,
	}
	root.AddCommand(validateCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSources(cfg scheduler.Config) ([]scheduler.Course, []scheduler.RoomAssignment, []scheduler.AcademicPlanTerm, error) {
	coursesFile, err := os.Open(coursesPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening courses file: %w", err)
	}
	defer coursesFile.Close()
	courses, rejectedCourses, err := (csvio.CourseSource{Reader: coursesFile}).LoadCourses()
	if err != nil {
		return nil, nil, nil, err
	}
	for _, re := range rejectedCourses {
		fmt.Fprintln(os.Stderr, "rejected:", re)
	}

	roomsFile, err := os.Open(roomsPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening rooms file: %w", err)
	}
	defer roomsFile.Close()
	rooms, rejectedRooms, err := (csvio.RoomSource{Reader: roomsFile}).LoadRooms()
	if err != nil {
		return nil, nil, nil, err
	}
	for _, re := range rejectedRooms {
		fmt.Fprintln(os.Stderr, "rejected:", re)
	}

	plansFile, err := os.Open(plansPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening plans file: %w", err)
	}
	defer plansFile.Close()
	terms, rejectedPlans, err := (csvio.PlanSource{Reader: plansFile, TargetSeason: cfg.TargetSeason}).LoadPlanTerms()
	if err != nil {
		return nil, nil, nil, err
	}
	for _, re := range rejectedPlans {
		fmt.Fprintln(os.Stderr, "rejected:", re)
	}

	return courses, rooms, terms, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	courses, rooms, terms, err := loadSources(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d courses, %d room assignments, %d plan terms\n", len(courses), len(rooms), len(terms))
	if verbose {
		pp.Println(cfg)
	}
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	courses, rooms, terms, err := loadSources(cfg)
	if err != nil {
		return err
	}
	sugar.Infow("loaded sources", "courses", len(courses), "rooms", len(rooms), "terms", len(terms))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.EvalTimeout*time.Duration(cfg.GenerationCap))
	defer cancel()

	result, err := scheduler.Run(ctx, courses, terms, rooms, cfg, rng)
	if err != nil {
		return fmt.Errorf("running GA: %w", err)
	}
	sugar.Infow("GA finished",
		"generations", result.Generations,
		"score", result.BestFitness.Score,
		"reason", result.TerminationNote,
		"fallbacks", result.Fallbacks.Courses,
	)
	if verbose {
		pp.Println(result.BestFitness)
	}

	scheduleFile, err := os.Create(schedulePath)
	if err != nil {
		return err
	}
	defer scheduleFile.Close()
	sink := csvio.ScheduleSink{Writer: scheduleFile, Year: cfg.AcademicYear, Season: cfg.TargetSeason}
	if err := sink.WriteSchedule(result.Best.Courses); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}

	conflictsFile, err := os.Create(conflictsPath)
	if err != nil {
		return err
	}
	defer conflictsFile.Close()
	records := scheduler.EnumerateConflicts(result.Best.Courses, terms, rooms)
	if err := (csvio.ConflictSink{Writer: conflictsFile}).WriteConflicts(records); err != nil {
		return fmt.Errorf("writing conflicts: %w", err)
	}

	return nil
}
