package scheduler

import (
	"context"
	"math/rand"
	"testing"
)

func smallRun(t *testing.T) (Result, Config) {
	t.Helper()
	courseA := NewCourse(CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"},
		CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}, 1, 1, 50, 1, 1, 50)
	courseB := NewCourse(CourseID{Subject: "COEN", Catalog: "311", ClassNumber: "2002"},
		CourseElement{Day: []Day{2, 9}, Start: 705, End: 755}, 1, 1, 50, 1, 1, 50)

	terms := []AcademicPlanTerm{{Courses: []string{"COEN212", "COEN311"}}}
	rooms := []RoomAssignment{{
		Building: "H", Room: "937", Subject: "COEN",
		AllowedCatalogs: map[string]struct{}{"212": {}, "311": {}},
	}}

	cfg := DefaultConfig()
	cfg.PopulationSize = 4
	cfg.NumOffspring = 2
	cfg.GenerationCap = 5
	cfg.StagnationLimit = 3

	rng := rand.New(rand.NewSource(123))
	result, err := Run(context.Background(), []Course{courseA, courseB}, terms, rooms, cfg, rng)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	return result, cfg
}

func TestRunProducesASchedulePerCourse(t *testing.T) {
	result, _ := smallRun(t)
	if len(result.Best.Courses) != 2 {
		t.Fatalf("expected 2 courses in the final schedule, got %d", len(result.Best.Courses))
	}
	if result.Generations < 1 {
		t.Fatal("expected Run to advance at least one generation")
	}
	if result.TerminationNote == "" {
		t.Fatal("expected a non-empty termination reason")
	}
}

func TestRunLabsCarryBuildingAndRoom(t *testing.T) {
	result, _ := smallRun(t)
	for _, course := range result.Best.Courses {
		for _, lab := range course.Labs() {
			if lab.IsZero() {
				continue
			}
			if lab.Bldg == "" || lab.Room == "" {
				t.Fatalf("lab for %s missing building/room after Run: %+v", course.ID, lab)
			}
		}
	}
}

func TestInitializePopulationSize(t *testing.T) {
	courseA := NewCourse(CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"},
		CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}, 1, 1, 50, 0, 0, 0)
	cfg := DefaultConfig()
	cfg.PopulationSize = 6
	rng := rand.New(rand.NewSource(1))

	pop := Initialize([]Course{courseA}, nil, nil, cfg, rng)
	if len(pop) != cfg.PopulationSize {
		t.Fatalf("Initialize returned %d individuals, want %d", len(pop), cfg.PopulationSize)
	}
}

func TestReplaceWorstPreservesPopulationSize(t *testing.T) {
	pop := make([]Schedule, 4)
	fitness := []float64{-1, -2, -3, -4}
	offspring := make([]Schedule, 2)
	offspringFitness := []float64{10, 20}

	newPop, newFitness := replaceWorst(pop, fitness, offspring, offspringFitness)
	if len(newPop) != len(pop) || len(newFitness) != len(fitness) {
		t.Fatal("replaceWorst must preserve population size")
	}

	// The two worst-fitness slots (-3 and -4) should have been overwritten.
	if newFitness[2] != 20 && newFitness[2] != 10 {
		t.Error("expected the worst individual to be replaced by an offspring")
	}
	if newFitness[3] != 20 && newFitness[3] != 10 {
		t.Error("expected the second-worst individual to be replaced by an offspring")
	}
	if newFitness[0] != -1 || newFitness[1] != -2 {
		t.Error("replaceWorst must not touch individuals better than the offspring count allows")
	}
}

func TestMaxScore(t *testing.T) {
	if maxScore(nil) != 0 {
		t.Fatal("maxScore of an empty slice should be 0")
	}
	if got := maxScore([]float64{-5, 3, 1}); got != 3 {
		t.Fatalf("maxScore = %f, want 3", got)
	}
}
