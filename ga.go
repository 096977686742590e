package scheduler

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a GA run: the best schedule found, its fitness,
// the generation it terminated on, and why it stopped.
type Result struct {
	Best            Schedule
	BestFitness     Fitness
	Generations     int
	TerminationNote string
	FitnessHistory  []float64
	Fallbacks       FallbackCount
}

// Initialize builds a population of cfg.PopulationSize individuals, each a
// full copy of the base course list with tutorials/labs placed by the
// placement engine, one course at a time, each scoped to its own room
// timetable built from the individual's own prior placements (spec §4.2).
func Initialize(base []Course, terms []AcademicPlanTerm, rooms []RoomAssignment, cfg Config, rng *rand.Rand) []Schedule {
	population := make([]Schedule, cfg.PopulationSize)
	for p := 0; p < cfg.PopulationSize; p++ {
		courses := make([]Course, len(base))
		for i, course := range base {
			trial := course.Clone()

			building, room, hasRoom := findRoomForCourse(trial.ID, rooms)
			var scopedRoom *RoomTimetable
			if hasRoom {
				scopedRoom = NewRoomTimetable(building, room)
				for j := 0; j < i; j++ {
					ob, oroom, ok := findRoomForCourse(courses[j].ID, rooms)
					if !ok || ob != building || oroom != room {
						continue
					}
					for labIndex, lab := range courses[j].Labs() {
						if lab.IsZero() {
							continue
						}
						for _, d := range lab.Day {
							scopedRoom.AddSlot(d, lab.Start, lab.End, courses[j].ID.Subject, courses[j].ID.Catalog, courses[j].ID.ClassNumber, labIndex)
						}
					}
				}
			}

			InitializeCourse(&trial, scopedRoom, rng)
			courses[i] = trial
		}
		population[p] = Schedule{Courses: courses, Terms: terms, Rooms: rooms, Cfg: cfg}
	}
	return population
}

// evaluateAll scores every individual in pop concurrently. Fitness
// evaluation is pure (no randomness), so the result is independent of
// goroutine scheduling order and reproducible for a given population.
func evaluateAll(ctx context.Context, pop []Schedule) ([]Fitness, error) {
	fitness := make([]Fitness, len(pop))
	group, gctx := errgroup.WithContext(ctx)
	for i, individual := range pop {
		i, individual := i, individual
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fitness[i] = Evaluate(individual.Courses, individual.Terms, individual.Rooms)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return fitness, nil
}

// scores extracts the .Score field of each Fitness, the shape the
// selection and termination operators consume.
func scores(fitness []Fitness) []float64 {
	out := make([]float64, len(fitness))
	for i, f := range fitness {
		out[i] = f.Score
	}
	return out
}

// maxScore returns the largest score in fitness, or 0 for an empty slice.
func maxScore(fitness []float64) float64 {
	if len(fitness) == 0 {
		return 0
	}
	max := fitness[0]
	for _, f := range fitness[1:] {
		if f > max {
			max = f
		}
	}
	return max
}

// replaceWorst overwrites the k worst-scoring individuals of pop (by
// ascending fitness) with the k offspring, regardless of whether the
// offspring score better — replacement is non-elitist, per spec §4.4.
// Population size never changes.
func replaceWorst(pop []Schedule, fitness []float64, offspring []Schedule, offspringFitness []float64) ([]Schedule, []float64) {
	n := len(offspring)
	if n == 0 {
		return pop, fitness
	}

	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && fitness[order[j-1]] > fitness[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}

	newPop := append([]Schedule(nil), pop...)
	newFitness := append([]float64(nil), fitness...)
	for i := 0; i < n && i < len(order); i++ {
		worstIdx := order[i]
		newPop[worstIdx] = offspring[i]
		newFitness[worstIdx] = offspringFitness[i]
	}
	return newPop, newFitness
}

// Run drives the generation loop of spec §4.6: initialize, score, then
// repeatedly produce Cfg.NumOffspring children via selection, crossover,
// and mutation, score them, replace the population's worst individuals,
// and check the three termination rules until one fires.
func Run(ctx context.Context, base []Course, terms []AcademicPlanTerm, rooms []RoomAssignment, cfg Config, rng *rand.Rand) (Result, error) {
	pop := Initialize(base, terms, rooms, cfg, rng)

	fitnessDetail, err := evaluateAll(ctx, pop)
	if err != nil {
		return Result{}, err
	}
	fitness := scores(fitnessDetail)
	history := []float64{maxScore(fitness)}

	gen := 0
	reason := "continue evolution"
	for {
		gen++

		offspring := make([]Schedule, 0, cfg.NumOffspring)
		for o := 0; o < cfg.NumOffspring; o++ {
			i1, i2 := selectParents(fitness, cfg.Alpha, rng)
			child, err := UniformCrossover(pop[i1], pop[i2], rng)
			if err != nil {
				return Result{}, err
			}
			child.Mutate(rng)
			offspring = append(offspring, child)
		}

		offspringFitnessDetail, err := evaluateAll(ctx, offspring)
		if err != nil {
			return Result{}, err
		}
		offspringFitness := scores(offspringFitnessDetail)

		pop, fitness = replaceWorst(pop, fitness, offspring, offspringFitness)
		history = append(history, maxScore(fitness))

		var done bool
		done, reason = ShouldTerminate(gen, fitness, history, cfg)
		if done {
			break
		}
	}

	bestIdx := 0
	for i, f := range fitness {
		if f > fitness[bestIdx] {
			bestIdx = i
		}
	}

	best := pop[bestIdx]
	best.Courses = AssignRoomsToLabs(best.Courses, rooms)

	return Result{
		Best:            best,
		BestFitness:     Evaluate(best.Courses, terms, rooms),
		Generations:     gen,
		TerminationNote: reason,
		FitnessHistory:  history,
		Fallbacks:       CountFallbacks(best.Courses, rooms),
	}, nil
}
