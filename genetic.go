package scheduler

import (
	"fmt"
	"math/rand"

	"github.com/MaxHalford/eaopt"
)

// Schedule is one individual: a fixed-order list of Courses plus the
// context (plan terms, room assignments, tunables) its operators need to
// evaluate and repair itself. The order is identical across every
// individual of a population, so uniform crossover is well-defined
// index-by-index (spec §3 Schedule/Individual).
//
// Schedule satisfies eaopt.Genome (Clone/Crossover/Mutate/Evaluate) so it
// can be dropped into that library's plumbing where useful, but the GA
// loop in ga.go drives its own generation loop rather than eaopt's stock
// Model — this domain's replace-worst, non-elitist replacement and
// three-rule termination don't match what eaopt's generic models assume,
// per the Open Question resolution in §9.
type Schedule struct {
	Courses []Course
	Terms   []AcademicPlanTerm
	Rooms   []RoomAssignment
	Cfg     Config
}

// clone returns a deep copy of s's courses. Terms and Rooms are shared
// since no operator ever mutates them; Cfg is copied by value.
func (s Schedule) clone() Schedule {
	courses := make([]Course, len(s.Courses))
	for i, c := range s.Courses {
		courses[i] = c.Clone()
	}
	return Schedule{Courses: courses, Terms: s.Terms, Rooms: s.Rooms, Cfg: s.Cfg}
}

// Clone implements eaopt.Genome.
func (s *Schedule) Clone() eaopt.Genome {
	c := s.clone()
	return &c
}

// Evaluate scores s per spec §4.3, implementing eaopt.Genome.
func (s *Schedule) Evaluate() (float64, error) {
	return Evaluate(s.Courses, s.Terms, s.Rooms).Score, nil
}

// Crossover implements eaopt.Genome by delegating to UniformCrossover and
// replacing the receiver's courses with the resulting offspring. The GA
// loop in ga.go calls UniformCrossover directly instead of going through
// this method; it exists so Schedule is a genuine eaopt.Genome, not just a
// lookalike. eaopt.Genome's Crossover has no error return, so a
// StructuralError here — parents with diverging course order, which never
// happens for individuals drawn from the same population — panics rather
// than being silently swallowed.
func (s *Schedule) Crossover(other eaopt.Genome, rng *rand.Rand) {
	mate := other.(*Schedule)
	child, err := UniformCrossover(*s, *mate, rng)
	if err != nil {
		panic(err)
	}
	s.Courses = child.Courses
}

// coreCourseCodes collects every course code appearing in any plan term.
func coreCourseCodes(terms []AcademicPlanTerm) map[string]struct{} {
	core := make(map[string]struct{})
	for _, term := range terms {
		for _, code := range term.Courses {
			core[code] = struct{}{}
		}
	}
	return core
}

// termsContaining returns every plan term that lists code.
func termsContaining(terms []AcademicPlanTerm, code string) []AcademicPlanTerm {
	var out []AcademicPlanTerm
	for _, term := range terms {
		for _, c := range term.Courses {
			if c == code {
				out = append(out, term)
				break
			}
		}
	}
	return out
}

// rankByFitnessDescending returns indices into fitness sorted best-first.
func rankByFitnessDescending(fitness []float64) []int {
	idx := make([]int, len(fitness))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && fitness[idx[j-1]] < fitness[idx[j]]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	return idx
}

// selectionProbabilities computes the exponential-ranking selection
// weights of spec §4.4: rank-k individual (1-indexed, best=1) gets
// probability proportional to alpha^(k-1).
func selectionProbabilities(fitness []float64, alpha float64) []float64 {
	n := len(fitness)
	probs := make([]float64, n)
	if n == 0 {
		return probs
	}
	ranked := rankByFitnessDescending(fitness)
	weights := make([]float64, n)
	total := 0.0
	for rank, idx := range ranked {
		w := pow(alpha, float64(rank))
		weights[idx] = w
		total += w
	}
	for i, w := range weights {
		probs[i] = w / total
	}
	return probs
}

// pow is a tiny integer-exponent power helper so this package doesn't need
// to import math just for alpha^(k-1) with small non-negative k.
func pow(base, exp float64) float64 {
	result := 1.0
	for i := 0.0; i < exp; i++ {
		result *= base
	}
	return result
}

// selectParents draws two distinct individuals without replacement,
// weighted by selectionProbabilities, per spec §4.4.
func selectParents(fitness []float64, alpha float64, rng *rand.Rand) (int, int) {
	probs := selectionProbabilities(fitness, alpha)
	first := weightedChoice(probs, rng, -1)
	second := weightedChoice(probs, rng, first)
	return first, second
}

// weightedChoice draws a single index from probs, optionally excluding one
// already-chosen index (pass -1 to exclude none) and renormalizing.
func weightedChoice(probs []float64, rng *rand.Rand, exclude int) int {
	total := 0.0
	for i, p := range probs {
		if i == exclude {
			continue
		}
		total += p
	}
	if total <= 0 {
		for i := range probs {
			if i != exclude {
				return i
			}
		}
		return 0
	}
	r := rng.Float64() * total
	running := 0.0
	for i, p := range probs {
		if i == exclude {
			continue
		}
		running += p
		if r <= running {
			return i
		}
	}
	for i := len(probs) - 1; i >= 0; i-- {
		if i != exclude {
			return i
		}
	}
	return 0
}

// UniformCrossover produces one offspring from p1 and p2, per spec §4.4:
// at each index pick p1's or p2's course with probability 0.5; if that
// course is core to a plan term, verify the pick keeps the term feasible
// (trying the other parent, then a minimize-overlap repair) before
// accepting it. Both parents must share the same course order — it
// returns a StructuralError if their lengths differ or their course
// identity diverges at any index, per spec §7's "structural failure" kind.
func UniformCrossover(p1, p2 Schedule, rng *rand.Rand) (Schedule, error) {
	if len(p1.Courses) != len(p2.Courses) {
		return Schedule{}, StructuralError{
			Op:     "UniformCrossover",
			Detail: fmt.Sprintf("parents have %d and %d courses", len(p1.Courses), len(p2.Courses)),
		}
	}

	terms := p1.Terms
	rooms := p1.Rooms
	core := coreCourseCodes(terms)

	offspring := make([]Course, 0, len(p1.Courses))
	for i := range p1.Courses {
		a, b := p1.Courses[i], p2.Courses[i]
		if a.ID != b.ID {
			return Schedule{}, StructuralError{
				Op:     "UniformCrossover",
				Detail: fmt.Sprintf("parent course identity differs at index %d: %s vs %s", i, a.ID.Code(), b.ID.Code()),
			}
		}
		chosen, fallback := a, b
		if rng.Float64() >= 0.5 {
			chosen, fallback = b, a
		}

		code := chosen.ID.Code()
		if _, isCore := core[code]; !isCore {
			offspring = append(offspring, chosen)
			continue
		}

		placed := append(append([]Course(nil), offspring...), chosen)
		if feasibleForCode(placed, terms, code) {
			offspring = append(offspring, chosen)
			continue
		}

		placed = append(append([]Course(nil), offspring...), fallback)
		if feasibleForCode(placed, terms, fallback.ID.Code()) {
			offspring = append(offspring, fallback)
			continue
		}

		repaired := repairForSequence(chosen, offspring, terms, rooms, rng)
		offspring = append(offspring, repaired)
	}

	return Schedule{Courses: offspring, Terms: terms, Rooms: rooms, Cfg: p1.Cfg}, nil
}

// feasibleForCode reports whether every plan term containing code still
// has a valid sequence combination given the partial schedule placed.
func feasibleForCode(placed []Course, terms []AcademicPlanTerm, code string) bool {
	idx := buildCourseIndex(placed)
	for _, term := range termsContaining(terms, code) {
		if !hasValidSequenceCombination(idx, term) {
			return false
		}
	}
	return true
}

// repairForSequence attempts up to 50 random re-placements of course,
// keeping the one that minimizes pairwise overlaps against the elements of
// other same-term courses already placed in offspringSoFar, with room-
// timetable awareness (spec §4.4).
func repairForSequence(course Course, offspringSoFar []Course, terms []AcademicPlanTerm, rooms []RoomAssignment, rng *rand.Rand) Course {
	code := course.ID.Code()
	var otherElements []CourseElement
	for _, term := range termsContaining(terms, code) {
		for _, other := range offspringSoFar {
			if other.ID.Code() == code {
				continue
			}
			inTerm := false
			for _, c := range term.Courses {
				if c == other.ID.Code() {
					inTerm = true
					break
				}
			}
			if !inTerm {
				continue
			}
			otherElements = append(otherElements, nonZero(other.Tutorials())...)
			otherElements = append(otherElements, nonZero(other.Labs())...)
		}
	}

	building, room, hasRoom := findRoomForCourse(course.ID, rooms)
	var scopedRoom *RoomTimetable
	if hasRoom {
		scopedRoom = NewRoomTimetable(building, room)
		for _, other := range offspringSoFar {
			if other.ID.Code() == code {
				continue
			}
			ob, oroom, ok := findRoomForCourse(other.ID, rooms)
			if !ok || ob != building || oroom != room {
				continue
			}
			for labIndex, lab := range other.Labs() {
				if lab.IsZero() {
					continue
				}
				for _, d := range lab.Day {
					scopedRoom.AddSlot(d, lab.Start, lab.End, other.ID.Subject, other.ID.Catalog, other.ID.ClassNumber, labIndex)
				}
			}
		}
	}

	best := course
	bestOverlaps := -1
	for attempt := 0; attempt < 50; attempt++ {
		trial := course.Clone()
		InitializeCourse(&trial, scopedRoom, rng)

		overlaps := 0
		for _, t := range nonZero(trial.Tutorials()) {
			for _, other := range otherElements {
				if t.Overlaps(other) {
					overlaps++
				}
			}
		}
		for _, l := range nonZero(trial.Labs()) {
			for _, other := range otherElements {
				if l.Overlaps(other) {
					overlaps++
				}
			}
		}

		if bestOverlaps == -1 || overlaps < bestOverlaps {
			best = trial
			bestOverlaps = overlaps
			if overlaps == 0 {
				break
			}
		}
	}
	return best
}

// Mutate selects Cfg.MutationCount non-core course indices uniformly at
// random and re-proposes their tutorials and labs via the placement
// engine, rebuilding each one's scoped room timetable from the
// already-mutated prefix (spec §4.4). Core courses are never mutated.
func (s *Schedule) Mutate(rng *rand.Rand) {
	core := coreCourseCodes(s.Terms)

	var nonCore []int
	for i, c := range s.Courses {
		if _, isCore := core[c.ID.Code()]; !isCore {
			nonCore = append(nonCore, i)
		}
	}
	if len(nonCore) == 0 {
		return
	}

	n := s.Cfg.MutationCount
	if n > len(nonCore) {
		n = len(nonCore)
	}
	rng.Shuffle(len(nonCore), func(i, j int) { nonCore[i], nonCore[j] = nonCore[j], nonCore[i] })
	toMutate := make(map[int]struct{}, n)
	for _, idx := range nonCore[:n] {
		toMutate[idx] = struct{}{}
	}

	mutated := make([]Course, 0, len(s.Courses))
	for i, course := range s.Courses {
		if _, should := toMutate[i]; !should {
			mutated = append(mutated, course)
			continue
		}

		building, room, hasRoom := findRoomForCourse(course.ID, s.Rooms)
		var scopedRoom *RoomTimetable
		if hasRoom {
			scopedRoom = NewRoomTimetable(building, room)
			for _, other := range mutated {
				ob, oroom, ok := findRoomForCourse(other.ID, s.Rooms)
				if !ok || ob != building || oroom != room {
					continue
				}
				for labIndex, lab := range other.Labs() {
					if lab.IsZero() {
						continue
					}
					for _, d := range lab.Day {
						scopedRoom.AddSlot(d, lab.Start, lab.End, other.ID.Subject, other.ID.Catalog, other.ID.ClassNumber, labIndex)
					}
				}
			}
		}

		trial := course.Clone()
		InitializeCourse(&trial, scopedRoom, rng)
		mutated = append(mutated, trial)
	}
	s.Courses = mutated
}
