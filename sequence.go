package scheduler

// AcademicPlanTerm is one semester of one academic plan: the ordered list
// of course codes ("SUBJCAT", e.g. "COEN212") a student following the plan
// takes together, per spec §3. It is a hard constraint on a schedule: at
// least one combined tutorial+lab assignment across these courses must be
// clash-free.
type AcademicPlanTerm struct {
	PlanID   string
	PlanName string
	Program  string
	TermID   string
	Courses  []string // course codes, e.g. "COEN212"
}

// courseIndex maps a course code to its Course for fast plan-term lookup.
type courseIndex map[string]Course

func buildCourseIndex(schedule []Course) courseIndex {
	idx := make(courseIndex, len(schedule))
	for _, c := range schedule {
		idx[c.ID.Code()] = c
	}
	return idx
}

// nonZero filters out unset (not-yet-placed) elements.
func nonZero(elements []CourseElement) []CourseElement {
	out := make([]CourseElement, 0, len(elements))
	for _, e := range elements {
		if !e.IsZero() {
			out = append(out, e)
		}
	}
	return out
}

// anyPairOverlap reports whether any two elements of combo clash.
func anyPairOverlap(combo []CourseElement) bool {
	for i := 0; i < len(combo); i++ {
		for j := i + 1; j < len(combo); j++ {
			if combo[i].Overlaps(combo[j]) {
				return true
			}
		}
	}
	return false
}

// hasValidSequenceCombination implements spec §4.5: search the cartesian
// product of every resolved course's tutorial bundle and lab bundle for one
// combined assignment (one tutorial plus one lab per course) with zero
// pairwise clashes. It prunes aggressively — a partial tutorial tuple is
// rejected as soon as any pair in it clashes, and the same for labs;
// cross tutorial/lab clashes are only checked once both tuples are fully
// formed.
func hasValidSequenceCombination(idx courseIndex, term AcademicPlanTerm) bool {
	tutBundles := make([][]CourseElement, 0, len(term.Courses))
	labBundles := make([][]CourseElement, 0, len(term.Courses))

	for _, code := range term.Courses {
		course, ok := idx[code]
		if !ok {
			return false
		}
		if tuts := nonZero(course.Tutorials()); len(tuts) > 0 {
			tutBundles = append(tutBundles, tuts)
		}
		if labs := nonZero(course.Labs()); len(labs) > 0 {
			labBundles = append(labBundles, labs)
		}
	}

	if len(tutBundles) == 0 && len(labBundles) == 0 {
		return true
	}

	return searchTutorials(tutBundles, labBundles, nil)
}

// searchTutorials walks the cartesian product of tutorial bundles depth
// first, pruning any partial tuple with an internal clash, then hands a
// complete clash-free tuple to searchLabs.
func searchTutorials(tutBundles, labBundles [][]CourseElement, partial []CourseElement) bool {
	if len(partial) == len(tutBundles) {
		return searchLabs(labBundles, partial, nil)
	}
	for _, candidate := range tutBundles[len(partial)] {
		next := append(append([]CourseElement(nil), partial...), candidate)
		if anyPairOverlap(next) {
			continue
		}
		if searchTutorials(tutBundles, labBundles, next) {
			return true
		}
	}
	return false
}

// searchLabs walks the cartesian product of lab bundles depth first for a
// fixed, already clash-free tutorial tuple, pruning partial lab tuples the
// same way, and checking cross tutorial/lab clashes only once a lab tuple
// is fully formed.
func searchLabs(labBundles [][]CourseElement, tutTuple, partial []CourseElement) bool {
	if len(partial) == len(labBundles) {
		combined := append(append([]CourseElement(nil), tutTuple...), partial...)
		return !anyPairOverlap(combined)
	}
	for _, candidate := range labBundles[len(partial)] {
		next := append(append([]CourseElement(nil), partial...), candidate)
		if anyPairOverlap(next) {
			continue
		}
		if searchLabs(labBundles, tutTuple, next) {
			return true
		}
	}
	return false
}

// CountInfeasibleTerms returns the number of plan terms in terms that have
// no clash-free combined assignment against schedule, used by the fitness
// function's sequence-infeasibility term (spec §4.3). Results are not
// memoized across calls within a generation; callers evaluating many
// individuals against the same term set should memoize by schedule
// identity if profiling shows it is warranted (spec §9).
func CountInfeasibleTerms(schedule []Course, terms []AcademicPlanTerm) int {
	idx := buildCourseIndex(schedule)
	infeasible := 0
	for _, term := range terms {
		if !hasValidSequenceCombination(idx, term) {
			infeasible++
		}
	}
	return infeasible
}
