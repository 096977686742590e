package scheduler

// varietyScore scores a bundle of same-kind elements (all of a course's
// tutorials, or all of its labs) on [0, 1]: 0.5 weight on unique-day ratio,
// 0.5 weight on unique-start-time ratio. Bundles of zero or one element
// score a perfect 1.0, per spec §4.3.
func varietyScore(elements []CourseElement) float64 {
	valid := nonZero(elements)
	if len(valid) <= 1 {
		return 1.0
	}

	uniqueDays := make(map[Day]struct{})
	totalDayMarks := 0
	for _, e := range valid {
		totalDayMarks += len(e.Day)
		for _, d := range e.Day {
			uniqueDays[d] = struct{}{}
		}
	}
	dayVariety := 0.0
	if totalDayMarks > 0 {
		dayVariety = float64(len(uniqueDays)) / float64(totalDayMarks)
	}

	uniqueStarts := make(map[int]struct{})
	for _, e := range valid {
		uniqueStarts[e.Start] = struct{}{}
	}
	timeVariety := float64(len(uniqueStarts)) / float64(len(valid))

	return 0.5*dayVariety + 0.5*timeVariety
}

// countLectureClashes counts, for one course, the number of (lecture,
// tutorial) and (lecture, lab) pairs that clash, per spec §4.3(i).
func countLectureClashes(course Course) int {
	clashes := 0
	lecture := course.Lecture()
	for _, t := range nonZero(course.Tutorials()) {
		if lecture.Overlaps(t) {
			clashes++
		}
	}
	for _, l := range nonZero(course.Labs()) {
		if lecture.Overlaps(l) {
			clashes++
		}
	}
	return clashes
}

// Fitness bundles a schedule's score with the counts that produced it, so
// callers can report the breakdown without recomputing it.
// EnumerateConflicts builds its Output E records separately and does not
// read these counts.
type Fitness struct {
	Score             float64
	VarietyScore      float64
	LectureConflicts  int
	SequenceConflicts int
	RoomConflicts     int
}

// Total returns the combined conflict count across all three disjoint
// conflict kinds.
func (f Fitness) Total() int {
	return f.LectureConflicts + f.SequenceConflicts + f.RoomConflicts
}

// Evaluate scores schedule per spec §4.3:
// fitness = variety_score - 2*total_conflicts.
func Evaluate(schedule []Course, terms []AcademicPlanTerm, assignments []RoomAssignment) Fitness {
	if len(schedule) == 0 {
		return Fitness{}
	}

	totalVariety := 0.0
	varietyCount := 0
	for _, course := range schedule {
		if course.TutCount > 0 {
			totalVariety += varietyScore(course.Tutorials())
			varietyCount++
		}
		if course.LabCount > 0 {
			totalVariety += varietyScore(course.Labs())
			varietyCount++
		}
	}
	variety := 1.0
	if varietyCount > 0 {
		variety = totalVariety / float64(varietyCount)
	}

	lectureConflicts := 0
	for _, course := range schedule {
		lectureConflicts += countLectureClashes(course)
	}

	sequenceConflicts := CountInfeasibleTerms(schedule, terms)
	roomConflicts := CountRoomConflicts(schedule, assignments)

	f := Fitness{
		VarietyScore:      variety,
		LectureConflicts:  lectureConflicts,
		SequenceConflicts: sequenceConflicts,
		RoomConflicts:     roomConflicts,
	}
	f.Score = variety - 2*float64(f.Total())
	return f
}
