package scheduler

import "math/rand"

// Discrete legal start times, keyed by meeting duration, per spec §4.2.
var (
	starts50  = []int{525, 640, 705, 820, 885, 1000, 1065, 1180}
	starts100 = []int{525, 590, 705, 770, 885, 950, 1065, 1150}
	starts165 = []int{525, 705, 885, 1065}
)

func startsFor(duration int) []int {
	switch duration {
	case 50:
		return starts50
	case 100:
		return starts100
	case 165:
		return starts165
	default:
		// Unanticipated duration: fall back to the widest catalog rather
		// than propose an empty one, matching the original's defensive
		// fallback-to-165 behavior in find_conflict_free_lab_slot.
		return starts165
	}
}

// tutorialWeekdays is the weekday pool tutorials draw their base day from.
var tutorialWeekdays = []Day{1, 2, 3, 4, 5}

// labWeekdays is the weekday pool (both fortnight weeks) labs draw their
// base day from.
var labWeekdays = []Day{1, 2, 3, 4, 5, 8, 9, 10, 11, 12}

const (
	tutorialResampleBudget = 120
	labResampleBudget      = 100
	courseInitBudget       = 100
)

// ProposeTutorial draws a candidate day/start for one tutorial section of
// course, resampling up to 120 times to avoid the course's own lecture, and
// accepting the last candidate if the budget is exhausted (spec §4.2). It
// always terminates and never fails.
func ProposeTutorial(course Course, rng *rand.Rand) CourseElement {
	duration := course.TutDuration
	starts := startsFor(duration)

	d := tutorialWeekdays[rng.Intn(len(tutorialWeekdays))]
	days := []Day{d, d + 7}

	clashesWithLecture := func(start int) bool {
		candidate := CourseElement{Day: days, Start: start, End: start + duration}
		return candidate.Overlaps(course.lecture)
	}

	start := starts[rng.Intn(len(starts))]
	if clashesWithLecture(start) {
		for attempt := 0; attempt < tutorialResampleBudget && clashesWithLecture(start); attempt++ {
			start = starts[rng.Intn(len(starts))]
		}
	}

	return CourseElement{Day: days, Start: start, End: start + duration}
}

// labDaysForFrequency computes the day-set for a lab base weekday, per the
// biweekly frequency rule: frequency 1 meets once in the fortnight on
// exactly base; frequency 2 meets on the same weekday in both weeks,
// regardless of which week base itself landed in.
func labDaysForFrequency(freq int, base Day) []Day {
	if freq == 1 {
		return []Day{base}
	}
	mon := base
	if base.InWeek2() {
		mon = base - 7
	}
	return []Day{mon, mon + 7}
}

// ProposeLab draws a candidate day-set/start for one lab section, rejecting
// candidates that clash with the course's lecture or (when a room timetable
// is supplied) with an existing room booking, per spec §4.2. After 100
// failed attempts it emits a fallback placement checked only against the
// lecture (or, if no attempt passed that check, the last attempt), never
// silently failing.
func ProposeLab(course Course, rt *RoomTimetable, rng *rand.Rand) CourseElement {
	starts := startsFor(course.LabDuration)

	var fallback, lectureFreeFallback CourseElement
	haveLectureFree := false
	for attempt := 0; attempt < labResampleBudget; attempt++ {
		base := labWeekdays[rng.Intn(len(labWeekdays))]
		days := labDaysForFrequency(course.BiweeklyLabFreq, base)
		start := starts[rng.Intn(len(starts))]
		candidate := CourseElement{Day: days, Start: start, End: start + course.LabDuration}

		baseWeek1 := Day(base.Weekday())
		lectureClash := CourseElement{Day: []Day{baseWeek1}, Start: start, End: start + course.LabDuration}.
			Overlaps(CourseElement{Day: filterWeek1(course.lecture.Day), Start: course.lecture.Start, End: course.lecture.End})
		if lectureClash {
			fallback = candidate
			continue
		}

		if rt != nil && rt.hasAnyConflict(days, start, start+course.LabDuration) {
			lectureFreeFallback = candidate
			haveLectureFree = true
			continue
		}

		return candidate
	}

	// Retry budget exhausted: accept the last tried candidate that passed
	// the lecture check (it failed only on the room), or, if every attempt
	// clashed with the lecture, the last tried candidate. This is the
	// fallback placement spec §9 calls out as deliberate — fitness will
	// penalize it, and FallbackCount makes the degradation observable.
	if haveLectureFree {
		return lectureFreeFallback
	}
	return fallback
}

func filterWeek1(days []Day) []Day {
	out := make([]Day, 0, len(days))
	for _, d := range days {
		if !d.InWeek2() {
			out = append(out, d)
		}
	}
	return out
}

// InitializeCourse fills in course's tutorials and labs, retrying up to 100
// times for an internally clash-free placement (tutorial-tutorial,
// lab-lab, tutorial-lab, lecture-tutorial, lecture-lab). rt, if non-nil, is
// a room timetable scoped to this course's assigned room; it is consulted
// by ProposeLab but never mutated by this function. Returns whether the
// final placement is internally clash-free (false means the budget was
// exhausted and the placement from the final attempt was kept — a soft
// placement failure, not an error, per spec §4.9). Failed attempts are not
// compared with each other.
func InitializeCourse(course *Course, rt *RoomTimetable, rng *rand.Rand) bool {
	var best Course
	bestHasAttempt := false

	for attempt := 0; attempt < courseInitBudget; attempt++ {
		trial := course.Clone()

		tutorials := make([]CourseElement, course.TutCount)
		for i := range tutorials {
			tutorials[i] = ProposeTutorial(trial, rng)
		}

		labs := make([]CourseElement, course.LabCount)
		for i := range labs {
			labs[i] = ProposeLab(trial, rt, rng)
		}

		trial.AssignNonLecture(tutorials, labs)

		if !bestHasAttempt {
			best = trial
			bestHasAttempt = true
		}

		if !trial.internalOverlap() {
			*course = trial
			return true
		}
		best = trial
	}

	*course = best
	return false
}
