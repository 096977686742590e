package scheduler

import "fmt"

// RowError records one rejected input row: the loader reports and skips
// it rather than aborting the run, per spec §7's "input rejected" failure
// kind.
type RowError struct {
	Source string // which table the row came from, e.g. "courses"
	Row    int    // 1-indexed data row number, header excluded
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Source, e.Row, e.Reason)
}

// StructuralError marks an invariant violation that indicates a bug in
// the engine rather than bad input or an exhausted retry budget — e.g.
// uniform crossover called with parents whose course identity differs at
// some index. Unlike RowError, a StructuralError aborts the run, per spec
// §7's "structural failure" failure kind.
type StructuralError struct {
	Op     string
	Detail string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("structural failure in %s: %s", e.Op, e.Detail)
}

// FallbackCount tracks how many placements degraded to a best-effort
// fallback after their retry budget was exhausted (spec §7's "soft
// placement failure" kind, which is never an error — fitness and the
// conflict enumerator make the degradation observable instead).
type FallbackCount struct {
	Tutorials int // tutorial sections still overlapping their own lecture
	Labs      int // lab sections still overlapping their own lecture, or another course's room booking
	Courses   int // InitializeCourse exhausted its own outer budget
}

// Add accumulates another FallbackCount into fc.
func (fc *FallbackCount) Add(other FallbackCount) {
	fc.Tutorials += other.Tutorials
	fc.Labs += other.Labs
	fc.Courses += other.Courses
}

// CountFallbacks reports, for a finished schedule, the observable trace of
// placements that exhausted their retry budget in ProposeTutorial or
// ProposeLab (spec §9's "counter of fallback events" for downstream
// degenerate-run detection). ProposeTutorial only ever rejects a candidate
// for clashing with its own lecture, so a tutorial still overlapping the
// lecture in the final schedule could only have reached it by falling
// through to the fallback candidate. ProposeLab rejects on both that
// lecture clash and a room-booking conflict, so a lab counts as a
// fallback if it still overlaps its lecture, or if replaying the
// schedule's room bookings in order finds it colliding with a slot
// another course already holds.
func CountFallbacks(courses []Course, assignments []RoomAssignment) FallbackCount {
	var fc FallbackCount

	timetables := make(map[roomKey]*RoomTimetable)
	for _, a := range assignments {
		key := roomKey{a.Building, a.Room}
		if _, ok := timetables[key]; !ok {
			timetables[key] = NewRoomTimetable(a.Building, a.Room)
		}
	}

	for _, c := range courses {
		lecture := c.Lecture()

		for _, t := range c.Tutorials() {
			if !t.IsZero() && lecture.Overlaps(t) {
				fc.Tutorials++
			}
		}

		var timetable *RoomTimetable
		if building, room, ok := findRoomForCourse(c.ID, assignments); ok {
			timetable = timetables[roomKey{building, room}]
		}

		for labIndex, l := range c.Labs() {
			if l.IsZero() {
				continue
			}
			fellBack := lecture.Overlaps(l)
			if timetable != nil {
				for _, d := range l.Day {
					if !timetable.AddSlot(d, l.Start, l.End, c.ID.Subject, c.ID.Catalog, c.ID.ClassNumber, labIndex) {
						fellBack = true
					}
				}
			}
			if fellBack {
				fc.Labs++
			}
		}

		if c.internalOverlap() {
			fc.Courses++
		}
	}

	return fc
}
