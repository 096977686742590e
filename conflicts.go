package scheduler

import "fmt"

// ConflictKind tags the eight conflict record kinds the enumerator of
// spec §4.8 can emit.
type ConflictKind string

const (
	LectureTutorialConflict       ConflictKind = "Lecture-Tutorial"
	LectureLabConflict            ConflictKind = "Lecture-Lab"
	SequenceMissingCourse         ConflictKind = "Sequence-Missing Course"
	SequenceTutorialOverlap       ConflictKind = "Sequence-Tutorial Overlap"
	SequenceLabOverlap            ConflictKind = "Sequence-Lab Overlap"
	SequenceTutorialLabOverlap    ConflictKind = "Sequence-Tutorial/Lab Overlap"
	SequenceNoValidCombination    ConflictKind = "Sequence-No Valid Combination"
	RoomBookingConflict           ConflictKind = "Room Conflict"
)

// ConflictRecord is one row of Output E.
type ConflictRecord struct {
	Kind             ConflictKind
	Courses          []string // course code(s); class numbers are in ClassNumbers
	ClassNumbers     []string
	Component1       Component
	Component1Index  int
	Component2       Component
	Component2Index  int
	Day              Day
	Time1            string
	Time2            string
	Building         string
	Room             string
}

func formatTime(start, end int) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60)
}

func overlappingDay(a, b CourseElement) (Day, bool) {
	set := make(map[Day]struct{}, len(a.Day))
	for _, d := range a.Day {
		set[d] = struct{}{}
	}
	for _, d := range b.Day {
		if _, ok := set[d]; ok {
			return d, true
		}
	}
	return 0, false
}

// enumerateLectureClashes yields one record per (lecture, tutorial) or
// (lecture, lab) pair that clashes within a single course.
func enumerateLectureClashes(course Course) []ConflictRecord {
	var records []ConflictRecord
	lecture := course.Lecture()
	code := course.ID.Code()

	for i, t := range course.Tutorials() {
		if t.IsZero() || !lecture.Overlaps(t) {
			continue
		}
		day, _ := overlappingDay(lecture, t)
		records = append(records, ConflictRecord{
			Kind:            LectureTutorialConflict,
			Courses:         []string{code},
			ClassNumbers:    []string{course.ID.ClassNumber},
			Component1:      Lecture,
			Component2:      Tutorial,
			Component2Index: i,
			Day:             day,
			Time1:           formatTime(lecture.Start, lecture.End),
			Time2:           formatTime(t.Start, t.End),
		})
	}

	for i, l := range course.Labs() {
		if l.IsZero() || !lecture.Overlaps(l) {
			continue
		}
		day, _ := overlappingDay(lecture, l)
		records = append(records, ConflictRecord{
			Kind:            LectureLabConflict,
			Courses:         []string{code},
			ClassNumbers:    []string{course.ID.ClassNumber},
			Component1:      Lecture,
			Component2:      Lab,
			Component2Index: i,
			Day:             day,
			Time1:           formatTime(lecture.Start, lecture.End),
			Time2:           formatTime(l.Start, l.End),
			Building:        l.Bldg,
			Room:            l.Room,
		})
	}
	return records
}

// enumerateSequenceClashes inspects one plan term and, if it is
// infeasible, tries to attribute the infeasibility to specific pairwise
// overlaps; missing courses and pairs are reported individually. If the
// term is infeasible but no specific overlap can be pinned down, a single
// defensive Sequence-No Valid Combination record is emitted instead, per
// spec §4.8.
func enumerateSequenceClashes(idx courseIndex, term AcademicPlanTerm) []ConflictRecord {
	var courses []Course
	var missing []string
	for _, code := range term.Courses {
		c, ok := idx[code]
		if !ok {
			missing = append(missing, code)
			continue
		}
		courses = append(courses, c)
	}

	var records []ConflictRecord
	for _, code := range missing {
		records = append(records, ConflictRecord{
			Kind:    SequenceMissingCourse,
			Courses: []string{code},
		})
	}
	if len(missing) > 0 {
		return records
	}

	if hasValidSequenceCombination(idx, term) {
		return nil
	}

	pairwise := findPairwiseSequenceOverlaps(courses)
	if len(pairwise) > 0 {
		return pairwise
	}

	return []ConflictRecord{{
		Kind:    SequenceNoValidCombination,
		Courses: term.Courses,
	}}
}

// findPairwiseSequenceOverlaps reports every overlapping (tutorial,
// tutorial), (lab, lab), and (tutorial, lab) pair across courses' sections.
// Pairs of sections from the same course are included too; the records do
// not distinguish them from pairs across two courses of the term.
func findPairwiseSequenceOverlaps(courses []Course) []ConflictRecord {
	type tagged struct {
		element  CourseElement
		code     string
		classNbr string
		kind     Component
		index    int
	}

	var tuts, labs []tagged
	for _, c := range courses {
		for i, t := range c.Tutorials() {
			if !t.IsZero() {
				tuts = append(tuts, tagged{t, c.ID.Code(), c.ID.ClassNumber, Tutorial, i})
			}
		}
		for i, l := range c.Labs() {
			if !l.IsZero() {
				labs = append(labs, tagged{l, c.ID.Code(), c.ID.ClassNumber, Lab, i})
			}
		}
	}

	var records []ConflictRecord
	for i := 0; i < len(tuts); i++ {
		for j := i + 1; j < len(tuts); j++ {
			if tuts[i].element.Overlaps(tuts[j].element) {
				day, _ := overlappingDay(tuts[i].element, tuts[j].element)
				records = append(records, ConflictRecord{
					Kind:            SequenceTutorialOverlap,
					Courses:         []string{tuts[i].code, tuts[j].code},
					ClassNumbers:    []string{tuts[i].classNbr, tuts[j].classNbr},
					Component1:      Tutorial,
					Component1Index: tuts[i].index,
					Component2:      Tutorial,
					Component2Index: tuts[j].index,
					Day:             day,
					Time1:           formatTime(tuts[i].element.Start, tuts[i].element.End),
					Time2:           formatTime(tuts[j].element.Start, tuts[j].element.End),
				})
			}
		}
	}
	for i := 0; i < len(labs); i++ {
		for j := i + 1; j < len(labs); j++ {
			if labs[i].element.Overlaps(labs[j].element) {
				day, _ := overlappingDay(labs[i].element, labs[j].element)
				records = append(records, ConflictRecord{
					Kind:            SequenceLabOverlap,
					Courses:         []string{labs[i].code, labs[j].code},
					ClassNumbers:    []string{labs[i].classNbr, labs[j].classNbr},
					Component1:      Lab,
					Component1Index: labs[i].index,
					Component2:      Lab,
					Component2Index: labs[j].index,
					Day:             day,
					Time1:           formatTime(labs[i].element.Start, labs[i].element.End),
					Time2:           formatTime(labs[j].element.Start, labs[j].element.End),
					Building:        labs[i].element.Bldg,
					Room:            labs[i].element.Room,
				})
			}
		}
	}
	for _, t := range tuts {
		for _, l := range labs {
			if t.element.Overlaps(l.element) {
				day, _ := overlappingDay(t.element, l.element)
				records = append(records, ConflictRecord{
					Kind:            SequenceTutorialLabOverlap,
					Courses:         []string{t.code, l.code},
					ClassNumbers:    []string{t.classNbr, l.classNbr},
					Component1:      Tutorial,
					Component1Index: t.index,
					Component2:      Lab,
					Component2Index: l.index,
					Day:             day,
					Time1:           formatTime(t.element.Start, t.element.End),
					Time2:           formatTime(l.element.Start, l.element.End),
					Building:        l.element.Bldg,
					Room:            l.element.Room,
				})
			}
		}
	}
	return records
}

// allRoomSlots collects every lab meeting instance keyed by (building,
// room), independent of booking order — unlike CreateRoomTimetables, it
// never rejects a clashing slot, since enumeration needs to see every
// clashing pair, not just the first slot booked into each time window.
func allRoomSlots(schedule []Course, assignments []RoomAssignment) map[roomKey][]RoomSlot {
	byRoom := make(map[roomKey][]RoomSlot)
	for _, course := range schedule {
		if course.LabCount == 0 {
			continue
		}
		building, room, ok := findRoomForCourse(course.ID, assignments)
		if !ok {
			continue
		}
		key := roomKey{building, room}
		for labIndex, lab := range course.Labs() {
			if lab.IsZero() {
				continue
			}
			for _, d := range lab.Day {
				byRoom[key] = append(byRoom[key], RoomSlot{
					Day: d, Start: lab.Start, End: lab.End,
					Subject: course.ID.Subject, Catalog: course.ID.Catalog,
					ClassNbr: course.ID.ClassNumber, LabIndex: labIndex,
				})
			}
		}
	}
	return byRoom
}

// enumerateRoomConflicts reports every pair of room slots that share a day
// with an overlapping interval, one record per pair, across every
// (building, room) pair named in assignments.
func enumerateRoomConflicts(schedule []Course, assignments []RoomAssignment) []ConflictRecord {
	byRoom := allRoomSlots(schedule, assignments)

	var records []ConflictRecord
	for key, slots := range byRoom {
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				a, b := slots[i], slots[j]
				if a.Day != b.Day || !(a.Start < b.End && b.Start < a.End) {
					continue
				}
				records = append(records, ConflictRecord{
					Kind:            RoomBookingConflict,
					Courses:         []string{a.Subject + a.Catalog, b.Subject + b.Catalog},
					ClassNumbers:    []string{a.ClassNbr, b.ClassNbr},
					Component1:      Lab,
					Component1Index: a.LabIndex,
					Component2:      Lab,
					Component2Index: b.LabIndex,
					Day:             a.Day,
					Time1:           formatTime(a.Start, a.End),
					Time2:           formatTime(b.Start, b.End),
					Building:        key.building,
					Room:            key.room,
				})
			}
		}
	}
	return records
}

// EnumerateConflicts produces the full Output E conflict stream for a
// final schedule: every lecture self-clash, every plan-term infeasibility
// (attributed where possible to specific overlaps), and every room
// double-booking.
func EnumerateConflicts(schedule []Course, terms []AcademicPlanTerm, assignments []RoomAssignment) []ConflictRecord {
	var records []ConflictRecord

	for _, course := range schedule {
		records = append(records, enumerateLectureClashes(course)...)
	}

	idx := buildCourseIndex(schedule)
	for _, term := range terms {
		records = append(records, enumerateSequenceClashes(idx, term)...)
	}

	records = append(records, enumerateRoomConflicts(schedule, assignments)...)

	return records
}
