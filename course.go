package scheduler

import "fmt"

// CourseID identifies a course section: its subject, catalog number, and
// class number. It is immutable identity — §3 invariant 4 requires it be
// unique within a schedule.
type CourseID struct {
	Subject     string
	Catalog     string
	ClassNumber string
}

// Code returns the subject+catalog code used by academic-plan terms (e.g.
// "COEN212"), without the class number.
func (id CourseID) Code() string {
	return id.Subject + id.Catalog
}

func (id CourseID) String() string {
	return fmt.Sprintf("%s (class %s)", id.Code(), id.ClassNumber)
}

// Course is one scheduled course section: a fixed lecture, plus the
// tutorial and lab sections the optimizer places. Tutorials and labs are
// replaced only via AssignNonLecture, never edited field-by-field, so the
// "lecture is immutable" invariant cannot be violated by a stray write
// elsewhere in the engine.
type Course struct {
	ID CourseID

	lecture   CourseElement
	tutorials []CourseElement
	labs      []CourseElement

	TutCount       int
	WeeklyTutFreq  int
	TutDuration    int
	LabCount       int
	BiweeklyLabFreq int
	LabDuration    int
}

// NewCourse constructs a Course with its fixed lecture and zero-valued
// tutorial/lab slots of the declared counts, ready for the placement engine
// to fill in.
func NewCourse(id CourseID, lecture CourseElement, tutCount, weeklyTutFreq, tutDuration,
	labCount, biweeklyLabFreq, labDuration int) Course {
	return Course{
		ID:              id,
		lecture:         lecture,
		tutorials:       make([]CourseElement, tutCount),
		labs:            make([]CourseElement, labCount),
		TutCount:        tutCount,
		WeeklyTutFreq:   weeklyTutFreq,
		TutDuration:     tutDuration,
		LabCount:        labCount,
		BiweeklyLabFreq: biweeklyLabFreq,
		LabDuration:     labDuration,
	}
}

// Lecture returns the course's fixed lecture meeting.
func (c Course) Lecture() CourseElement { return c.lecture }

// Tutorials returns the course's current tutorial sections, in order.
func (c Course) Tutorials() []CourseElement {
	out := make([]CourseElement, len(c.tutorials))
	copy(out, c.tutorials)
	return out
}

// Labs returns the course's current lab sections, in order.
func (c Course) Labs() []CourseElement {
	out := make([]CourseElement, len(c.labs))
	copy(out, c.labs)
	return out
}

// AssignNonLecture atomically replaces the tutorial and lab sequences. It is
// the only mutating operation on Course; lecture is never touched here or
// anywhere else.
func (c *Course) AssignNonLecture(tutorials, labs []CourseElement) {
	c.tutorials = append([]CourseElement(nil), tutorials...)
	c.labs = append([]CourseElement(nil), labs...)
}

// Clone returns a deep copy of c suitable for independent mutation (used by
// schedule cloning and the placement engine's speculative attempts).
func (c Course) Clone() Course {
	cp := c
	cp.tutorials = append([]CourseElement(nil), c.tutorials...)
	cp.labs = append([]CourseElement(nil), c.labs...)
	return cp
}

// internalOverlap reports whether any pair of this course's own elements
// (lecture, tutorials, labs) clash with each other.
func (c Course) internalOverlap() bool {
	elements := make([]CourseElement, 0, 1+len(c.tutorials)+len(c.labs))
	elements = append(elements, c.lecture)
	for _, t := range c.tutorials {
		if !t.IsZero() {
			elements = append(elements, t)
		}
	}
	for _, l := range c.labs {
		if !l.IsZero() {
			elements = append(elements, l)
		}
	}
	for i := 0; i < len(elements); i++ {
		for j := i + 1; j < len(elements); j++ {
			if elements[i].Overlaps(elements[j]) {
				return true
			}
		}
	}
	return false
}
