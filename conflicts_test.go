package scheduler

import "testing"

func TestEnumerateLectureClashes(t *testing.T) {
	id := CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"}
	lecture := CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}
	course := NewCourse(id, lecture, 1, 1, 50, 1, 1, 50)
	course.AssignNonLecture(
		[]CourseElement{{Day: []Day{1, 8}, Start: 525, End: 575}},
		[]CourseElement{{Day: []Day{3}, Start: 700, End: 750}},
	)

	records := enumerateLectureClashes(course)
	if len(records) != 1 {
		t.Fatalf("expected 1 lecture-tutorial clash record, got %d: %+v", len(records), records)
	}
	if records[0].Kind != LectureTutorialConflict {
		t.Fatalf("expected %q, got %q", LectureTutorialConflict, records[0].Kind)
	}
}

func TestEnumerateSequenceClashesMissingCourse(t *testing.T) {
	a := courseWithSections("COEN212", []int{640}, nil)
	idx := buildCourseIndex([]Course{a})
	term := AcademicPlanTerm{Courses: []string{"COEN212", "COEN999"}}

	records := enumerateSequenceClashes(idx, term)
	if len(records) != 1 || records[0].Kind != SequenceMissingCourse {
		t.Fatalf("expected a single SequenceMissingCourse record, got %+v", records)
	}
}

func TestEnumerateSequenceClashesPinpointsOverlap(t *testing.T) {
	a := courseWithSections("COEN212", []int{640}, nil)
	b := courseWithSections("COEN311", []int{640}, nil)
	idx := buildCourseIndex([]Course{a, b})
	term := AcademicPlanTerm{Courses: []string{"COEN212", "COEN311"}}

	records := enumerateSequenceClashes(idx, term)
	if len(records) == 0 {
		t.Fatal("expected at least one attributed overlap record")
	}
	for _, r := range records {
		if r.Kind != SequenceTutorialOverlap {
			t.Errorf("expected SequenceTutorialOverlap, got %q", r.Kind)
		}
	}
}

func TestEnumerateSequenceClashesFeasibleTermYieldsNothing(t *testing.T) {
	a := courseWithSections("COEN212", []int{640, 705}, nil)
	b := courseWithSections("COEN311", []int{640, 885}, nil)
	idx := buildCourseIndex([]Course{a, b})
	term := AcademicPlanTerm{Courses: []string{"COEN212", "COEN311"}}

	if records := enumerateSequenceClashes(idx, term); len(records) != 0 {
		t.Fatalf("feasible term should yield no conflict records, got %+v", records)
	}
}

func TestEnumerateConflictsIncludesRoomConflicts(t *testing.T) {
	assignment := RoomAssignment{
		Building: "H", Room: "937", Subject: "COEN",
		AllowedCatalogs: map[string]struct{}{"212": {}},
	}
	id := CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"}
	lecture := CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}
	course := NewCourse(id, lecture, 0, 0, 0, 2, 1, 50)
	clash := CourseElement{Day: []Day{3}, Start: 600, End: 650}
	course.AssignNonLecture(nil, []CourseElement{clash, clash})

	records := EnumerateConflicts([]Course{course}, nil, []RoomAssignment{assignment})
	found := false
	for _, r := range records {
		if r.Kind == RoomBookingConflict {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a RoomBookingConflict record among %+v", records)
	}
}
