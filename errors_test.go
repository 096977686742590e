package scheduler

import "testing"

func TestRowErrorAndStructuralErrorFormatting(t *testing.T) {
	re := RowError{Source: "courses", Row: 3, Reason: "bad time"}
	if re.Error() == "" {
		t.Fatal("RowError.Error() should not be empty")
	}
	se := StructuralError{Op: "UniformCrossover", Detail: "index mismatch"}
	if se.Error() == "" {
		t.Fatal("StructuralError.Error() should not be empty")
	}
}

func TestFallbackCountAdd(t *testing.T) {
	var fc FallbackCount
	fc.Add(FallbackCount{Tutorials: 1, Labs: 2, Courses: 3})
	fc.Add(FallbackCount{Tutorials: 1, Labs: 1, Courses: 1})
	if fc != (FallbackCount{Tutorials: 2, Labs: 3, Courses: 4}) {
		t.Fatalf("unexpected accumulated FallbackCount: %+v", fc)
	}
}

func TestCountFallbacksReportsInternalOverlap(t *testing.T) {
	id := CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"}
	lecture := CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}

	clean := NewCourse(id, lecture, 1, 1, 50, 0, 0, 0)
	clean.AssignNonLecture([]CourseElement{{Day: []Day{3, 10}, Start: 700, End: 750}}, nil)

	clashing := NewCourse(id, lecture, 1, 1, 50, 0, 0, 0)
	clashing.AssignNonLecture([]CourseElement{lecture}, nil)

	fc := CountFallbacks([]Course{clean, clashing}, nil)
	if fc.Courses != 1 {
		t.Fatalf("expected exactly 1 fallback course, got %d", fc.Courses)
	}
	if fc.Tutorials != 1 {
		t.Fatalf("expected the clashing course's tutorial to count as a fallback, got %d", fc.Tutorials)
	}
}

func TestCountFallbacksDetectsRoomOnlyLabFallback(t *testing.T) {
	lecture1 := CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}
	lecture2 := CourseElement{Day: []Day{2, 9}, Start: 805, End: 855}
	room := CourseElement{Day: []Day{4, 11}, Start: 900, End: 950}

	first := NewCourse(CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"}, lecture1, 0, 0, 0, 1, 1, 50)
	first.AssignNonLecture(nil, []CourseElement{room})

	second := NewCourse(CourseID{Subject: "COEN", Catalog: "311", ClassNumber: "1002"}, lecture2, 0, 0, 0, 1, 1, 50)
	second.AssignNonLecture(nil, []CourseElement{room})

	assignments := []RoomAssignment{
		{Building: "H", Room: "937", Subject: "COEN", AllowedCatalogs: map[string]struct{}{"212": {}, "311": {}}},
	}

	fc := CountFallbacks([]Course{first, second}, assignments)
	if fc.Labs != 1 {
		t.Fatalf("expected exactly 1 lab fallback from the room double-booking, got %d", fc.Labs)
	}
}
