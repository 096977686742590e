package scheduler

import "testing"

func TestDayWeekdayAndInWeek2(t *testing.T) {
	cases := []struct {
		day     Day
		weekday int
		week2   bool
	}{
		{1, 1, false},
		{7, 7, false},
		{8, 1, true},
		{14, 7, true},
	}
	for _, c := range cases {
		if got := c.day.Weekday(); got != c.weekday {
			t.Errorf("Day(%d).Weekday() = %d, want %d", c.day, got, c.weekday)
		}
		if got := c.day.InWeek2(); got != c.week2 {
			t.Errorf("Day(%d).InWeek2() = %v, want %v", c.day, got, c.week2)
		}
	}
}

func TestComponentString(t *testing.T) {
	if Lecture.String() != "Lecture" || Tutorial.String() != "Tutorial" || Lab.String() != "Lab" {
		t.Fatal("unexpected Component.String() values")
	}
}

func TestCourseElementIsZero(t *testing.T) {
	if !(CourseElement{}).IsZero() {
		t.Fatal("zero-value CourseElement should be IsZero")
	}
	if (CourseElement{Day: []Day{1}, Start: 10, End: 20}).IsZero() {
		t.Fatal("populated CourseElement should not be IsZero")
	}
}

func TestCourseElementOverlaps(t *testing.T) {
	a := CourseElement{Day: []Day{1, 8}, Start: 600, End: 650}
	adjacent := CourseElement{Day: []Day{1, 8}, Start: 650, End: 700}
	clashing := CourseElement{Day: []Day{1, 8}, Start: 640, End: 700}
	differentDay := CourseElement{Day: []Day{2, 9}, Start: 600, End: 650}

	if a.Overlaps(adjacent) {
		t.Fatal("adjacent intervals must not overlap")
	}
	if !a.Overlaps(clashing) {
		t.Fatal("overlapping intervals on a shared day should overlap")
	}
	if a.Overlaps(differentDay) {
		t.Fatal("same interval on disjoint days must not overlap")
	}
	if a.Overlaps(CourseElement{}) {
		t.Fatal("an unset element never overlaps anything")
	}
}

func TestParseWeekdayPattern(t *testing.T) {
	days, err := ParseWeekdayPattern("MoWe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[Day]bool{1: true, 8: true, 3: true, 10: true}
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d: %v", len(days), days)
	}
	for _, d := range days {
		if !want[d] {
			t.Errorf("unexpected day %d in parsed pattern", d)
		}
	}

	if _, err := ParseWeekdayPattern(""); err == nil {
		t.Fatal("expected error for empty pattern")
	}
	if _, err := ParseWeekdayPattern("M"); err == nil {
		t.Fatal("expected error for odd-length pattern")
	}
	if _, err := ParseWeekdayPattern("Xx"); err == nil {
		t.Fatal("expected error for unknown day token")
	}
}
