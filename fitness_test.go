package scheduler

import "testing"

func TestVarietyScoreTrivialCases(t *testing.T) {
	if varietyScore(nil) != 1.0 {
		t.Fatal("empty bundle should score a perfect 1.0")
	}
	single := []CourseElement{{Day: []Day{1, 8}, Start: 600, End: 650}}
	if varietyScore(single) != 1.0 {
		t.Fatal("single-element bundle should score a perfect 1.0")
	}
}

func TestVarietyScoreRewardsDistinctDaysAndTimes(t *testing.T) {
	sameDayAndTime := []CourseElement{
		{Day: []Day{1, 8}, Start: 600, End: 650},
		{Day: []Day{1, 8}, Start: 600, End: 650},
	}
	distinct := []CourseElement{
		{Day: []Day{1, 8}, Start: 600, End: 650},
		{Day: []Day{2, 9}, Start: 700, End: 750},
	}
	if varietyScore(distinct) <= varietyScore(sameDayAndTime) {
		t.Fatalf("distinct sections should score higher than identical ones: distinct=%f same=%f",
			varietyScore(distinct), varietyScore(sameDayAndTime))
	}
}

func TestCountLectureClashes(t *testing.T) {
	id := CourseID{Subject: "COEN", Catalog: "212", ClassNumber: "1001"}
	lecture := CourseElement{Day: []Day{1, 8}, Start: 525, End: 575}
	course := NewCourse(id, lecture, 1, 1, 50, 1, 1, 50)
	course.AssignNonLecture(
		[]CourseElement{{Day: []Day{1, 8}, Start: 525, End: 575}}, // clashes
		[]CourseElement{{Day: []Day{3}, Start: 700, End: 750}},    // clean
	)
	if got := countLectureClashes(course); got != 1 {
		t.Fatalf("countLectureClashes = %d, want 1", got)
	}
}

func TestEvaluateConflictFreeScoreBound(t *testing.T) {
	a := courseWithSections("COEN212", []int{640, 705}, []int{885})
	b := courseWithSections("COEN311", []int{640, 885}, []int{1065})
	term := AcademicPlanTerm{Courses: []string{"COEN212", "COEN311"}}

	f := Evaluate([]Course{a, b}, []AcademicPlanTerm{term}, nil)
	if f.Total() == 0 && f.Score > 1.0 {
		t.Fatalf("fitness of a conflict-free schedule must be <= 1, got %f", f.Score)
	}
}

func TestEvaluateNegativeOnlyWithConflicts(t *testing.T) {
	a := courseWithSections("COEN212", []int{640}, nil)
	b := courseWithSections("COEN311", []int{640}, nil)
	term := AcademicPlanTerm{Courses: []string{"COEN212", "COEN311"}}

	f := Evaluate([]Course{a, b}, []AcademicPlanTerm{term}, nil)
	if f.Total() == 0 && f.Score < 0 {
		t.Fatal("score must not be negative when there are no conflicts")
	}
	if f.Total() > 0 && f.Score >= 0 {
		t.Fatalf("expected a negative score with %d conflicts, got %f", f.Total(), f.Score)
	}
}

func TestEvaluateEmptySchedule(t *testing.T) {
	f := Evaluate(nil, nil, nil)
	if f != (Fitness{}) {
		t.Fatalf("empty schedule should yield the zero Fitness, got %+v", f)
	}
}
