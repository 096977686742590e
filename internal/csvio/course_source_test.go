package csvio

import (
	"strings"
	"testing"
)

func TestLoadCoursesFiltersAndParses(t *testing.T) {
	csvData := `subject,catalog,class_number,day_of_week,start_time,end_time,lab_count,biweekly_lab_freq,lab_duration,tut_count,weekly_tut_freq,tut_duration
COEN,212,1001,MoWe,08:45,09:35,1,1,50,1,1,50
SOEN,287,3003,TuTh,10:00,10:50,0,0,0,0,0,0
ELEC,490,4004,Fr,13:15,15:55,0,0,0,0,0,0
`
	src := CourseSource{Reader: strings.NewReader(csvData)}
	courses, rejected, err := src.LoadCourses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// SOEN is filtered out by the department allowlist, not rejected.
	if len(courses) != 2 {
		t.Fatalf("expected 2 included courses (COEN 212, ELEC 490), got %d: %+v", len(courses), courses)
	}
	if len(rejected) != 0 {
		t.Fatalf("expected no rejected rows, got %+v", rejected)
	}

	var sawCoen bool
	for _, c := range courses {
		if c.ID.Subject == "COEN" && c.ID.Catalog == "212" {
			sawCoen = true
			if c.TutCount != 1 || c.LabCount != 1 {
				t.Errorf("COEN 212 parsed with wrong counts: %+v", c)
			}
		}
	}
	if !sawCoen {
		t.Fatal("expected COEN 212 to be present in the parsed courses")
	}
}

func TestLoadCoursesRejectsBadTimes(t *testing.T) {
	csvData := `subject,catalog,class_number,day_of_week,start_time,end_time,lab_count,biweekly_lab_freq,lab_duration,tut_count,weekly_tut_freq,tut_duration
COEN,212,1001,MoWe,notatime,09:35,0,0,0,0,0,0
`
	src := CourseSource{Reader: strings.NewReader(csvData)}
	courses, rejected, err := src.LoadCourses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected 0 courses, got %d", len(courses))
	}
	if len(rejected) != 1 {
		t.Fatalf("expected 1 rejected row, got %d", len(rejected))
	}
}
