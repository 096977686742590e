package csvio

import (
	"strings"
	"testing"
)

func TestLoadPlanTermsFiltersBySeasonAndParsesCourseList(t *testing.T) {
	csvData := `plan_id,plan_name,program,term_id,year_number,season,season_code,courses
P1,Computer Engineering,BEng,T1,2026,Fall,2,"COEN212, COEN311"
P2,Computer Engineering,BEng,T2,2026,Winter,4,"COEN212, COEN311"
P3,Computer Engineering,BEng,T3,2026,Fall,2,
`
	src := PlanSource{Reader: strings.NewReader(csvData), TargetSeason: 2}
	terms, rejected, err := src.LoadPlanTerms()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("expected 1 term matching the target season, got %d: %+v", len(terms), terms)
	}
	if len(rejected) != 1 {
		t.Fatalf("expected 1 rejected row (empty courses list), got %d: %+v", len(rejected), rejected)
	}

	term := terms[0]
	if term.PlanID != "P1" || len(term.Courses) != 2 {
		t.Fatalf("unexpected parsed term: %+v", term)
	}
	if term.Courses[0] != "COEN212" || term.Courses[1] != "COEN311" {
		t.Fatalf("unexpected course codes: %v", term.Courses)
	}
}
