package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	scheduler "github.com/deptsched/coursesched"
)

// PlanSource reads Input C (the academic-plan terms) from a CSV reader,
// keeping only rows whose season_code matches the configured target
// season (spec §6).
type PlanSource struct {
	Reader       io.Reader
	TargetSeason int
}

var planColumns = []string{
	"plan_id", "plan_name", "program", "term_id",
	"year_number", "season", "season_code", "courses",
}

// LoadPlanTerms implements scheduler.PlanSource.
func (s PlanSource) LoadPlanTerms() ([]scheduler.AcademicPlanTerm, []scheduler.RowError, error) {
	r := csv.NewReader(s.Reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading plan header: %w", err)
	}

	idx := make(map[string]int, len(planColumns))
	for _, col := range planColumns {
		if i, ok := columnIndex(header, col); ok {
			idx[col] = i
		}
	}

	var terms []scheduler.AcademicPlanTerm
	var rejected []scheduler.RowError
	rowNum := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading plan row %d: %w", rowNum+1, err)
		}
		rowNum++

		seasonCodeIdx, ok := idx["season_code"]
		if !ok || seasonCodeIdx >= len(row) {
			rejected = append(rejected, scheduler.RowError{Source: "plan_terms", Row: rowNum, Reason: "missing season_code field"})
			continue
		}
		seasonCode, err := strconv.Atoi(strings.TrimSpace(row[seasonCodeIdx]))
		if err != nil {
			rejected = append(rejected, scheduler.RowError{Source: "plan_terms", Row: rowNum, Reason: "invalid season_code"})
			continue
		}
		if seasonCode != s.TargetSeason {
			continue
		}

		coursesIdx, ok := idx["courses"]
		if !ok || coursesIdx >= len(row) {
			rejected = append(rejected, scheduler.RowError{Source: "plan_terms", Row: rowNum, Reason: "missing courses field"})
			continue
		}
		var codes []string
		for _, code := range strings.Split(row[coursesIdx], ",") {
			code = strings.TrimSpace(code)
			if code != "" {
				codes = append(codes, code)
			}
		}
		if len(codes) == 0 {
			rejected = append(rejected, scheduler.RowError{Source: "plan_terms", Row: rowNum, Reason: "empty courses list"})
			continue
		}

		term := scheduler.AcademicPlanTerm{Courses: codes}
		if i, ok := idx["plan_id"]; ok && i < len(row) {
			term.PlanID = strings.TrimSpace(row[i])
		}
		if i, ok := idx["plan_name"]; ok && i < len(row) {
			term.PlanName = strings.TrimSpace(row[i])
		}
		if i, ok := idx["program"]; ok && i < len(row) {
			term.Program = strings.TrimSpace(row[i])
		}
		if i, ok := idx["term_id"]; ok && i < len(row) {
			term.TermID = strings.TrimSpace(row[i])
		}
		terms = append(terms, term)
	}

	return terms, rejected, nil
}
