// Package csvio implements the Source and Presentation Adapter boundary
// (spec §1, §6) as CSV-shaped tables, using the standard library's
// encoding/csv — see DESIGN.md for why no pack dependency replaces it.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	scheduler "github.com/deptsched/coursesched"
)

// CourseSource reads Input A (the lecture-section course list) from a CSV
// reader, filtering to the department allowlist and skipping unparseable
// rows rather than aborting the run (spec §7).
type CourseSource struct {
	Reader io.Reader
}

var courseColumns = []string{
	"subject", "catalog", "class_number", "day_of_week", "start_time", "end_time",
	"lab_count", "biweekly_lab_freq", "lab_duration",
	"tut_count", "weekly_tut_freq", "tut_duration",
}

func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, true
		}
	}
	return 0, false
}

func atoiField(row []string, idx map[string]int, name string) (int, error) {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return 0, fmt.Errorf("missing field %q", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(row[i]))
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}
	return v, nil
}

// LoadCourses implements scheduler.CourseSource.
func (s CourseSource) LoadCourses() ([]scheduler.Course, []scheduler.RowError, error) {
	r := csv.NewReader(s.Reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading course header: %w", err)
	}

	idx := make(map[string]int, len(courseColumns))
	for _, col := range courseColumns {
		if i, ok := columnIndex(header, col); ok {
			idx[col] = i
		}
	}

	var courses []scheduler.Course
	var rejected []scheduler.RowError
	rowNum := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading course row %d: %w", rowNum+1, err)
		}
		rowNum++

		subject, catalog, classNumber, parseErr := parseCourseIdentity(row, idx)
		if parseErr != nil {
			rejected = append(rejected, scheduler.RowError{Source: "courses", Row: rowNum, Reason: parseErr.Error()})
			continue
		}

		if !scheduler.ShouldIncludeCourse(subject, catalog) {
			continue
		}

		course, parseErr := parseCourseRow(row, idx, subject, catalog, classNumber)
		if parseErr != nil {
			rejected = append(rejected, scheduler.RowError{Source: "courses", Row: rowNum, Reason: parseErr.Error()})
			continue
		}
		courses = append(courses, course)
	}

	return courses, rejected, nil
}

func parseCourseIdentity(row []string, idx map[string]int) (subject, catalog, classNumber string, err error) {
	si, ok := idx["subject"]
	if !ok || si >= len(row) {
		return "", "", "", fmt.Errorf("missing subject field")
	}
	ci, ok := idx["catalog"]
	if !ok || ci >= len(row) {
		return "", "", "", fmt.Errorf("missing catalog field")
	}
	cn, ok := idx["class_number"]
	if !ok || cn >= len(row) {
		return "", "", "", fmt.Errorf("missing class_number field")
	}
	return strings.TrimSpace(row[si]), strings.TrimSpace(row[ci]), strings.TrimSpace(row[cn]), nil
}

func parseCourseRow(row []string, idx map[string]int, subject, catalog, classNumber string) (scheduler.Course, error) {
	dayIdx, ok := idx["day_of_week"]
	if !ok || dayIdx >= len(row) {
		return scheduler.Course{}, fmt.Errorf("missing day_of_week field")
	}
	days, err := scheduler.ParseWeekdayPattern(strings.TrimSpace(row[dayIdx]))
	if err != nil {
		return scheduler.Course{}, err
	}

	startIdx, ok := idx["start_time"]
	if !ok || startIdx >= len(row) {
		return scheduler.Course{}, fmt.Errorf("missing start_time field")
	}
	endIdx, ok := idx["end_time"]
	if !ok || endIdx >= len(row) {
		return scheduler.Course{}, fmt.Errorf("missing end_time field")
	}
	start, err := parseClockTime(row[startIdx])
	if err != nil {
		return scheduler.Course{}, err
	}
	end, err := parseClockTime(row[endIdx])
	if err != nil {
		return scheduler.Course{}, err
	}
	if end <= start {
		return scheduler.Course{}, fmt.Errorf("end_time %q not after start_time %q", row[endIdx], row[startIdx])
	}

	labCount, err := atoiField(row, idx, "lab_count")
	if err != nil {
		return scheduler.Course{}, err
	}
	biweeklyLabFreq, err := atoiField(row, idx, "biweekly_lab_freq")
	if err != nil {
		return scheduler.Course{}, err
	}
	labDuration, err := atoiField(row, idx, "lab_duration")
	if err != nil {
		return scheduler.Course{}, err
	}
	tutCount, err := atoiField(row, idx, "tut_count")
	if err != nil {
		return scheduler.Course{}, err
	}
	weeklyTutFreq, err := atoiField(row, idx, "weekly_tut_freq")
	if err != nil {
		return scheduler.Course{}, err
	}
	tutDuration, err := atoiField(row, idx, "tut_duration")
	if err != nil {
		return scheduler.Course{}, err
	}

	id := scheduler.CourseID{Subject: subject, Catalog: catalog, ClassNumber: classNumber}
	lecture := scheduler.CourseElement{Day: days, Start: start, End: end}
	return scheduler.NewCourse(id, lecture, tutCount, weeklyTutFreq, tutDuration, labCount, biweeklyLabFreq, labDuration), nil
}
