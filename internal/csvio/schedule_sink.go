package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	scheduler "github.com/deptsched/coursesched"
)

// ScheduleSink writes Output D: one row per (course, component, meeting
// day set), with lectures re-emitted unchanged and tutorials/labs
// reflecting the optimizer's placement.
type ScheduleSink struct {
	Writer       io.Writer
	Year         int
	Season       int
	SessionCareer string // career attribute written on every row; "UGRD" if unset
}

var scheduleHeader = []string{
	"subject", "catalog", "class_number", "component", "term_code", "session",
	"building", "room", "start_time", "end_time", "start_date", "end_date",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"career",
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// WriteSchedule implements scheduler.ScheduleSink.
func (s ScheduleSink) WriteSchedule(courses []scheduler.Course) error {
	w := csv.NewWriter(s.Writer)
	defer w.Flush()

	if err := w.Write(scheduleHeader); err != nil {
		return err
	}

	termCode := scheduler.TermCode(s.Year, s.Season)
	session := sessionCode(s.Season)
	career := s.SessionCareer
	if career == "" {
		career = "UGRD"
	}
	lecStart, lecEnd := classDates(s.Year, s.Season)

	for _, course := range courses {
		if shouldExcludeCourse(course.ID.Subject, course.ID.Catalog) {
			continue
		}

		lecture := course.Lecture()
		if err := s.writeRow(w, course, "LEC", lecture, termCode, session, career, lecStart, lecEnd, "", ""); err != nil {
			return err
		}

		for _, tut := range course.Tutorials() {
			if tut.IsZero() {
				continue
			}
			if err := s.writeRow(w, course, "TUT", tut, termCode, session, career, lecStart, lecEnd, "", ""); err != nil {
				return err
			}
		}

		for _, lab := range course.Labs() {
			if lab.IsZero() {
				continue
			}
			start, end := labDates(s.Year, s.Season, lab.Day)
			if err := s.writeRow(w, course, "LAB", lab, termCode, session, career, start, end, lab.Bldg, lab.Room); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s ScheduleSink) writeRow(w *csv.Writer, course scheduler.Course, component string, e scheduler.CourseElement, termCode, session, career, startDate, endDate, building, room string) error {
	mon, tue, wed, thu, fri, sat, sun := dayColumns(e.Day)
	row := []string{
		course.ID.Subject, course.ID.Catalog, course.ID.ClassNumber, component, termCode, session,
		building, room, formatClock(e.Start), formatClock(e.End), startDate, endDate,
		strconv.FormatBool(mon), strconv.FormatBool(tue), strconv.FormatBool(wed),
		strconv.FormatBool(thu), strconv.FormatBool(fri), strconv.FormatBool(sat), strconv.FormatBool(sun),
		career,
	}
	return w.Write(row)
}
