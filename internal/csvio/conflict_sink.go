package csvio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	scheduler "github.com/deptsched/coursesched"
)

// ConflictSink writes Output E: one row per conflict record (spec §4.8).
type ConflictSink struct {
	Writer io.Writer
}

var conflictHeader = []string{
	"conflict_type", "courses", "class_numbers",
	"component1", "component1_index", "component2", "component2_index",
	"day", "time1", "time2", "building", "room",
}

// WriteConflicts implements scheduler.ConflictSink.
func (s ConflictSink) WriteConflicts(records []scheduler.ConflictRecord) error {
	w := csv.NewWriter(s.Writer)
	defer w.Flush()

	if err := w.Write(conflictHeader); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			string(rec.Kind),
			strings.Join(rec.Courses, "/"),
			strings.Join(rec.ClassNumbers, "/"),
			rec.Component1.String(),
			strconv.Itoa(rec.Component1Index),
			rec.Component2.String(),
			strconv.Itoa(rec.Component2Index),
			dayLabel(rec.Day),
			rec.Time1,
			rec.Time2,
			rec.Building,
			rec.Room,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func dayLabel(d scheduler.Day) string {
	if d == 0 {
		return ""
	}
	return strconv.Itoa(int(d))
}
