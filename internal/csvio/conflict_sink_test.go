package csvio

import (
	"strings"
	"testing"

	scheduler "github.com/deptsched/coursesched"
)

func TestWriteConflictsEmitsOneRowPerRecord(t *testing.T) {
	records := []scheduler.ConflictRecord{
		{
			Kind:         scheduler.LectureTutorialConflict,
			Courses:      []string{"COEN212"},
			ClassNumbers: []string{"1001"},
			Component1:   scheduler.Lecture,
			Component2:   scheduler.Tutorial,
			Day:          1,
			Time1:        "08:45-09:35",
			Time2:        "09:00-09:50",
		},
	}

	var buf strings.Builder
	sink := ConflictSink{Writer: &buf}
	if err := sink.WriteConflicts(records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 record row, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "Lecture-Tutorial") {
		t.Errorf("expected the conflict kind in the row, got %q", lines[1])
	}
}

func TestWriteConflictsEmptyStillWritesHeader(t *testing.T) {
	var buf strings.Builder
	sink := ConflictSink{Writer: &buf}
	if err := sink.WriteConflicts(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the header row for zero records, got %d lines", len(lines))
	}
}
