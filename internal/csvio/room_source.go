package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	scheduler "github.com/deptsched/coursesched"
)

// RoomSource reads Input B (the room allowlist) from a CSV reader,
// excluding sentinel rooms ("007", "AITS") at load time (spec §6).
type RoomSource struct {
	Reader io.Reader
}

// LoadRooms implements scheduler.RoomSource. The header's leading
// building/room/subject columns are fixed; every remaining column
// ("course1", "course2", …) names one catalog the room may host.
func (s RoomSource) LoadRooms() ([]scheduler.RoomAssignment, []scheduler.RowError, error) {
	r := csv.NewReader(s.Reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading room header: %w", err)
	}

	buildingIdx, _ := columnIndex(header, "building")
	roomIdx, _ := columnIndex(header, "room")
	subjectIdx, _ := columnIndex(header, "subject")

	var courseCols []int
	for i, h := range header {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(h)), "course") {
			courseCols = append(courseCols, i)
		}
	}

	var assignments []scheduler.RoomAssignment
	var rejected []scheduler.RowError
	rowNum := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading room row %d: %w", rowNum+1, err)
		}
		rowNum++

		if buildingIdx >= len(row) || roomIdx >= len(row) || subjectIdx >= len(row) {
			rejected = append(rejected, scheduler.RowError{Source: "rooms", Row: rowNum, Reason: "missing building/room/subject field"})
			continue
		}

		building := strings.TrimSpace(row[buildingIdx])
		room := strings.TrimSpace(row[roomIdx])
		subject := strings.TrimSpace(row[subjectIdx])

		if scheduler.Excluded(room) {
			continue
		}

		catalogs := make(map[string]struct{})
		for _, ci := range courseCols {
			if ci >= len(row) {
				continue
			}
			catalog := strings.TrimSpace(row[ci])
			if catalog != "" {
				catalogs[catalog] = struct{}{}
			}
		}
		if len(catalogs) == 0 {
			continue
		}

		assignments = append(assignments, scheduler.RoomAssignment{
			Building:        building,
			Room:            room,
			Subject:         subject,
			AllowedCatalogs: catalogs,
		})
	}

	return assignments, rejected, nil
}
