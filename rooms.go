package scheduler

import "strings"

// excludedRooms are sentinel room codes that never participate in
// scheduling, per spec §6 Input B.
var excludedRooms = map[string]struct{}{
	"007":  {},
	"AITS": {},
}

// RoomAssignment declares that a (building, room) pair may host lab
// sections of any of a subject's listed catalog numbers, per spec §3.
type RoomAssignment struct {
	Building        string
	Room            string
	Subject         string
	AllowedCatalogs map[string]struct{}
}

// MatchesCourse reports whether this room assignment may host course's lab.
func (a RoomAssignment) MatchesCourse(id CourseID) bool {
	if !strings.EqualFold(a.Subject, id.Subject) {
		return false
	}
	_, ok := a.AllowedCatalogs[id.Catalog]
	return ok
}

// Excluded reports whether room is a sentinel room excluded from
// scheduling entirely ("007", "AITS").
func Excluded(room string) bool {
	_, ok := excludedRooms[room]
	return ok
}

// RoomSlot is one booked meeting in a RoomTimetable.
type RoomSlot struct {
	Day        Day
	Start      int
	End        int
	Subject    string
	Catalog    string
	ClassNbr   string
	LabIndex   int
}

// RoomTimetable is the ordered collection of bookings for one
// (building, room) pair. Invariant: no two slots share a day with
// overlapping [start, end), per spec §3.
type RoomTimetable struct {
	Building string
	Room     string
	slots    []RoomSlot
}

// NewRoomTimetable returns an empty timetable for the given room.
func NewRoomTimetable(building, room string) *RoomTimetable {
	return &RoomTimetable{Building: building, Room: room}
}

// hasAnyConflict reports whether a candidate occupying every day in days,
// during [start, end), would clash with any existing slot.
func (rt *RoomTimetable) hasAnyConflict(days []Day, start, end int) bool {
	for _, d := range days {
		for _, slot := range rt.slots {
			if slot.Day == d && start < slot.End && slot.Start < end {
				return true
			}
		}
	}
	return false
}

// AddSlot books one day of a lab meeting. It returns false, without
// modifying the timetable, if the slot would conflict with an existing
// booking.
func (rt *RoomTimetable) AddSlot(day Day, start, end int, subject, catalog, classNbr string, labIndex int) bool {
	if rt.hasAnyConflict([]Day{day}, start, end) {
		return false
	}
	rt.slots = append(rt.slots, RoomSlot{
		Day: day, Start: start, End: end,
		Subject: subject, Catalog: catalog, ClassNbr: classNbr, LabIndex: labIndex,
	})
	return true
}

// Slots returns a copy of the timetable's bookings.
func (rt *RoomTimetable) Slots() []RoomSlot {
	out := make([]RoomSlot, len(rt.slots))
	copy(out, rt.slots)
	return out
}

// AssignRoomsToLabs stamps each course's lab elements with the building
// and room its course is assigned, per the matching RoomAssignment. It
// returns a new slice; courses with no matching assignment, or no labs,
// are copied through unchanged. Called once on the final schedule before
// export and conflict enumeration so Output D and Output E carry
// building/room information (the original's create_room_timetables does
// this inline as it books each slot).
func AssignRoomsToLabs(schedule []Course, assignments []RoomAssignment) []Course {
	out := make([]Course, len(schedule))
	for i, course := range schedule {
		building, room, ok := findRoomForCourse(course.ID, assignments)
		if !ok || course.LabCount == 0 {
			out[i] = course
			continue
		}
		labs := course.Labs()
		for j := range labs {
			if labs[j].IsZero() {
				continue
			}
			labs[j].Bldg = building
			labs[j].Room = room
		}
		course.AssignNonLecture(course.Tutorials(), labs)
		out[i] = course
	}
	return out
}

type roomKey struct{ building, room string }

// findRoomForCourse returns the (building, room) a course's lab sections
// are assigned to, if any room assignment matches.
func findRoomForCourse(id CourseID, assignments []RoomAssignment) (string, string, bool) {
	for _, a := range assignments {
		if a.MatchesCourse(id) {
			return a.Building, a.Room, true
		}
	}
	return "", "", false
}

// CreateRoomTimetables builds one RoomTimetable per (building, room) pair
// named in assignments, and books every lab meeting of every course in
// schedule that has a matching room assignment. It returns the timetables
// together with the number of booking conflicts encountered (a lab whose
// slot collided with one already booked is simply skipped, matching the
// original create_room_timetables' non-aborting conflict counter).
func CreateRoomTimetables(schedule []Course, assignments []RoomAssignment) (map[roomKey]*RoomTimetable, int) {
	timetables := make(map[roomKey]*RoomTimetable)
	for _, a := range assignments {
		key := roomKey{a.Building, a.Room}
		if _, ok := timetables[key]; !ok {
			timetables[key] = NewRoomTimetable(a.Building, a.Room)
		}
	}

	conflicts := 0
	for _, course := range schedule {
		if course.LabCount == 0 {
			continue
		}
		building, room, ok := findRoomForCourse(course.ID, assignments)
		if !ok {
			continue
		}
		timetable := timetables[roomKey{building, room}]

		for labIndex, lab := range course.Labs() {
			if lab.IsZero() {
				continue
			}
			for _, d := range lab.Day {
				if !timetable.AddSlot(d, lab.Start, lab.End, course.ID.Subject, course.ID.Catalog, course.ID.ClassNumber, labIndex) {
					conflicts++
				}
			}
		}
	}
	return timetables, conflicts
}

// CountRoomConflicts reports the total number of room double-bookings a
// schedule would produce against assignments, used by the fitness
// function's room-conflict term (spec §4.3).
func CountRoomConflicts(schedule []Course, assignments []RoomAssignment) int {
	_, conflicts := CreateRoomTimetables(schedule, assignments)
	return conflicts
}

// ValidateRoomTimetables reports whether every timetable in the set is
// internally conflict-free. Used by tests; neither the GA's hot path nor
// the CLI calls it.
func ValidateRoomTimetables(timetables map[roomKey]*RoomTimetable) bool {
	for _, rt := range timetables {
		slots := rt.Slots()
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				if slots[i].Day == slots[j].Day &&
					slots[i].Start < slots[j].End && slots[j].Start < slots[i].End {
					return false
				}
			}
		}
	}
	return true
}
