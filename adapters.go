package scheduler

// CourseSource loads Input A (the lecture-section course list) and
// reports any rejected rows rather than aborting, per spec §7. Rows whose
// subject/catalog fail ShouldIncludeCourse are filtered out before they
// ever reach the caller.
type CourseSource interface {
	LoadCourses() (courses []Course, rejected []RowError, err error)
}

// RoomSource loads Input B (the room allowlist), excluding sentinel rooms
// ("007", "AITS") at load time.
type RoomSource interface {
	LoadRooms() (assignments []RoomAssignment, rejected []RowError, err error)
}

// PlanSource loads Input C (the academic-plan-term list).
type PlanSource interface {
	LoadPlanTerms() (terms []AcademicPlanTerm, rejected []RowError, err error)
}

// ScheduleSink writes Output D: the final schedule's lecture, tutorial,
// and lab rows.
type ScheduleSink interface {
	WriteSchedule(courses []Course) error
}

// ConflictSink writes Output E: the flat conflict record stream produced
// by EnumerateConflicts.
type ConflictSink interface {
	WriteConflicts(records []ConflictRecord) error
}
