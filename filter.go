package scheduler

import "strings"

// excludedElecCourses are ELEC catalogs the department has discontinued
// but that still linger in the source course table. The original
// course_filter.py drops them before scheduling ever begins (not merely
// at export time, which is what internal/csvio's denylist covers for
// whatever reaches the presentation layer).
var excludedElecCourses = map[string]struct{}{
	"430": {}, "434": {}, "436": {}, "438": {}, "443": {}, "446": {}, "498": {},
}

// ShouldIncludeCourse reports whether a course's (subject, catalog) pair
// belongs to the department allowlist: all COEN catalogs, ELEC catalogs
// other than the discontinued set, and ENGR 290 specifically. All other
// subjects (SOEN, ENCS, other ENGR catalogs, …), and the discontinued
// ELEC catalogs, are excluded before scheduling even begins (spec §6,
// Input A).
func ShouldIncludeCourse(subject, catalog string) bool {
	subject = strings.ToUpper(strings.TrimSpace(subject))
	catalog = strings.TrimSpace(catalog)

	switch subject {
	case "COEN":
		return true
	case "ELEC":
		_, excluded := excludedElecCourses[catalog]
		return !excluded
	case "ENGR":
		return catalog == "290"
	default:
		return false
	}
}
