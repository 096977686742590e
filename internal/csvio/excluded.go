package csvio

// excludedCourses is the fixed denylist of (subject, catalog) pairs the
// original exporter always drops at export time even though they passed
// the broader department allowlist — courses the department no longer
// offers but that linger in the source tables (spec §4.12).
var excludedCourses = map[[2]string]struct{}{
	{"ELEC", "430"}: {},
	{"ELEC", "434"}: {},
	{"ELEC", "436"}: {},
	{"ELEC", "438"}: {},
	{"ELEC", "446"}: {},
	{"ELEC", "443"}: {},
	{"ELEC", "498"}: {},
}

// shouldExcludeCourse reports whether (subject, catalog) is on the
// export-time denylist.
func shouldExcludeCourse(subject, catalog string) bool {
	_, ok := excludedCourses[[2]string{subject, catalog}]
	return ok
}
