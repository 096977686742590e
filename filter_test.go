package scheduler

import "testing"

func TestShouldIncludeCourse(t *testing.T) {
	cases := []struct {
		subject, catalog string
		want             bool
	}{
		{"COEN", "212", true},
		{"coen", "212", true},
		{"ELEC", "490", true},
		{"elec", "430", false},
		{"ELEC", "434", false},
		{"ELEC", "436", false},
		{"ELEC", "438", false},
		{"ELEC", "443", false},
		{"ELEC", "446", false},
		{"ELEC", "498", false},
		{"ENGR", "290", true},
		{"ENGR", "233", false},
		{"SOEN", "287", false},
		{"ENCS", "282", false},
	}
	for _, c := range cases {
		if got := ShouldIncludeCourse(c.subject, c.catalog); got != c.want {
			t.Errorf("ShouldIncludeCourse(%q, %q) = %v, want %v", c.subject, c.catalog, got, c.want)
		}
	}
}
