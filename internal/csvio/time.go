package csvio

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClockTime parses a time-of-day string in any of the three formats
// Input A allows — "HH:MM", "HH:MM:SS", or "HH.MM.SS" — into minutes since
// midnight.
func parseClockTime(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	sep := ":"
	if strings.Contains(raw, ".") && !strings.Contains(raw, ":") {
		sep = "."
	}
	parts := strings.Split(raw, sep)
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", raw, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", raw, err)
	}
	return hours*60 + minutes, nil
}
