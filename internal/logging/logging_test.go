package logging

import "testing"

func TestNewBuildsLoggerInBothModes(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		logger, err := New(verbose)
		if err != nil {
			t.Fatalf("New(%v) returned an error: %v", verbose, err)
		}
		if logger == nil {
			t.Fatalf("New(%v) returned a nil logger", verbose)
		}
		defer logger.Sync()
	}
}
