package common

import (
	"io"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by every date field (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// NowFunc is the clock used for "today" stamps, replaceable in tests.
var NowFunc = time.Now

// Today formats the current local date with DateLayout.
func Today() string {
	return NowFunc().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar string as a UTC midnight instant.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func StringReader(s string) io.Reader {
	return strings.NewReader(s)
}
