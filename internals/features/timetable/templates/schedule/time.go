// file: internals/features/timetable/templates/schedule/time.go
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// LocalTime is a minute-resolution clock time (minutes since midnight, 24h).
type LocalTime int

// ParseClock parses "HH:MM" into a LocalTime.
func ParseClock(s string) (LocalTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q (want HH:MM)", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return LocalTime(h*60 + m), nil
}

// MustClock is ParseClock for trusted literals (panics on bad input).
func MustClock(s string) LocalTime {
	t, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t LocalTime) Hour() int   { return int(t) / 60 }
func (t LocalTime) Minute() int { return int(t) % 60 }

// Add returns t shifted by the given number of minutes.
func (t LocalTime) Add(minutes int) LocalTime { return t + LocalTime(minutes) }

func (t LocalTime) Before(u LocalTime) bool { return t < u }
func (t LocalTime) After(u LocalTime) bool  { return t > u }

// String renders "HH:MM".
func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// RangeLabel renders the display label "HH:MM - HH:MM".
func RangeLabel(start, end LocalTime) string {
	return start.String() + " - " + end.String()
}
