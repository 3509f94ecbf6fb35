package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every time value this package handles.
const MinutesPerDay = 24 * 60

// ToMinutes parses an "HH:MM" wall-clock string into minutes since midnight.
func ToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Input: s, Reason: "expected HH:MM"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "hour is not a number"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "minute is not a number"}
	}
	if hour < 0 || hour > 23 {
		return 0, &ParseError{Input: s, Reason: "hour out of range"}
	}
	if minute < 0 || minute > 59 {
		return 0, &ParseError{Input: s, Reason: "minute out of range"}
	}
	return hour*60 + minute, nil
}

// ToTimeString renders minutes since midnight as zero-padded "HH:MM".
func ToTimeString(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", &RangeError{Minutes: minutes}
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// Duration returns end minus start in minutes. The result is negative when
// end precedes start; callers must check.
func Duration(start, end string) (int, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
