package model

import (
	"strconv"
	"strings"
	"time"
)

// DefaultMinGapMinutes is the threshold below which a truncated gap is
// discarded, when the preferences don't carry an explicit value.
const DefaultMinGapMinutes = 15

// WorkPreferences is the slice of the user's settings this service consumes.
// WorkingDays arrives in whatever shape the settings UI last wrote: a list of
// day names, a list of weekday indices, or a truthy-keyed object. All of that
// permissiveness is contained in NormalizeWorkingDays; the scheduling core
// only ever sees a WeekdaySet.
type WorkPreferences struct {
	WorkStart       string `json:"work_start"`
	WorkEnd         string `json:"work_end"`
	WorkingDays     any    `json:"working_days"`
	IncludeWeekends bool   `json:"include_weekends"`
	MinGapMinutes   int    `json:"min_gap_minutes"`
}

// MinGap returns the minimum gap duration, defaulting when unset or invalid.
func (p WorkPreferences) MinGap() int {
	if p.MinGapMinutes <= 0 {
		return DefaultMinGapMinutes
	}
	return p.MinGapMinutes
}

// Days returns the normalized working-day set.
func (p WorkPreferences) Days() WeekdaySet {
	return NormalizeWorkingDays(p.WorkingDays)
}

// IsWorkingDay reports whether the given date is a working day under these
// preferences. Weekends require IncludeWeekends on top of set membership.
func (p WorkPreferences) IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	if !p.Days()[wd] {
		return false
	}
	if (wd == time.Saturday || wd == time.Sunday) && !p.IncludeWeekends {
		return false
	}
	return true
}

// WeekdaySet is the canonical working-day representation.
type WeekdaySet map[time.Weekday]bool

var defaultWorkWeek = WeekdaySet{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
}

// NormalizeWorkingDays maps the loose shapes user settings arrive in to a
// WeekdaySet. It is total: malformed or unrecognized input falls back to the
// standard five-day work week rather than erroring, because partial settings
// data is expected, not exceptional.
func NormalizeWorkingDays(raw any) WeekdaySet {
	set := WeekdaySet{}

	switch v := raw.(type) {
	case nil:
	case WeekdaySet:
		for d, ok := range v {
			if ok {
				set[d] = true
			}
		}
	case []time.Weekday:
		for _, d := range v {
			set[d] = true
		}
	case []string:
		for _, s := range v {
			if d, ok := parseWeekday(s); ok {
				set[d] = true
			}
		}
	case []int:
		for _, n := range v {
			if d, ok := weekdayFromIndex(n); ok {
				set[d] = true
			}
		}
	case []any:
		for _, item := range v {
			switch e := item.(type) {
			case string:
				if d, ok := parseWeekday(e); ok {
					set[d] = true
				}
			case float64: // JSON numbers decode as float64
				if d, ok := weekdayFromIndex(int(e)); ok {
					set[d] = true
				}
			case int:
				if d, ok := weekdayFromIndex(e); ok {
					set[d] = true
				}
			}
		}
	case map[string]bool:
		for key, on := range v {
			if !on {
				continue
			}
			if d, ok := parseWeekday(key); ok {
				set[d] = true
			}
		}
	case map[string]any:
		for key, val := range v {
			if !truthy(val) {
				continue
			}
			if d, ok := parseWeekday(key); ok {
				set[d] = true
			}
		}
	}

	if len(set) == 0 {
		return copyWeekdaySet(defaultWorkWeek)
	}
	return set
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(key); err == nil {
		return weekdayFromIndex(n)
	}
	if len(key) > 3 {
		key = key[:3]
	}
	d, ok := weekdayNames[key]
	return d, ok
}

// weekdayFromIndex accepts the 0=Sunday..6=Saturday convention the settings
// clients use, matching time.Weekday directly.
func weekdayFromIndex(n int) (time.Weekday, bool) {
	if n < 0 || n > 6 {
		return 0, false
	}
	return time.Weekday(n), true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != "" && !strings.EqualFold(t, "false")
	default:
		return false
	}
}

func copyWeekdaySet(src WeekdaySet) WeekdaySet {
	dst := make(WeekdaySet, len(src))
	for d, ok := range src {
		dst[d] = ok
	}
	return dst
}
