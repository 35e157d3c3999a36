package utils

import (
	"fmt"
	"time"
)

// DayFormat is the canonical calendar-day layout.
const DayFormat = "2006-01-02"

// frenchDays is indexed by time.Weekday (Sunday = 0).
var frenchDays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [13]string{
	"", "janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// CanonicalDay normalizes an instant to its UTC calendar day. Every
// day-level comparison in the scheduler (template lookup, blocked dates,
// taken slots) goes through this single definition, so a timestamp stored
// with any time-of-day component still lands on the same day string.
func CanonicalDay(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// ParseDay parses a canonical day string back into a UTC midnight instant.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, day, time.UTC)
}

// FrenchWeekday returns the French weekday name used as the key of the
// weekly schedule template.
func FrenchWeekday(t time.Time) string {
	return frenchDays[int(t.UTC().Weekday())]
}

// IsFrenchWeekday reports whether name is one of the seven template keys.
func IsFrenchWeekday(name string) bool {
	for _, d := range frenchDays {
		if d == name {
			return true
		}
	}
	return false
}

// FrenchWeekdays returns the seven template keys in calendar order,
// starting from lundi.
func FrenchWeekdays() []string {
	return []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"}
}

// FormatDateFR renders a date the way the site shows it in emails,
// e.g. "lundi 2 mars 2026".
func FormatDateFR(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%s %d %s %d", frenchDays[int(u.Weekday())], u.Day(), frenchMonths[int(u.Month())], u.Year())
}
