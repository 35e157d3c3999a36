package scheduling

import (
	"fmt"
	"regexp"
	"time"

	"geolumiere/models"
	"geolumiere/utils"
)

var slotTokenRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// dayEntryFor maps a date to the agency's template entry for that weekday.
// A nil result means the agency offers no slots on that date: no entry,
// day closed, or empty slot list.
func dayEntryFor(agency *models.Agency, date time.Time) *models.ScheduleDay {
	name := utils.FrenchWeekday(date)
	for i := range agency.Schedule {
		if agency.Schedule[i].Day == name {
			if !agency.Schedule[i].IsOpen || len(agency.Schedule[i].Slots) == 0 {
				return nil
			}
			return &agency.Schedule[i]
		}
	}
	return nil
}

// ValidateScheduleTemplate checks an agency's weekly template on write:
// every day name must be one of the seven French weekday names, each may
// appear at most once, and slot tokens must be well-formed "HH:MM" strings
// with no duplicates within a day.
func ValidateScheduleTemplate(schedule []models.ScheduleDay) error {
	seen := make(map[string]bool, len(schedule))
	for _, day := range schedule {
		if !utils.IsFrenchWeekday(day.Day) {
			return &ValidationError{Field: "schedule", Message: fmt.Sprintf("jour inconnu: %q", day.Day)}
		}
		if seen[day.Day] {
			return &ValidationError{Field: "schedule", Message: fmt.Sprintf("jour en double: %q", day.Day)}
		}
		seen[day.Day] = true

		slotSeen := make(map[string]bool, len(day.Slots))
		for _, slot := range day.Slots {
			if !slotTokenRe.MatchString(slot) {
				return &ValidationError{Field: "schedule", Message: fmt.Sprintf("créneau invalide: %q", slot)}
			}
			if slotSeen[slot] {
				return &ValidationError{Field: "schedule", Message: fmt.Sprintf("créneau en double: %q", slot)}
			}
			slotSeen[slot] = true
		}
	}
	return nil
}
