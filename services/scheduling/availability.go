package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"geolumiere/models"
	"geolumiere/utils"
)

// AvailableSlots derives the live list of bookable tokens for one agency
// and date: weekly template entry, minus blocked days, minus the taken-set
// of non-cancelled appointments. Template order is preserved. An unknown
// agency is a NotFoundError, never an empty list, so callers can tell
// "zero availability" apart from "no such agency".
func (s *DefaultSchedulingService) AvailableSlots(ctx context.Context, agencyID string, date time.Time) ([]string, error) {
	agency, err := s.Agencies.GetByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "agence", ID: agencyID}
		}
		return nil, fmt.Errorf("failed to load agency %s: %w", agencyID, err)
	}
	return s.slotsForAgency(ctx, agency, date)
}

// slotsForAgency is the shared derivation used by both the public
// availability read and the booking recheck.
func (s *DefaultSchedulingService) slotsForAgency(ctx context.Context, agency *models.Agency, date time.Time) ([]string, error) {
	entry := dayEntryFor(agency, date)
	if entry == nil {
		return []string{}, nil
	}

	day := utils.CanonicalDay(date)
	blocked, err := s.BlockedDates.IsBlocked(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check blocked date %s: %w", day, err)
	}
	if blocked {
		return []string{}, nil
	}

	taken, err := s.Appointments.TakenSlots(ctx, agency.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load taken slots for %s on %s: %w", agency.ID, day, err)
	}
	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	available := make([]string, 0, len(entry.Slots))
	for _, slot := range entry.Slots {
		if !takenSet[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}
