package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	blockedRepo "geolumiere/database/repository/blockeddate"
	"geolumiere/models"
	"geolumiere/utils"
)

// BlockDate closes a calendar day for every agency. Blocking an already
// blocked day is a ConflictError; the unique index keeps the insert atomic.
func (s *DefaultSchedulingService) BlockDate(ctx context.Context, date time.Time, reason string) (*models.BlockedDate, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Message: "La date est requise"}
	}

	blocked := &models.BlockedDate{
		Date:   date,
		Day:    utils.CanonicalDay(date),
		Reason: strings.TrimSpace(reason),
	}
	if err := s.BlockedDates.Insert(ctx, blocked); err != nil {
		if errors.Is(err, blockedRepo.ErrDuplicateDay) {
			return nil, &ConflictError{Message: "Cette date est déjà bloquée"}
		}
		return nil, fmt.Errorf("failed to block date %s: %w", blocked.Day, err)
	}
	return blocked, nil
}

func (s *DefaultSchedulingService) UnblockDate(ctx context.Context, id string) error {
	if err := s.BlockedDates.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Resource: "date bloquée", ID: id}
		}
		return fmt.Errorf("failed to unblock date %s: %w", id, err)
	}
	return nil
}

func (s *DefaultSchedulingService) ListBlockedDates(ctx context.Context) ([]models.BlockedDate, error) {
	dates, err := s.BlockedDates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked dates: %w", err)
	}
	return dates, nil
}
