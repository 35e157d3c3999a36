package scheduling

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "geolumiere/database/repository/appointment"
	"geolumiere/models"
	"geolumiere/utils"
)

// UpdateStatus drives the admin lifecycle: pending → confirmed | cancelled,
// confirmed → cancelled. Only those two target statuses are settable; any
// other value is an InvalidStatusError, never clamped. The transition is a
// compare-and-set on the stored document, so a transition raced by another
// admin fails rather than re-applying (and re-sending its email).
func (s *DefaultSchedulingService) UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.Appointment, error) {
	var from []string
	switch status {
	case models.StatusConfirmed:
		from = []string{models.StatusPending}
	case models.StatusCancelled:
		from = []string{models.StatusPending, models.StatusConfirmed}
	default:
		return nil, &InvalidStatusError{Requested: status}
	}

	current, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "rendez-vous", ID: id}
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	if !contains(from, current.Status) {
		return nil, &InvalidStatusError{Current: current.Status, Requested: status}
	}

	updated, err := s.Appointments.UpdateStatus(ctx, id, from, status, adminNotes)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost a race with another transition since the read above.
			return nil, &InvalidStatusError{Current: current.Status, Requested: status}
		}
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}

	switch status {
	case models.StatusConfirmed:
		s.notifyAsync(confirmedEmail(updated, adminNotes))
	case models.StatusCancelled:
		s.notifyAsync(cancelledEmail(updated, adminNotes))
	}

	return updated, nil
}

// DeleteAppointment permanently removes the record. No notification is sent
// and the slot is released immediately.
func (s *DefaultSchedulingService) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.Appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Resource: "rendez-vous", ID: id}
		}
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	return nil
}

// ListAppointments returns the back-office listing, optionally narrowed by
// status and by month ("YYYY-MM").
func (s *DefaultSchedulingService) ListAppointments(ctx context.Context, status, month string) ([]models.Appointment, error) {
	filter := appointmentRepo.ListFilter{}
	if status != "" && status != "all" {
		if status != models.StatusPending && status != models.StatusConfirmed && status != models.StatusCancelled {
			return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("statut inconnu: %q", status)}
		}
		filter.Status = status
	}
	if month != "" {
		start, err := utils.ParseDay(month + "-01")
		if err != nil {
			return nil, &ValidationError{Field: "month", Message: "format attendu: AAAA-MM"}
		}
		end := start.AddDate(0, 1, -1)
		filter.MonthFrom = utils.CanonicalDay(start)
		filter.MonthTo = utils.CanonicalDay(end)
	}

	appts, err := s.Appointments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
