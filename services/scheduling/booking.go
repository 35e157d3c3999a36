package scheduling

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "geolumiere/database/repository/appointment"
	"geolumiere/models"
	"geolumiere/utils"
)

// CreateAppointmentRequest carries the public booking form.
type CreateAppointmentRequest struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Service    string    `json:"service"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	Message    string    `json:"message"`
	AgencyID   string    `json:"agencyId"`
	AgencyName string    `json:"agencyName"`
}

func (req *CreateAppointmentRequest) validate() error {
	if len(strings.TrimSpace(req.Name)) < 2 {
		return &ValidationError{Field: "name", Message: "Le nom est requis"}
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return &ValidationError{Field: "email", Message: "Email invalide"}
	}
	if strings.TrimSpace(req.Service) == "" {
		return &ValidationError{Field: "service", Message: "Veuillez sélectionner un service"}
	}
	if req.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "La date est requise"}
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return &ValidationError{Field: "timeSlot", Message: "Le créneau est requis"}
	}
	if strings.TrimSpace(req.AgencyID) == "" {
		return &ValidationError{Field: "agencyId", Message: "L'agence est requise"}
	}
	return nil
}

// CreateAppointment validates and commits a new booking.
//
// The availability recheck here is advisory: it produces the friendly
// Conflict before any write for the common case. The authoritative guard is
// the partial unique index on (agencyId, day, timeSlot) — a concurrent
// booking that slips past the recheck surfaces as ErrSlotTaken on insert
// and maps to the same ConflictError.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	agency, err := s.Agencies.GetByID(ctx, req.AgencyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "agence", ID: req.AgencyID}
		}
		return nil, fmt.Errorf("failed to load agency %s: %w", req.AgencyID, err)
	}

	agencyName := strings.TrimSpace(req.AgencyName)
	if agencyName == "" {
		agencyName = agency.Name
	}

	available, err := s.slotsForAgency(ctx, agency, req.Date)
	if err != nil {
		return nil, err
	}
	open := false
	for _, slot := range available {
		if slot == req.TimeSlot {
			open = true
			break
		}
	}
	if !open {
		return nil, &ConflictError{Message: "Ce créneau n'est plus disponible"}
	}

	appt := &models.Appointment{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Phone:      strings.TrimSpace(req.Phone),
		Service:    strings.TrimSpace(req.Service),
		Date:       req.Date,
		Day:        utils.CanonicalDay(req.Date),
		TimeSlot:   req.TimeSlot,
		Message:    strings.TrimSpace(req.Message),
		Status:     models.StatusPending,
		AgencyID:   agency.ID,
		AgencyName: agencyName,
	}

	if err := s.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, &ConflictError{Message: "Ce créneau n'est plus disponible"}
		}
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}

	recipients := s.agencyRecipients(ctx, agency)
	s.notifyAsync(newRequestEmail(appt, recipients, s.AdminBaseURL))
	s.notifyAsync(requestReceivedEmail(appt))

	return appt, nil
}

// agencyRecipients resolves who gets told about a new request: the agency's
// own contact emails, then the site-wide contact list, then the configured
// fallback address.
func (s *DefaultSchedulingService) agencyRecipients(ctx context.Context, agency *models.Agency) []string {
	recipients := nonEmpty(agency.Emails)
	if len(recipients) > 0 {
		return recipients
	}
	if info, err := s.ContactInfo.Get(ctx); err == nil {
		if recipients = nonEmpty(info.GlobalEmails); len(recipients) > 0 {
			return recipients
		}
	}
	return []string{s.FallbackEmail}
}

func nonEmpty(emails []string) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}
