package scheduling

import (
	"context"
	"time"

	agencyRepo "geolumiere/database/repository/agency"
	appointmentRepo "geolumiere/database/repository/appointment"
	blockedRepo "geolumiere/database/repository/blockeddate"
	contactRepo "geolumiere/database/repository/contactinfo"
	"geolumiere/models"
	"geolumiere/services/notification"
)

// SchedulingService is the appointment core: availability derivation, the
// booking transaction, the status lifecycle and the blocked-date registry.
type SchedulingService interface {
	AvailableSlots(ctx context.Context, agencyID string, date time.Time) ([]string, error)
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context, status, month string) ([]models.Appointment, error)

	BlockDate(ctx context.Context, date time.Time, reason string) (*models.BlockedDate, error)
	UnblockDate(ctx context.Context, id string) error
	ListBlockedDates(ctx context.Context) ([]models.BlockedDate, error)
}

// DefaultSchedulingService implements SchedulingService against the
// repository interfaces, so tests can swap in fakes.
type DefaultSchedulingService struct {
	Agencies     agencyRepo.AgencyRepository
	Appointments appointmentRepo.AppointmentRepository
	BlockedDates blockedRepo.BlockedDateRepository
	ContactInfo  contactRepo.ContactInfoRepository
	Mailer       notification.Mailer

	// AdminBaseURL and FallbackEmail are taken from config at wiring time.
	AdminBaseURL  string
	FallbackEmail string
}
