// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"geolumiere/database"
	"geolumiere/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by Insert when another non-cancelled appointment
// already holds the same (agencyId, day, timeSlot). It surfaces the partial
// unique index violation, which is what makes the booking commit atomic.
var ErrSlotTaken = errors.New("appointment slot already taken")

// ListFilter narrows the admin listing. Zero values mean "no filter".
type ListFilter struct {
	Status    string
	MonthFrom string // canonical day, inclusive
	MonthTo   string // canonical day, inclusive
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	TakenSlots(ctx context.Context, agencyID, day string) ([]string, error)
	List(ctx context.Context, filter ListFilter) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, fromStatuses []string, toStatus, adminNotes string) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
