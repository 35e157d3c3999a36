package models

import "time"

// Appointment statuses. Pending is the only state the public booking flow
// can create; confirmed and cancelled are admin-settable.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment is a booking request made from the public site.
//
// Day is the canonical calendar-day string ("2006-01-02", UTC) derived from
// Date once at creation; every day-level lookup goes through it. AgencyName
// is a snapshot taken when the appointment is created and is never re-derived,
// so records stay readable after the agency is renamed or removed.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Service    string    `bson:"service" json:"service"`
	Date       time.Time `bson:"date" json:"date"`
	Day        string    `bson:"day" json:"day"`
	TimeSlot   string    `bson:"timeSlot" json:"timeSlot"`
	Message    string    `bson:"message,omitempty" json:"message,omitempty"`
	Status     string    `bson:"status" json:"status"`
	AdminNotes string    `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	AgencyID   string    `bson:"agencyId" json:"agencyId"`
	AgencyName string    `bson:"agencyName" json:"agencyName"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
