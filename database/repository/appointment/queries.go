// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geolumiere/models"
)

// TakenSlots returns the timeSlot tokens of all non-cancelled appointments
// for the given agency and canonical day.
func (r *mongoAppointmentRepo) TakenSlots(ctx context.Context, agencyID, day string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"agencyId": agencyID,
		"day":      day,
		"status":   bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"timeSlot": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		TimeSlot string `bson:"timeSlot"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	taken := make([]string, 0, len(docs))
	for _, d := range docs {
		taken = append(taken, d.TimeSlot)
	}
	return taken, nil
}

// List returns appointments for the back office, sorted by date then slot.
func (r *mongoAppointmentRepo) List(ctx context.Context, filter ListFilter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.MonthFrom != "" && filter.MonthTo != "" {
		query["day"] = bson.M{"$gte": filter.MonthFrom, "$lte": filter.MonthTo}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
