// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"geolumiere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
//
// The partial unique index over (agencyId, day, timeSlot) applies only to
// pending and confirmed documents. It is the single enforcement point of the
// one-active-booking-per-slot invariant: two concurrent inserts for the same
// slot cannot both succeed, and cancelled rows never hold a slot.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "agencyId", Value: 1}, {Key: "day", Value: 1}, {Key: "timeSlot", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
				}),
		},
		// Admin listing pattern: filter by status/date range, sort by date+slot.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}},
			Options: options.Index().SetName("status_date_slot_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
