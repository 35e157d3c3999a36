// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geolumiere/models"
)

func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateStatus applies a compare-and-set transition: the document must
// currently hold one of fromStatuses, otherwise mongo.ErrNoDocuments is
// returned and nothing changes. A stale admin tab therefore cannot
// re-apply a transition that already happened.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, fromStatuses []string, toStatus, adminNotes string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": bson.M{"$in": fromStatuses}}
	set := bson.M{"status": toStatus, "updatedAt": time.Now().UTC()}
	if adminNotes != "" {
		set["adminNotes"] = adminNotes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
