// File: database/repository/blockeddate/blocked_mongo.go
package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geolumiere/models"
)

func (r *mongoBlockedDateRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One record per calendar day.
		{
			Keys:    bson.D{{Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_day"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create blocked date indexes: %w", err)
	}
	return nil
}

func (r *mongoBlockedDateRepo) Insert(ctx context.Context, blocked *models.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if blocked.ID == "" {
		blocked.ID = uuid.New().String()
	}
	blocked.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, blocked); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateDay
		}
		return err
	}
	return nil
}

func (r *mongoBlockedDateRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoBlockedDateRepo) IsBlocked(ctx context.Context, day string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"day": day})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoBlockedDateRepo) List(ctx context.Context) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dates []models.BlockedDate
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}
