// File: database/repository/agency/agency_mongo.go
package agencyRepo

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

func (r *mongoAgencyRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}},
			Options: options.Index().SetName("active_order_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create agency indexes: %w", err)
	}
	return nil
}

func (r *mongoAgencyRepo) Create(ctx context.Context, agency *models.Agency) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if agency.ID == "" {
		agency.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	agency.CreatedAt = now
	agency.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, agency)
	return err
}

func (r *mongoAgencyRepo) Update(ctx context.Context, agency *models.Agency) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	agency.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": agency.ID}, agency)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAgencyRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoAgencyRepo) GetByID(ctx context.Context, id string) (*models.Agency, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var agency models.Agency
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&agency); err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *mongoAgencyRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.Agency, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agencies []models.Agency
	if err := cursor.All(ctx, &agencies); err != nil {
		return nil, err
	}
	return agencies, nil
}
