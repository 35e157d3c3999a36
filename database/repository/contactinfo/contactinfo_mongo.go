// File: database/repository/contactinfo/contactinfo_mongo.go
package contactRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geolumiere/database"
	"geolumiere/models"
)

// ContactInfoRepository manages the singleton contact-info document.
type ContactInfoRepository interface {
	Get(ctx context.Context) (*models.ContactInfo, error)
	Upsert(ctx context.Context, info *models.ContactInfo) error
}

type mongoContactInfoRepo struct {
	coll *mongo.Collection
}

// NewMongoContactInfoRepo constructs a new MongoDB ContactInfoRepository.
func NewMongoContactInfoRepo() ContactInfoRepository {
	return &mongoContactInfoRepo{
		coll: database.DB().Collection("contact_info"),
	}
}

func (r *mongoContactInfoRepo) Get(ctx context.Context) (*models.ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var info models.ContactInfo
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *mongoContactInfoRepo) Upsert(ctx context.Context, info *models.ContactInfo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	info.UpdatedAt = time.Now().UTC()

	// Singleton document: match anything, replace or insert.
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{}, info, opts)
	return err
}
