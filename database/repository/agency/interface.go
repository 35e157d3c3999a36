// File: database/repository/agency/interface.go
package agencyRepo

import (
	"context"

	"geolumiere/database"
	"geolumiere/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AgencyRepository interface {
	Create(ctx context.Context, agency *models.Agency) error
	Update(ctx context.Context, agency *models.Agency) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Agency, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.Agency, error)
	EnsureIndexes() error
}

type mongoAgencyRepo struct {
	coll *mongo.Collection
}

// NewMongoAgencyRepo constructs a new MongoDB AgencyRepository.
func NewMongoAgencyRepo() AgencyRepository {
	return &mongoAgencyRepo{
		coll: database.DB().Collection("agencies"),
	}
}
