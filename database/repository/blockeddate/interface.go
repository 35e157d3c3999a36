// File: database/repository/blockeddate/interface.go
package blockedRepo

import (
	"context"
	"errors"

	"geolumiere/database"
	"geolumiere/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateDay is returned by Insert when the calendar day is already
// blocked. The unique index on day makes the insert atomic; blocking must
// never silently overwrite an existing record.
var ErrDuplicateDay = errors.New("date already blocked")

type BlockedDateRepository interface {
	Insert(ctx context.Context, blocked *models.BlockedDate) error
	Delete(ctx context.Context, id string) error
	IsBlocked(ctx context.Context, day string) (bool, error)
	List(ctx context.Context) ([]models.BlockedDate, error)
	EnsureIndexes() error
}

type mongoBlockedDateRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedDateRepo constructs a new MongoDB BlockedDateRepository.
func NewMongoBlockedDateRepo() BlockedDateRepository {
	return &mongoBlockedDateRepo{
		coll: database.DB().Collection("blocked_dates"),
	}
}
