// File: database/repository/testimonial/testimonial_mongo.go
package testimonialRepo

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

type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	List(ctx context.Context, activeOnly bool) ([]models.Testimonial, error)
}

type mongoTestimonialRepo struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepo constructs a new MongoDB TestimonialRepository.
func NewMongoTestimonialRepo() TestimonialRepository {
	return &mongoTestimonialRepo{
		coll: database.DB().Collection("testimonials"),
	}
}

func (r *mongoTestimonialRepo) Create(ctx context.Context, t *models.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTestimonialRepo) Update(ctx context.Context, t *models.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	t.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTestimonialRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoTestimonialRepo) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.Testimonial
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTestimonialRepo) List(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Testimonial
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
