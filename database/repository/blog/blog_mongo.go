// File: database/repository/blog/blog_mongo.go
package blogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"geolumiere/database"
	"geolumiere/models"
)

// ErrDuplicateSlug is returned when a post with the same slug already exists.
var ErrDuplicateSlug = errors.New("blog slug already in use")

type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	EnsureIndexes() error
}

type mongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo constructs a new MongoDB BlogRepository.
func NewMongoBlogRepo() BlogRepository {
	return &mongoBlogRepo{
		coll: database.DB().Collection("blog_posts"),
	}
}

func (r *mongoBlogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slug"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "publishedAt", Value: -1}},
			Options: options.Index().SetName("status_published_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}
	return nil
}

func (r *mongoBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Status == models.BlogPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *mongoBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	post.UpdatedAt = now
	if post.Status == models.BlogPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": post.ID}, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlogRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoBlogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mongoBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mongoBlogRepo) List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	if publishedOnly {
		filter["status"] = models.BlogPublished
		sort = bson.D{{Key: "publishedAt", Value: -1}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
