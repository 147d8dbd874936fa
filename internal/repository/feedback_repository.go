package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/artspires-api/internal/models"
)

// FeedbackRepository stores free-form feedback documents.
type FeedbackRepository struct {
	coll *mongo.Collection
}

// NewFeedbackRepository constructs a feedback repository over the feedbacks collection.
func NewFeedbackRepository(coll *mongo.Collection) *FeedbackRepository {
	return &FeedbackRepository{coll: coll}
}

// List returns every feedback document.
func (r *FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	return findAll[models.Feedback](ctx, r.coll, bson.M{})
}

// Create inserts the document unchanged.
func (r *FeedbackRepository) Create(ctx context.Context, feedback models.Feedback) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return insertResult(res), nil
}
