package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/artspires-api/internal/models"
)

// EnrollmentRepository persists selected classes awaiting payment.
type EnrollmentRepository struct {
	coll *mongo.Collection
}

// NewEnrollmentRepository constructs EnrollmentRepository.
func NewEnrollmentRepository(coll *mongo.Collection) *EnrollmentRepository {
	return &EnrollmentRepository{coll: coll}
}

// List returns enrollments, optionally narrowed to one email.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EmailFilter) ([]models.Enrollment, error) {
	return findAll[models.Enrollment](ctx, r.coll, emailFilter(filter))
}

// FindByID returns one enrollment restricted to fields, or mongo.ErrNoDocuments.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id primitive.ObjectID, fields []string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, findOneOptions(fields)).Decode(&enrollment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("find enrollment by id: %w", err)
	}
	return &enrollment, nil
}

// Create inserts an enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, enrollment)
	if err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}
	return insertResult(res), nil
}

// Delete removes one enrollment. A missing id yields a zero delete count, not an error.
func (r *EnrollmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete enrollment: %w", err)
	}
	return deleteResult(res), nil
}
