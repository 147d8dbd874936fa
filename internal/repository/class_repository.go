package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/artspires-api/internal/models"
)

// ClassRepository stores class listings. The same type backs the pending and approved collections.
type ClassRepository struct {
	coll *mongo.Collection
}

// NewClassRepository builds a repository over one class collection.
func NewClassRepository(coll *mongo.Collection) *ClassRepository {
	return &ClassRepository{coll: coll}
}

// List returns every class in the collection.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	return findAll[models.Class](ctx, r.coll, bson.M{})
}

// FindByID returns the class restricted to fields, or mongo.ErrNoDocuments.
func (r *ClassRepository) FindByID(ctx context.Context, id primitive.ObjectID, fields []string) (*models.Class, error) {
	var class models.Class
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, findOneOptions(fields)).Decode(&class); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("find %s by id: %w", r.coll.Name(), err)
	}
	return &class, nil
}

// Create inserts a class document.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	return insertResult(res), nil
}

// IncrementEnrolled atomically bumps the enrolled counter and returns the updated class.
func (r *ClassRepository) IncrementEnrolled(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var class models.Class
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"enrolled": 1}}, opts).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("increment enrolled: %w", err)
	}
	return &class, nil
}
