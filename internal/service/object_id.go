package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
)

func parseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, appErrors.Wrap(err, appErrors.ErrInvalidID.Code, appErrors.ErrInvalidID.Status, "invalid id: "+hex)
	}
	return id, nil
}
