package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class is a listing in either the pending (classes) or approved (approveclasses) collection.
type Class struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Price          float64            `bson:"price,omitempty" json:"price,omitempty"`
	Instructor     string             `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	AvailableSeats int                `bson:"availableSeats,omitempty" json:"availableSeats,omitempty"`
	Enrolled       int                `bson:"enrolled,omitempty" json:"enrolled,omitempty"`
	Feedback       string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// ClassSummaryFields is the projection used for single class reads.
var ClassSummaryFields = []string{"name", "price", "status", "email", "instructor", "image"}
