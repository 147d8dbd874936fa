package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Enrollment is a class a student selected but has not paid for yet (selectClass collection).
type Enrollment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Instructor string             `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Enrolled   int                `bson:"enrolled,omitempty" json:"enrolled,omitempty"`
}

// EnrollmentSummaryFields is the projection used for single enrollment reads.
var EnrollmentSummaryFields = []string{"name", "price", "email"}

// EmailFilter narrows listings to a single owner; an empty Email matches every document.
type EmailFilter struct {
	Email string
}
