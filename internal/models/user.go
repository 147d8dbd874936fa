package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRole is the single field gating admin and instructor operations.
type UserRole string

const (
	RoleStudent    UserRole = ""
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
)

// User is a document in the users collection. An absent role means an ordinary student.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  UserRole           `bson:"role,omitempty" json:"role,omitempty"`
}

// UserExistsResponse is returned when a user with the same email is already stored.
type UserExistsResponse struct {
	Message string `json:"message"`
}

// AdminCheck answers GET /users/admin/:email.
type AdminCheck struct {
	Admin bool `json:"admin"`
}

// InstructorCheck answers GET /users/instructor/:email.
type InstructorCheck struct {
	Instructor bool `json:"instructor"`
}
