package models

import "go.mongodb.org/mongo-driver/bson"

// Feedback is stored exactly as submitted.
type Feedback = bson.M
