package models

// InsertResult mirrors the document-driver acknowledgement for insertOne.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the document-driver acknowledgement for updateOne.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the document-driver acknowledgement for deleteOne.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// EnrollmentCreated is returned by POST /selectclasses.
type EnrollmentCreated struct {
	InsertResult
	Enrolled *int `json:"enrolled,omitempty"`
}
