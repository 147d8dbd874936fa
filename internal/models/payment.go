package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed charge for one enrollment.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Date          PaymentDate        `bson:"date" json:"date"`
	Item          string             `bson:"item" json:"item" validate:"required"`
	ItemName      string             `bson:"itemName,omitempty" json:"itemName,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PaymentIntentResponse returns the processor client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRecordResult reports both writes of POST /payments.
type PaymentRecordResult struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}

// PaymentDate is stored as a BSON datetime. Older payment documents hold an ISO-8601 string,
// which is accepted on read.
type PaymentDate struct {
	time.Time
}

// MarshalBSONValue writes the date as a BSON datetime.
func (d PaymentDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

// UnmarshalBSONValue reads either a BSON datetime or an ISO-8601 string.
func (d *PaymentDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDateTime:
		d.Time = raw.Time().UTC()
	case bson.TypeString:
		parsed, err := time.Parse(time.RFC3339Nano, raw.StringValue())
		if err != nil {
			return fmt.Errorf("payment date: %w", err)
		}
		d.Time = parsed.UTC()
	case bson.TypeNull, bson.TypeUndefined:
		d.Time = time.Time{}
	default:
		return fmt.Errorf("payment date: unsupported bson type %s", t)
	}
	return nil
}
