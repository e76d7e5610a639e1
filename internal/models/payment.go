package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a settled purchase. PayID references the cart entry the
// purchase consumed; TransactionID is the reference handed back to the payer.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	ClassID       primitive.ObjectID `json:"classId" bson:"classId"`
	PayID         primitive.ObjectID `json:"payId" bson:"payId"`
	NameClass     string             `json:"nameClass,omitempty" bson:"nameClass,omitempty"`
	Amount        float64            `json:"amount" bson:"amount"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Date          time.Time          `json:"date" bson:"date"`
}
