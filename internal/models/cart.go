package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry is a class a student selected but has not paid for yet.
type CartEntry struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassID         primitive.ObjectID `json:"classId" bson:"classId"`
	Email           string             `json:"email" bson:"email"`
	NameClass       string             `json:"nameClass,omitempty" bson:"nameClass,omitempty"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorEmail string             `json:"instructorEmail,omitempty" bson:"instructorEmail,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	SelectedAt      time.Time          `json:"selectedAt,omitempty" bson:"selectedAt,omitempty"`
}
