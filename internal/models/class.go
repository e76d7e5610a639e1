package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	StatusPending  ClassStatus = "Pending"
	StatusApproved ClassStatus = "Approved"
	StatusDenied   ClassStatus = "Denied"
)

type Class struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	NameClass       string             `json:"nameClass" bson:"nameClass" validate:"required"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorName  string             `json:"instructorName,omitempty" bson:"instructorName,omitempty"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail" validate:"required,email"`
	Seats           int                `json:"seats" bson:"seats" validate:"gte=0"`
	Price           float64            `json:"price" bson:"price" validate:"gte=0"`
	Enroll          int                `json:"enroll" bson:"enroll"`
	Status          ClassStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// ClassUpdate carries the four fields the catalog edit screen replaces.
type ClassUpdate struct {
	NameClass string  `json:"nameClass" validate:"required"`
	Image     string  `json:"image"`
	Seats     int     `json:"seats" validate:"gte=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}
