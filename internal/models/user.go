package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleNone       UserRole = ""
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
)

// User is a registered account. Most users arrive through social login,
// so Password is optional; when present it is stored as a bcrypt hash.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	PhotoURL  string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Password  string             `json:"password,omitempty" bson:"password,omitempty"`
	Gender    string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      UserRole           `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
