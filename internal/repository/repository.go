package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Repositories bundles one repository per collection, constructed once at
// startup and passed explicitly to the handlers.
type Repositories struct {
	Users    UserRepository
	Classes  ClassRepository
	Carts    CartRepository
	Payments PaymentRepository
}

func NewMongoRepositories(client *mongo.Client, dbName string) *Repositories {
	db := client.Database(dbName)
	return &Repositories{
		Users:    NewUserRepository(db.Collection("users")),
		Classes:  NewClassRepository(db.Collection("classes")),
		Carts:    NewCartRepository(db.Collection("carts")),
		Payments: NewPaymentRepository(db.Collection("payments")),
	}
}
