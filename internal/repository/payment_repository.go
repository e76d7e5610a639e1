package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
)

type PaymentRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(collection *mongo.Collection) PaymentRepository {
	return &paymentRepository{collection: collection}
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return payment.ID, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
