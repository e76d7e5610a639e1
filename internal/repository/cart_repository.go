package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
)

type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartEntry, error)
	Insert(ctx context.Context, entry *models.CartEntry) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type cartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) CartRepository {
	return &cartRepository{collection: collection}
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.CartEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *cartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartEntry, error) {
	var entry models.CartEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *cartRepository) Insert(ctx context.Context, entry *models.CartEntry) (primitive.ObjectID, error) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return entry.ID, nil
}

func (r *cartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
