package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/models"
)

type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	Insert(ctx context.Context, class *models.Class) (primitive.ObjectID, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.ClassUpdate) (int64, error)
	// ApplyEnrollment decrements seats and increments enroll in one
	// conditional update; it matches nothing when no seat is left.
	ApplyEnrollment(ctx context.Context, id primitive.ObjectID) (int64, error)
	RevertEnrollment(ctx context.Context, id primitive.ObjectID) error
}

type classRepository struct {
	collection *mongo.Collection
}

func NewClassRepository(collection *mongo.Collection) ClassRepository {
	return &classRepository{collection: collection}
}

func (r *classRepository) List(ctx context.Context) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"instructorEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) Insert(ctx context.Context, class *models.Class) (primitive.ObjectID, error) {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return class.ID, nil
}

func (r *classRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *classRepository) Update(ctx context.Context, id primitive.ObjectID, update models.ClassUpdate) (int64, error) {
	set := bson.M{
		"nameClass": update.NameClass,
		"image":     update.Image,
		"seats":     update.Seats,
		"price":     update.Price,
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *classRepository) ApplyEnrollment(ctx context.Context, id primitive.ObjectID) (int64, error) {
	filter := bson.M{"_id": id, "seats": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"seats": -1, "enroll": 1}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *classRepository) RevertEnrollment(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$inc": bson.M{"seats": 1, "enroll": -1}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
