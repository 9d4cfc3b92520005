package mongo

import (
	"context"
	"errors"
	"time"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const weightLogCollectionName = "weight_logs"

// mongoWeightLogRepository implements repository.WeightLogRepository
type mongoWeightLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWeightLogRepository creates a new WeightLog repository.
func NewMongoWeightLogRepository(db *mongo.Database) repository.WeightLogRepository {
	return &mongoWeightLogRepository{
		collection: db.Collection(weightLogCollectionName),
	}
}

// Create inserts a new weight log entry.
func (r *mongoWeightLogRepository) Create(ctx context.Context, log *domain.WeightLog) (primitive.ObjectID, error) {
	if log.UserID == primitive.NilObjectID || log.WeightKg <= 0 {
		return primitive.NilObjectID, errors.New("weight log requires userId and a positive weight")
	}

	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = log.CreatedAt
	}

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted weight log ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single weight log entry.
func (r *mongoWeightLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WeightLog, error) {
	var log domain.WeightLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// GetByUserID retrieves the user's weight history, newest first. The line
// chart on the progress screen reverses this client-side.
func (r *mongoWeightLogRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightLog, error) {
	var logs []domain.WeightLog
	findOptions := options.Find().SetSort(bson.D{{Key: "loggedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// SetPhotoKey attaches a progress-photo object key to an entry, scoped to
// the owning user.
func (r *mongoWeightLogRepository) SetPhotoKey(ctx context.Context, id, userID primitive.ObjectID, photoKey string) error {
	filter := bson.M{"_id": id, "userId": userID}
	update := bson.M{"$set": bson.M{"photoKey": photoKey}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a weight log entry, ensuring ownership.
func (r *mongoWeightLogRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWeightLogIndexes creates necessary indexes for the weight_logs collection.
func EnsureWeightLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "loggedAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
