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

const workoutExerciseCollectionName = "workout_exercises"

// mongoWorkoutExerciseRepository implements repository.WorkoutExerciseRepository
type mongoWorkoutExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutExerciseRepository creates a new WorkoutExercise repository.
func NewMongoWorkoutExerciseRepository(db *mongo.Database) repository.WorkoutExerciseRepository {
	return &mongoWorkoutExerciseRepository{
		collection: db.Collection(workoutExerciseCollectionName),
	}
}

// CreateMany inserts a batch of exercise rows for one workout in a single
// call. The importer and the manual builder both insert per-workout batches
// so the order counters they assigned stay intact.
func (r *mongoWorkoutExerciseRepository) CreateMany(ctx context.Context, entries []domain.WorkoutExercise) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(entries))
	for i := range entries {
		if entries[i].WorkoutID == primitive.NilObjectID || entries[i].ExerciseID == primitive.NilObjectID {
			return errors.New("workout exercise requires workoutId and exerciseId")
		}
		entries[i].ID = primitive.NewObjectID()
		entries[i].CreatedAt = now
		docs[i] = entries[i]
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByWorkoutID retrieves all exercise rows of a workout in order.
func (r *mongoWorkoutExerciseRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error) {
	var entries []domain.WorkoutExercise
	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"workoutId": workoutID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByWorkoutID removes every exercise row of one workout.
func (r *mongoWorkoutExerciseRepository) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": workoutID})
	return err
}

// DeleteByWorkoutIDs removes the exercise rows of a set of workouts. Backs
// cascade deletion and the import compensation path.
func (r *mongoWorkoutExerciseRepository) DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) error {
	if len(workoutIDs) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": bson.M{"$in": workoutIDs}})
	return err
}

// EnsureWorkoutExerciseIndexes creates necessary indexes for workout exercises.
func EnsureWorkoutExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Order values are unique within a workout.
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "order", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
