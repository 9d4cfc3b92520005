package repository

import (
	"context"

	"dmarins/fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with account data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ProfileRepository defines the interface for interacting with profile data.
// Profiles are keyed by user; Upsert covers both onboarding and later edits.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
}

// ExerciseRepository defines the interface for reading the exercise library.
// The library is reference data seeded externally; no write path is exposed.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
}

// TemplateRepository defines the interface for reading the template-workout
// catalog. Read-only, like the exercise library.
type TemplateRepository interface {
	GetAll(ctx context.Context) ([]domain.TemplateWorkout, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TemplateWorkout, error)
}

// WorkoutRepository defines the interface for interacting with user-owned
// workouts. Delete variants take the owner id so ownership is enforced at the
// database level; DeleteByIDs backs the import compensation path.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID, ownerID primitive.ObjectID) error
}

// WorkoutExerciseRepository defines the interface for the exercise rows
// inside workouts.
type WorkoutExerciseRepository interface {
	CreateMany(ctx context.Context, entries []domain.WorkoutExercise) error
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error)
	DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error
	DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) error
}

// SessionRepository defines the interface for completed-workout history.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error)
}

// WeightLogRepository defines the interface for weight/photo progress entries.
type WeightLogRepository interface {
	Create(ctx context.Context, log *domain.WeightLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WeightLog, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightLog, error)
	SetPhotoKey(ctx context.Context, id, userID primitive.ObjectID, photoKey string) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
