package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrWorkoutNameMissing = errors.New("workout name is required")
	ErrUnknownExercise    = errors.New("workout references an unknown exercise")
)

// WorkoutExerciseInput is one exercise row as submitted by the manual
// builder. The submitted order is ignored; rows are re-sequenced by their
// position in the list.
type WorkoutExerciseInput struct {
	ExerciseID primitive.ObjectID
	Sets       int
	Reps       int
	Load       *float64
	Notes      *string
}

// WorkoutInput is the full payload for creating or replacing a workout.
type WorkoutInput struct {
	Name         string
	TrainingDays []string
	Exercises    []WorkoutExerciseInput
}

// WorkoutDetail pairs a workout with its exercise rows in order.
type WorkoutDetail struct {
	Workout   *domain.Workout
	Exercises []domain.WorkoutExercise
}

// WorkoutService covers the manual workout builder and completed-session
// history. Every operation is scoped to the calling user; a workout owned by
// someone else behaves exactly like a missing one.
type WorkoutService interface {
	Create(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*WorkoutDetail, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Get(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetail, error)
	Update(ctx context.Context, userID, workoutID primitive.ObjectID, input WorkoutInput) (*WorkoutDetail, error)
	Delete(ctx context.Context, userID, workoutID primitive.ObjectID) error
	LogSession(ctx context.Context, userID, workoutID primitive.ObjectID, performedAt time.Time) (*domain.WorkoutSession, error)
	SessionHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error)
}

type workoutService struct {
	workoutRepo         repository.WorkoutRepository
	workoutExerciseRepo repository.WorkoutExerciseRepository
	exerciseRepo        repository.ExerciseRepository
	sessionRepo         repository.SessionRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	workoutExerciseRepo repository.WorkoutExerciseRepository,
	exerciseRepo repository.ExerciseRepository,
	sessionRepo repository.SessionRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:         workoutRepo,
		workoutExerciseRepo: workoutExerciseRepo,
		exerciseRepo:        exerciseRepo,
		sessionRepo:         sessionRepo,
	}
}

func (s *workoutService) Create(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*WorkoutDetail, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrWorkoutNameMissing
	}
	if err := s.validateExercises(ctx, input.Exercises); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		OwnerID:      userID,
		Name:         name,
		TrainingDays: domain.ParseWeekdays(input.TrainingDays),
	}
	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}

	if err := s.replaceExercises(ctx, workoutID, input.Exercises); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, workoutID)
}

func (s *workoutService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByOwnerID(ctx, userID)
}

func (s *workoutService) Get(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetail, error) {
	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.workoutExerciseRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	return &WorkoutDetail{Workout: workout, Exercises: exercises}, nil
}

// Update replaces the workout's fields and its entire exercise list. Partial
// edits are not supported; the client always submits the full list.
func (s *workoutService) Update(ctx context.Context, userID, workoutID primitive.ObjectID, input WorkoutInput) (*WorkoutDetail, error) {
	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrWorkoutNameMissing
	}
	if err := s.validateExercises(ctx, input.Exercises); err != nil {
		return nil, err
	}

	workout.Name = name
	workout.TrainingDays = domain.ParseWeekdays(input.TrainingDays)
	workout.UpdatedAt = time.Now()
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}

	if err := s.workoutExerciseRepo.DeleteByWorkoutID(ctx, workoutID); err != nil {
		return nil, err
	}
	if err := s.replaceExercises(ctx, workoutID, input.Exercises); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, workoutID)
}

// Delete removes the workout and cascades to its exercise rows.
func (s *workoutService) Delete(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if err := s.workoutRepo.Delete(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDeleteFailed) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return s.workoutExerciseRepo.DeleteByWorkoutID(ctx, workoutID)
}

// LogSession records a completion of the workout. A zero performedAt means
// "just now".
func (s *workoutService) LogSession(ctx context.Context, userID, workoutID primitive.ObjectID, performedAt time.Time) (*domain.WorkoutSession, error) {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	if performedAt.IsZero() {
		performedAt = time.Now()
	}
	session := &domain.WorkoutSession{
		UserID:      userID,
		WorkoutID:   workoutID,
		PerformedAt: performedAt,
	}
	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID
	return session, nil
}

func (s *workoutService) SessionHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	return s.sessionRepo.GetByUserID(ctx, userID)
}

// ownedWorkout loads the workout and enforces ownership.
func (s *workoutService) ownedWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.OwnerID != userID {
		return nil, ErrWorkoutNotFound
	}
	return workout, nil
}

// validateExercises checks every referenced exercise exists in the library
// before any row is written.
func (s *workoutService) validateExercises(ctx context.Context, inputs []WorkoutExerciseInput) error {
	for _, input := range inputs {
		if _, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUnknownExercise
			}
			return err
		}
	}
	return nil
}

// replaceExercises writes the submitted rows with orders re-sequenced 1..N by
// list position. Non-positive sets and reps fall back to sensible defaults
// rather than failing the whole save.
func (s *workoutService) replaceExercises(ctx context.Context, workoutID primitive.ObjectID, inputs []WorkoutExerciseInput) error {
	if len(inputs) == 0 {
		return nil
	}
	entries := make([]domain.WorkoutExercise, 0, len(inputs))
	for i, input := range inputs {
		sets := input.Sets
		if sets <= 0 {
			sets = 3
		}
		reps := input.Reps
		if reps <= 0 {
			reps = defaultRepCountFallback
		}
		entries = append(entries, domain.WorkoutExercise{
			WorkoutID:  workoutID,
			ExerciseID: input.ExerciseID,
			Order:      i + 1,
			Sets:       sets,
			Reps:       reps,
			Load:       input.Load,
			Notes:      input.Notes,
		})
	}
	return s.workoutExerciseRepo.CreateMany(ctx, entries)
}

const defaultRepCountFallback = 10
