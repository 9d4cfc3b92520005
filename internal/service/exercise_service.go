package service

import (
	"context"
	"errors"
	"strings"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseService exposes the read-only exercise library.
type ExerciseService interface {
	List(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// List returns the library, optionally filtered by muscle group.
func (s *exerciseService) List(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	muscleGroup = strings.TrimSpace(muscleGroup)
	if muscleGroup == "" {
		return s.exerciseRepo.GetAll(ctx)
	}
	return s.exerciseRepo.GetByMuscleGroup(ctx, muscleGroup)
}

func (s *exerciseService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}
