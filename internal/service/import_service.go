package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTemplateNotFound    = errors.New("template workout not found")
	ErrEmptyTemplate       = errors.New("template has no training days defined")
	ErrNoMatchingExercises = errors.New("no template exercise matched the exercise library")
	ErrStaleAuth           = errors.New("no authenticated user for import")
)

// ImportResult reports what a successful import created.
type ImportResult struct {
	WorkoutsCreated   int `json:"workoutsCreated"`
	ExercisesImported int `json:"exercisesImported"`
}

// ImportService materializes a template into user-owned workout rows.
type ImportService interface {
	ImportTemplate(ctx context.Context, userID, templateID primitive.ObjectID) (*ImportResult, error)
}

// importService implements the ImportService interface.
//
// The backing store offers no multi-statement transaction to this layer, so
// atomicity is simulated: every created workout id is tracked, and on failure
// (or when no exercise matched at all) a compensating delete removes them,
// scoped to the importing user.
type importService struct {
	templateRepo        repository.TemplateRepository
	exerciseRepo        repository.ExerciseRepository
	profileRepo         repository.ProfileRepository
	workoutRepo         repository.WorkoutRepository
	workoutExerciseRepo repository.WorkoutExerciseRepository
}

// NewImportService creates a new instance of importService.
func NewImportService(
	templateRepo repository.TemplateRepository,
	exerciseRepo repository.ExerciseRepository,
	profileRepo repository.ProfileRepository,
	workoutRepo repository.WorkoutRepository,
	workoutExerciseRepo repository.WorkoutExerciseRepository,
) ImportService {
	return &importService{
		templateRepo:        templateRepo,
		exerciseRepo:        exerciseRepo,
		profileRepo:         profileRepo,
		workoutRepo:         workoutRepo,
		workoutExerciseRepo: workoutExerciseRepo,
	}
}

// ImportTemplate resolves the template's exercise list against the live
// library and writes one workout per template day, distributing the user's
// configured training days across them. Exercises whose names find no
// library match are skipped; a template where nothing matches at all is a
// hard failure with every created workout compensated away.
func (s *importService) ImportTemplate(ctx context.Context, userID, templateID primitive.ObjectID) (*ImportResult, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrStaleAuth
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	days := template.Structure.Days
	if len(days) == 0 {
		return nil, ErrEmptyTemplate
	}

	// Training days come from the profile; a missing profile simply means no
	// configured days.
	var userDays []domain.Weekday
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		userDays = profile.TrainingDays
	}

	// Snapshot the library once and resolve by trimmed, lowercased name.
	library, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	idByName := make(map[string]primitive.ObjectID, len(library))
	explanationByName := make(map[string]string, len(library))
	for _, exercise := range library {
		key := normalizeName(exercise.Name)
		idByName[key] = exercise.ID
		explanationByName[key] = exercise.Explanation
	}

	// Seed the disambiguation set from the user's current workout names; it
	// grows as names are allocated within this batch.
	existing, err := s.workoutRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	takenNames := make(map[string]bool, len(existing))
	for _, workout := range existing {
		takenNames[workout.Name] = true
	}

	dayAssignments := distributeTrainingDays(template.SuggestedDaysPerWeek, len(days), userDays)

	var createdIDs []primitive.ObjectID
	totalImported := 0

	for i, day := range days {
		baseName := template.Title
		if len(days) > 1 {
			baseName = fmt.Sprintf("%s - %s", template.Title, day.DayLabel)
		}
		name := uniqueName(baseName, takenNames)
		takenNames[name] = true

		workout := &domain.Workout{
			OwnerID:      userID,
			Name:         name,
			TrainingDays: dayAssignments[i],
		}
		workoutID, err := s.workoutRepo.Create(ctx, workout)
		if err != nil {
			return nil, s.compensate(ctx, userID, createdIDs, err)
		}
		createdIDs = append(createdIDs, workoutID)

		entries := s.resolveExercises(workoutID, day, idByName, explanationByName)
		if len(entries) > 0 {
			if err := s.workoutExerciseRepo.CreateMany(ctx, entries); err != nil {
				return nil, s.compensate(ctx, userID, createdIDs, err)
			}
			totalImported += len(entries)
		}
	}

	if totalImported == 0 {
		return nil, s.compensate(ctx, userID, createdIDs, ErrNoMatchingExercises)
	}

	return &ImportResult{
		WorkoutsCreated:   len(createdIDs),
		ExercisesImported: totalImported,
	}, nil
}

// resolveExercises maps one template day's exercise list onto persisted rows.
// Unmatched names are skipped, not fatal; order restarts at 1 per workout and
// load is always left unset for the user to fill in.
func (s *importService) resolveExercises(
	workoutID primitive.ObjectID,
	day domain.TemplateDay,
	idByName map[string]primitive.ObjectID,
	explanationByName map[string]string,
) []domain.WorkoutExercise {
	var entries []domain.WorkoutExercise
	order := 1

	for _, templateExercise := range day.Exercises {
		key := normalizeName(templateExercise.Name)
		exerciseID, ok := idByName[key]
		if !ok {
			log.Printf("WARN: template exercise %q has no library match, skipping", templateExercise.Name)
			continue
		}

		entries = append(entries, domain.WorkoutExercise{
			WorkoutID:  workoutID,
			ExerciseID: exerciseID,
			Order:      order,
			Sets:       templateExercise.SetCount(),
			Reps:       templateExercise.RepCount(),
			Notes:      buildNotes(day, templateExercise, explanationByName[key]),
		})
		order++
	}

	return entries
}

// buildNotes concatenates day context, execution guidance from the library,
// and the template's rest period. An empty result means no notes at all
// rather than an empty string.
func buildNotes(day domain.TemplateDay, exercise domain.TemplateExercise, explanation string) *string {
	var parts []string
	if day.Name != "" {
		parts = append(parts, fmt.Sprintf("%s - %s", day.DayLabel, day.Name))
	}
	if explanation != "" {
		parts = append(parts, "Execução: "+explanation)
	}
	if exercise.RestPeriod != "" {
		parts = append(parts, "Descanso: "+exercise.RestPeriod)
	}
	if len(parts) == 0 {
		return nil
	}
	notes := strings.Join(parts, ". ")
	return &notes
}

// distributeTrainingDays assigns weekday sets to each resulting workout.
//
// Templates suggesting exactly 3 days/week carry a hard-coded distribution
// over the mon/wed/fri defaults regardless of the user's configuration; any
// other template round-robins the user's configured days across the workouts
// by index. No configured days means every workout gets an empty set.
func distributeTrainingDays(suggestedDaysPerWeek *int, numWorkouts int, userDays []domain.Weekday) [][]domain.Weekday {
	if suggestedDaysPerWeek != nil && *suggestedDaysPerWeek == 3 {
		switch numWorkouts {
		case 1:
			return [][]domain.Weekday{{domain.Monday, domain.Wednesday, domain.Friday}}
		case 2:
			return [][]domain.Weekday{{domain.Monday, domain.Friday}, {domain.Wednesday}}
		case 3:
			return [][]domain.Weekday{{domain.Monday}, {domain.Wednesday}, {domain.Friday}}
		}
	}

	result := make([][]domain.Weekday, numWorkouts)
	for i := range result {
		result[i] = []domain.Weekday{}
	}
	for i, day := range userDays {
		idx := i % numWorkouts
		result[idx] = append(result[idx], day)
	}
	return result
}

// uniqueName appends " (2)", " (3)", ... until the name is free.
func uniqueName(baseName string, taken map[string]bool) string {
	if !taken[baseName] {
		return baseName
	}
	counter := 2
	for taken[fmt.Sprintf("%s (%d)", baseName, counter)] {
		counter++
	}
	return fmt.Sprintf("%s (%d)", baseName, counter)
}

// compensate deletes every workout this import created (and their exercise
// rows), then returns the original error. A failing compensating delete is
// unrecoverable and is surfaced alongside the original error rather than
// swallowed.
func (s *importService) compensate(ctx context.Context, userID primitive.ObjectID, createdIDs []primitive.ObjectID, original error) error {
	if len(createdIDs) == 0 {
		return original
	}
	if err := s.workoutExerciseRepo.DeleteByWorkoutIDs(ctx, createdIDs); err != nil {
		return fmt.Errorf("compensating delete of workout exercises failed: %v: %w", err, original)
	}
	if err := s.workoutRepo.DeleteByIDs(ctx, createdIDs, userID); err != nil {
		return fmt.Errorf("compensating delete of workouts failed: %v: %w", err, original)
	}
	return original
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
