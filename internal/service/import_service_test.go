package service

import (
	"context"
	"errors"
	"testing"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- In-Memory Fakes ---

type fakeTemplateRepo struct {
	templates map[primitive.ObjectID]*domain.TemplateWorkout
}

func (f *fakeTemplateRepo) GetAll(ctx context.Context) ([]domain.TemplateWorkout, error) {
	var out []domain.TemplateWorkout
	for _, t := range f.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TemplateWorkout, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (f *fakeExerciseRepo) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			return &f.exercises[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExerciseRepo) GetByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range f.exercises {
		if e.MuscleGroup == muscleGroup {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]*domain.Profile
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

type fakeWorkoutRepo struct {
	workouts   map[primitive.ObjectID]*domain.Workout
	failAfter  int // fail Create once this many workouts exist; -1 disables
	createErr  error
	deletedIDs []primitive.ObjectID
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout), failAfter: -1}
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if f.failAfter >= 0 && len(f.workouts) >= f.failAfter {
		return primitive.NilObjectID, f.createErr
	}
	id := primitive.NewObjectID()
	stored := *workout
	stored.ID = id
	f.workouts[id] = &stored
	return id, nil
}

func (f *fakeWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := f.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return w, nil
}

func (f *fakeWorkoutRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, w := range f.workouts {
		if w.OwnerID == ownerID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Update(ctx context.Context, workout *domain.Workout) error {
	if _, ok := f.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *workout
	f.workouts[workout.ID] = &stored
	return nil
}

func (f *fakeWorkoutRepo) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	w, ok := f.workouts[id]
	if !ok || w.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(f.workouts, id)
	return nil
}

func (f *fakeWorkoutRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID, ownerID primitive.ObjectID) error {
	for _, id := range ids {
		if w, ok := f.workouts[id]; ok && w.OwnerID == ownerID {
			delete(f.workouts, id)
			f.deletedIDs = append(f.deletedIDs, id)
		}
	}
	return nil
}

type fakeWorkoutExerciseRepo struct {
	entries   []domain.WorkoutExercise
	createErr error
}

func (f *fakeWorkoutExerciseRepo) CreateMany(ctx context.Context, entries []domain.WorkoutExercise) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeWorkoutExerciseRepo) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutExercise, error) {
	var out []domain.WorkoutExercise
	for _, e := range f.entries {
		if e.WorkoutID == workoutID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeWorkoutExerciseRepo) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	return f.DeleteByWorkoutIDs(ctx, []primitive.ObjectID{workoutID})
}

func (f *fakeWorkoutExerciseRepo) DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) error {
	drop := make(map[primitive.ObjectID]bool, len(workoutIDs))
	for _, id := range workoutIDs {
		drop[id] = true
	}
	var kept []domain.WorkoutExercise
	for _, e := range f.entries {
		if !drop[e.WorkoutID] {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

// --- Test Fixtures ---

type importFixture struct {
	service      ImportService
	templateRepo *fakeTemplateRepo
	exerciseRepo *fakeExerciseRepo
	profileRepo  *fakeProfileRepo
	workoutRepo  *fakeWorkoutRepo
	entryRepo    *fakeWorkoutExerciseRepo
	userID       primitive.ObjectID
}

func newImportFixture() *importFixture {
	f := &importFixture{
		templateRepo: &fakeTemplateRepo{templates: make(map[primitive.ObjectID]*domain.TemplateWorkout)},
		exerciseRepo: &fakeExerciseRepo{},
		profileRepo:  &fakeProfileRepo{profiles: make(map[primitive.ObjectID]*domain.Profile)},
		workoutRepo:  newFakeWorkoutRepo(),
		entryRepo:    &fakeWorkoutExerciseRepo{},
		userID:       primitive.NewObjectID(),
	}
	f.service = NewImportService(f.templateRepo, f.exerciseRepo, f.profileRepo, f.workoutRepo, f.entryRepo)
	return f
}

func (f *importFixture) addExercise(name, explanation string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.exerciseRepo.exercises = append(f.exerciseRepo.exercises, domain.Exercise{
		ID: id, Name: name, Explanation: explanation,
	})
	return id
}

func (f *importFixture) addTemplate(t *domain.TemplateWorkout) primitive.ObjectID {
	id := primitive.NewObjectID()
	t.ID = id
	f.templateRepo.templates[id] = t
	return id
}

func intPtr(v int) *int { return &v }

// --- Tests ---

func TestImportTemplate_TwoDaySplit(t *testing.T) {
	f := newImportFixture()
	benchID := f.addExercise("Supino Reto", "Desça a barra até o peito")
	rowID := f.addExercise("Remada Curvada", "")

	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title:                "Upper Lower",
		SuggestedDaysPerWeek: intPtr(3),
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Name: "Superiores", Exercises: []domain.TemplateExercise{
				{Name: "Supino Reto", Sets: 4, Reps: "8-12", RestPeriod: "90s"},
			}},
			{DayLabel: "B", Name: "Inferiores", Exercises: []domain.TemplateExercise{
				{Name: "remada curvada ", Sets: 3, Reps: 10},
			}},
		}},
	})

	result, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.WorkoutsCreated)
	assert.Equal(t, 2, result.ExercisesImported)

	workouts, _ := f.workoutRepo.GetByOwnerID(context.Background(), f.userID)
	require.Len(t, workouts, 2)

	byName := make(map[string]domain.Workout)
	for _, w := range workouts {
		byName[w.Name] = w
	}
	dayA, ok := byName["Upper Lower - A"]
	require.True(t, ok, "first workout named after template title and day label")
	dayB, ok := byName["Upper Lower - B"]
	require.True(t, ok)

	// Suggested 3 days/week over 2 workouts uses the fixed mon+fri / wed split.
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Friday}, dayA.TrainingDays)
	assert.Equal(t, []domain.Weekday{domain.Wednesday}, dayB.TrainingDays)

	entriesA, _ := f.entryRepo.GetByWorkoutID(context.Background(), dayA.ID)
	require.Len(t, entriesA, 1)
	assert.Equal(t, benchID, entriesA[0].ExerciseID)
	assert.Equal(t, 1, entriesA[0].Order)
	assert.Equal(t, 4, entriesA[0].Sets)
	assert.Equal(t, 8, entriesA[0].Reps, "range strings resolve to their first number")
	assert.Nil(t, entriesA[0].Load)
	require.NotNil(t, entriesA[0].Notes)
	assert.Equal(t, "A - Superiores. Execução: Desça a barra até o peito. Descanso: 90s", *entriesA[0].Notes)

	// Matching is case-insensitive and trims whitespace.
	entriesB, _ := f.entryRepo.GetByWorkoutID(context.Background(), dayB.ID)
	require.Len(t, entriesB, 1)
	assert.Equal(t, rowID, entriesB[0].ExerciseID)
	require.NotNil(t, entriesB[0].Notes)
	assert.Equal(t, "B - Inferiores", *entriesB[0].Notes)
}

func TestImportTemplate_SingleDayKeepsTitle(t *testing.T) {
	f := newImportFixture()
	f.addExercise("Agachamento Livre", "")

	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title: "Full Body Express",
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Exercises: []domain.TemplateExercise{{Name: "Agachamento Livre"}}},
		}},
	})

	result, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WorkoutsCreated)

	workouts, _ := f.workoutRepo.GetByOwnerID(context.Background(), f.userID)
	require.Len(t, workouts, 1)
	assert.Equal(t, "Full Body Express", workouts[0].Name, "single-day imports do not append the day label")

	entries, _ := f.entryRepo.GetByWorkoutID(context.Background(), workouts[0].ID)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Sets, "missing sets default to 3")
	assert.Equal(t, 10, entries[0].Reps, "missing reps default to 10")
}

func TestImportTemplate_ReimportDisambiguatesNames(t *testing.T) {
	f := newImportFixture()
	f.addExercise("Agachamento Livre", "")

	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title: "Full Body Express",
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Exercises: []domain.TemplateExercise{{Name: "Agachamento Livre"}}},
		}},
	})

	ctx := context.Background()
	_, err := f.service.ImportTemplate(ctx, f.userID, templateID)
	require.NoError(t, err)
	_, err = f.service.ImportTemplate(ctx, f.userID, templateID)
	require.NoError(t, err)
	_, err = f.service.ImportTemplate(ctx, f.userID, templateID)
	require.NoError(t, err)

	workouts, _ := f.workoutRepo.GetByOwnerID(ctx, f.userID)
	require.Len(t, workouts, 3, "re-importing creates new workouts, it is not idempotent")

	names := make(map[string]bool)
	for _, w := range workouts {
		names[w.Name] = true
	}
	assert.True(t, names["Full Body Express"])
	assert.True(t, names["Full Body Express (2)"])
	assert.True(t, names["Full Body Express (3)"])
}

func TestImportTemplate_RoundRobinUserDays(t *testing.T) {
	f := newImportFixture()
	f.addExercise("Supino Reto", "")
	f.addExercise("Agachamento Livre", "")

	f.profileRepo.profiles[f.userID] = &domain.Profile{
		UserID: f.userID,
		TrainingDays: []domain.Weekday{
			domain.Tuesday, domain.Thursday, domain.Saturday,
		},
	}

	// No suggested frequency, so the user's own days are spread by index.
	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title: "Dupla",
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Exercises: []domain.TemplateExercise{{Name: "Supino Reto"}}},
			{DayLabel: "B", Exercises: []domain.TemplateExercise{{Name: "Agachamento Livre"}}},
		}},
	})

	_, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	require.NoError(t, err)

	workouts, _ := f.workoutRepo.GetByOwnerID(context.Background(), f.userID)
	byName := make(map[string][]domain.Weekday)
	for _, w := range workouts {
		byName[w.Name] = w.TrainingDays
	}
	assert.Equal(t, []domain.Weekday{domain.Tuesday, domain.Saturday}, byName["Dupla - A"])
	assert.Equal(t, []domain.Weekday{domain.Thursday}, byName["Dupla - B"])
}

func TestImportTemplate_UnmatchedExercisesSkipped(t *testing.T) {
	f := newImportFixture()
	knownID := f.addExercise("Supino Reto", "")

	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title: "Misto",
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Exercises: []domain.TemplateExercise{
				{Name: "Exercicio Inexistente"},
				{Name: "Supino Reto"},
			}},
		}},
	})

	result, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WorkoutsCreated)
	assert.Equal(t, 1, result.ExercisesImported)

	workouts, _ := f.workoutRepo.GetByOwnerID(context.Background(), f.userID)
	entries, _ := f.entryRepo.GetByWorkoutID(context.Background(), workouts[0].ID)
	require.Len(t, entries, 1)
	assert.Equal(t, knownID, entries[0].ExerciseID)
	assert.Equal(t, 1, entries[0].Order, "order is assigned after skipping, no gaps")
}

func TestImportTemplate_NothingMatchedCompensates(t *testing.T) {
	f := newImportFixture()
	f.addExercise("Supino Reto", "")

	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title: "Catálogo Antigo",
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Exercises: []domain.TemplateExercise{{Name: "Exercicio Um"}}},
			{DayLabel: "B", Exercises: []domain.TemplateExercise{{Name: "Exercicio Dois"}}},
		}},
	})

	result, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoMatchingExercises)

	workouts, _ := f.workoutRepo.GetByOwnerID(context.Background(), f.userID)
	assert.Empty(t, workouts, "both created workouts rolled back")
	assert.Len(t, f.workoutRepo.deletedIDs, 2)
}

func TestImportTemplate_MidWriteFailureCompensates(t *testing.T) {
	f := newImportFixture()
	f.addExercise("Supino Reto", "")
	f.addExercise("Agachamento Livre", "")

	templateID := f.addTemplate(&domain.TemplateWorkout{
		Title: "Dupla",
		Structure: domain.TemplateStructure{Days: []domain.TemplateDay{
			{DayLabel: "A", Exercises: []domain.TemplateExercise{{Name: "Supino Reto"}}},
			{DayLabel: "B", Exercises: []domain.TemplateExercise{{Name: "Agachamento Livre"}}},
		}},
	})

	// First workout persists fine; creating the second one fails.
	dbErr := errors.New("write concern error")
	f.workoutRepo.failAfter = 1
	f.workoutRepo.createErr = dbErr

	result, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)

	workouts, _ := f.workoutRepo.GetByOwnerID(context.Background(), f.userID)
	assert.Empty(t, workouts, "the surviving workout is compensated away")
	assert.Empty(t, f.entryRepo.entries)
}

func TestImportTemplate_EmptyTemplate(t *testing.T) {
	f := newImportFixture()
	templateID := f.addTemplate(&domain.TemplateWorkout{Title: "Vazio"})

	result, err := f.service.ImportTemplate(context.Background(), f.userID, templateID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

func TestImportTemplate_TemplateNotFound(t *testing.T) {
	f := newImportFixture()
	result, err := f.service.ImportTemplate(context.Background(), f.userID, primitive.NewObjectID())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestImportTemplate_MissingUser(t *testing.T) {
	f := newImportFixture()
	templateID := f.addTemplate(&domain.TemplateWorkout{Title: "Qualquer"})

	result, err := f.service.ImportTemplate(context.Background(), primitive.NilObjectID, templateID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrStaleAuth)
}

func TestDistributeTrainingDays_SuggestedThree(t *testing.T) {
	got := distributeTrainingDays(intPtr(3), 3, []domain.Weekday{domain.Tuesday})
	assert.Equal(t, [][]domain.Weekday{
		{domain.Monday}, {domain.Wednesday}, {domain.Friday},
	}, got, "suggested 3 days overrides the user's configured days")
}

func TestDistributeTrainingDays_NoConfiguredDays(t *testing.T) {
	got := distributeTrainingDays(nil, 2, nil)
	assert.Equal(t, [][]domain.Weekday{{}, {}}, got)
}

func TestDistributeTrainingDays_MoreDaysThanWorkouts(t *testing.T) {
	days := []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday}
	got := distributeTrainingDays(intPtr(5), 2, days)
	assert.Equal(t, [][]domain.Weekday{
		{domain.Monday, domain.Wednesday, domain.Friday},
		{domain.Tuesday, domain.Thursday},
	}, got)
}

func TestUniqueName(t *testing.T) {
	taken := map[string]bool{"Treino A": true, "Treino A (2)": true}
	assert.Equal(t, "Treino A (3)", uniqueName("Treino A", taken))
	assert.Equal(t, "Treino B", uniqueName("Treino B", taken))
}
