package service

import (
	"context"
	"testing"

	"dmarins/fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileService_UpdateNormalizesInput(t *testing.T) {
	repo := &fakeProfileRepo{profiles: make(map[primitive.ObjectID]*domain.Profile)}
	svc := NewProfileService(repo)
	userID := primitive.NewObjectID()

	profile, err := svc.Update(context.Background(), userID, ProfileUpdate{
		DisplayName:  "  Ana  ",
		WeightKg:     62,
		HeightCm:     165,
		AgeYears:     28,
		Sex:          "Female",
		Objectives:   []string{"Hipertrofia", "perder gordura"},
		Level:        "Iniciante",
		TrainingDays: []string{"seg", "qua", "sexta-feira", "seg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", profile.DisplayName)
	assert.Equal(t, "female", profile.Sex)
	assert.Equal(t, domain.LevelBeginner, profile.Level)
	assert.Equal(t, []domain.ObjectiveTag{domain.ObjectiveHypertrophy, domain.ObjectiveFatLoss}, profile.Objectives)
	// Unknown tokens and duplicates are dropped.
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Wednesday}, profile.TrainingDays)
}

func TestProfileService_GetMissing(t *testing.T) {
	repo := &fakeProfileRepo{profiles: make(map[primitive.ObjectID]*domain.Profile)}
	svc := NewProfileService(repo)

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_HealthMetrics(t *testing.T) {
	repo := &fakeProfileRepo{profiles: make(map[primitive.ObjectID]*domain.Profile)}
	svc := NewProfileService(repo)
	userID := primitive.NewObjectID()
	repo.profiles[userID] = &domain.Profile{
		UserID:     userID,
		WeightKg:   70,
		HeightCm:   175,
		AgeYears:   30,
		Sex:        "male",
		Level:      domain.LevelIntermediate,
		Objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy},
	}

	summary, err := svc.HealthMetrics(context.Background(), userID)
	require.NoError(t, err)

	require.NotNil(t, summary.BMI)
	assert.Equal(t, 22.9, *summary.BMI)
	assert.Equal(t, "Normal weight", summary.BMIClassification)
	require.NotNil(t, summary.WaterLiters)
	assert.Equal(t, 2.5, *summary.WaterLiters)
	// Hypertrophy objective triggers the muscle-gain surplus.
	require.NotNil(t, summary.Calories)
	assert.Equal(t, 2856, summary.Calories.Calories)
	require.NotNil(t, summary.Macros)
	assert.Equal(t, 140, summary.Macros.ProteinG)
	assert.Equal(t, 70, summary.Macros.FatG)
}

func TestProfileService_HealthMetricsPartialProfile(t *testing.T) {
	repo := &fakeProfileRepo{profiles: make(map[primitive.ObjectID]*domain.Profile)}
	svc := NewProfileService(repo)
	userID := primitive.NewObjectID()
	repo.profiles[userID] = &domain.Profile{UserID: userID, WeightKg: 80}

	summary, err := svc.HealthMetrics(context.Background(), userID)
	require.NoError(t, err)

	assert.Nil(t, summary.BMI, "no height, no BMI")
	assert.Equal(t, "Fill in your weight and height to see your BMI", summary.BMIClassification)
	require.NotNil(t, summary.WaterLiters)
	assert.Equal(t, 2.8, *summary.WaterLiters)
	assert.Nil(t, summary.Calories, "age missing")
	assert.Nil(t, summary.Macros)
}
