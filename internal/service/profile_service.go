package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/health"
	"dmarins/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileUpdate carries the raw profile fields as submitted by the client.
// Level, objectives, and training days arrive as free text and are normalized
// here before anything is stored.
type ProfileUpdate struct {
	DisplayName  string
	WeightKg     float64
	HeightCm     float64
	AgeYears     int
	Sex          string
	Objectives   []string
	Level        string
	TrainingDays []string
}

// HealthSummary aggregates every calculator result for the health screen.
// Pointer fields are nil when the profile lacks the inputs to compute them.
type HealthSummary struct {
	BMI               *float64              `json:"bmi,omitempty"`
	BMIClassification string                `json:"bmiClassification"`
	WaterLiters       *float64              `json:"waterLiters,omitempty"`
	Calories          *health.CalorieResult `json:"calories,omitempty"`
	Macros            *health.MacroSplit    `json:"macros,omitempty"`
}

// ProfileService defines operations on the user's own profile.
type ProfileService interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	Update(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.Profile, error)
	HealthMetrics(ctx context.Context, userID primitive.ObjectID) (*HealthSummary, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update normalizes the submitted fields and upserts the profile, so the
// first save after registration and every later edit go through one path.
// Unrecognized level spellings are stored as unset; unknown weekday tokens
// are dropped.
func (s *profileService) Update(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:      userID,
		DisplayName: strings.TrimSpace(update.DisplayName),
		WeightKg:    update.WeightKg,
		HeightCm:    update.HeightCm,
		AgeYears:    update.AgeYears,
		Sex:         strings.ToLower(strings.TrimSpace(update.Sex)),
		UpdatedAt:   time.Now(),
	}

	if level, ok := domain.ParseLevel(update.Level); ok {
		profile.Level = level
	}
	profile.Objectives = domain.ObjectivesFromTokens(update.Objectives)
	profile.TrainingDays = domain.ParseWeekdays(update.TrainingDays)

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// HealthMetrics computes the health-screen summary from the stored profile.
// The calorie and macro estimates key their objective branch off the
// canonical objective tags joined into one string, so a hypertrophy profile
// hits the muscle-gain keywords and a fat-loss one the weight-loss keywords.
func (s *profileService) HealthMetrics(ctx context.Context, userID primitive.ObjectID) (*HealthSummary, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	objective := objectiveText(profile.Objectives)
	bmi := health.BMI(profile.WeightKg, profile.HeightCm)

	summary := &HealthSummary{
		BMI:               bmi,
		BMIClassification: health.ClassifyBMI(bmi),
		WaterLiters:       health.DailyWaterLiters(profile.WeightKg),
	}

	calories := health.DailyCalories(health.CalorieInput{
		WeightKg:  profile.WeightKg,
		HeightCm:  profile.HeightCm,
		AgeYears:  profile.AgeYears,
		Sex:       profile.Sex,
		Level:     string(profile.Level),
		Objective: objective,
	})
	summary.Calories = calories

	if calories != nil {
		summary.Macros = health.Macros(calories.Calories, profile.WeightKg, objective)
	}

	return summary, nil
}

func objectiveText(tags []domain.ObjectiveTag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = string(tag)
	}
	return strings.Join(parts, ", ")
}
