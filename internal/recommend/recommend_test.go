package recommend

import (
	"testing"

	"dmarins/fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplate(title string, objective domain.ObjectiveTag, level domain.Level, suggestedDays *int, split *domain.SplitType) domain.TemplateWorkout {
	return domain.TemplateWorkout{
		Title:                title,
		Objective:            objective,
		Level:                level,
		SuggestedDaysPerWeek: suggestedDays,
		SplitType:            split,
	}
}

func intPtr(v int) *int { return &v }

func splitPtr(s domain.SplitType) *domain.SplitType { return &s }

func TestRecommendEmptyCatalog(t *testing.T) {
	profile := &domain.Profile{Level: domain.LevelBeginner}
	assert.Nil(t, Recommend(profile, nil))
	assert.Nil(t, Recommend(profile, []domain.TemplateWorkout{}))
}

func TestRecommendBestOverallMatch(t *testing.T) {
	profile := &domain.Profile{
		Objectives:   []domain.ObjectiveTag{domain.ObjectiveHypertrophy},
		Level:        domain.LevelIntermediate,
		TrainingDays: []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
	}
	catalog := []domain.TemplateWorkout{
		newTemplate("Strength base", domain.ObjectiveStrength, domain.LevelIntermediate, intPtr(3), splitPtr(domain.SplitFullBody)),
		newTemplate("Hypertrophy base", domain.ObjectiveHypertrophy, domain.LevelIntermediate, intPtr(3), splitPtr(domain.SplitFullBody)),
	}

	got := Recommend(profile, catalog)
	require.NotNil(t, got)
	assert.Equal(t, "Hypertrophy base", got.Title)
}

func TestRecommendLevelFallback(t *testing.T) {
	t.Run("beginner falls back to intermediate only", func(t *testing.T) {
		profile := &domain.Profile{
			Objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy},
			Level:      domain.LevelBeginner,
		}
		catalog := []domain.TemplateWorkout{
			// Objective matches but the advanced entry must be filtered out.
			newTemplate("Advanced hypertrophy", domain.ObjectiveHypertrophy, domain.LevelAdvanced, intPtr(3), nil),
			newTemplate("Intermediate conditioning", domain.ObjectiveHealthConditioning, domain.LevelIntermediate, intPtr(3), nil),
		}

		got := Recommend(profile, catalog)
		require.NotNil(t, got)
		assert.Equal(t, "Intermediate conditioning", got.Title)
	})

	t.Run("advanced steps down to intermediate before beginner", func(t *testing.T) {
		profile := &domain.Profile{
			Objectives: []domain.ObjectiveTag{domain.ObjectiveStrength},
			Level:      domain.LevelAdvanced,
		}
		catalog := []domain.TemplateWorkout{
			newTemplate("Beginner strength", domain.ObjectiveStrength, domain.LevelBeginner, intPtr(3), nil),
			newTemplate("Intermediate base", domain.ObjectiveHealthConditioning, domain.LevelIntermediate, intPtr(3), nil),
		}

		got := Recommend(profile, catalog)
		require.NotNil(t, got)
		assert.Equal(t, "Intermediate base", got.Title)
	})

	t.Run("full catalog retained when no fallback pool exists", func(t *testing.T) {
		profile := &domain.Profile{Level: domain.LevelBeginner}
		catalog := []domain.TemplateWorkout{
			newTemplate("Advanced only", domain.ObjectiveHealthConditioning, domain.LevelAdvanced, intPtr(3), nil),
		}

		got := Recommend(profile, catalog)
		require.NotNil(t, got)
		assert.Equal(t, "Advanced only", got.Title)
	})
}

func TestRecommendTieBreakExactLevel(t *testing.T) {
	// Two identically scored intermediate templates: the exact-level tie-break
	// picks the first one in catalog order.
	profile := &domain.Profile{
		Objectives:   []domain.ObjectiveTag{domain.ObjectiveFatLoss},
		Level:        domain.LevelIntermediate,
		TrainingDays: []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
	}
	catalog := []domain.TemplateWorkout{
		newTemplate("Circuit A", domain.ObjectiveFatLoss, domain.LevelIntermediate, intPtr(3), splitPtr(domain.SplitCircuit)),
		newTemplate("Full body B", domain.ObjectiveFatLoss, domain.LevelIntermediate, intPtr(3), splitPtr(domain.SplitFullBody)),
	}

	got := Recommend(profile, catalog)
	require.NotNil(t, got)
	assert.Equal(t, "Circuit A", got.Title)
}

func TestRecommendTieBreakClosestDays(t *testing.T) {
	// No level set, so the tie falls through to the closest-days rule.
	// Both templates score 5: A gets +2 split, B gets +2 days proximity.
	profile := &domain.Profile{
		Objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy},
	}
	catalog := []domain.TemplateWorkout{
		newTemplate("Six day split", domain.ObjectiveHypertrophy, domain.LevelIntermediate, intPtr(6), splitPtr(domain.SplitFullBody)),
		newTemplate("Four day split", domain.ObjectiveHypertrophy, domain.LevelAdvanced, intPtr(4), nil),
	}

	got := Recommend(profile, catalog)
	require.NotNil(t, got)
	assert.Equal(t, "Four day split", got.Title)
}

func TestRecommendDefaultsEmptyObjectivesAndDays(t *testing.T) {
	// Empty objectives default to health_conditioning and empty training days
	// count as 3.
	profile := &domain.Profile{Level: domain.LevelBeginner}
	catalog := []domain.TemplateWorkout{
		newTemplate("Muscle program", domain.ObjectiveHypertrophy, domain.LevelBeginner, intPtr(5), nil),
		newTemplate("Health program", domain.ObjectiveHealthConditioning, domain.LevelBeginner, intPtr(3), nil),
	}

	got := Recommend(profile, catalog)
	require.NotNil(t, got)
	assert.Equal(t, "Health program", got.Title)
}

func TestScoreObjectives(t *testing.T) {
	hypertrophy := newTemplate("h", domain.ObjectiveHypertrophy, domain.LevelBeginner, nil, nil)
	strength := newTemplate("s", domain.ObjectiveStrength, domain.LevelBeginner, nil, nil)

	testCases := []struct {
		name       string
		template   domain.TemplateWorkout
		objectives []domain.ObjectiveTag
		want       int
	}{
		{name: "exact match", template: hypertrophy, objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy}, want: 3},
		{name: "complementary pair", template: strength, objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy}, want: 2},
		{name: "no match", template: hypertrophy, objectives: []domain.ObjectiveTag{domain.ObjectiveFatLoss}, want: 0},
		{
			name:     "multi objective bonus",
			template: strength,
			// strength exact (+3) plus hypertrophy complement (+2) plus bonus (+1)
			objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy, domain.ObjectiveStrength},
			want:       6,
		},
		{
			name:       "bonus requires running score of at least 3",
			template:   strength,
			objectives: []domain.ObjectiveTag{domain.ObjectiveHypertrophy, domain.ObjectiveFatLoss},
			want:       2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoreObjectives(&tc.template, tc.objectives))
		})
	}
}

func TestScoreDays(t *testing.T) {
	testCases := []struct {
		name      string
		suggested *int
		userDays  int
		want      int
	}{
		{name: "exact", suggested: intPtr(3), userDays: 3, want: 3},
		{name: "off by one", suggested: intPtr(4), userDays: 3, want: 2},
		{name: "off by two", suggested: intPtr(5), userDays: 3, want: 1},
		{name: "off by three", suggested: intPtr(6), userDays: 3, want: 0},
		{name: "no suggestion", suggested: nil, userDays: 3, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			template := newTemplate("t", domain.ObjectiveStrength, domain.LevelBeginner, tc.suggested, nil)
			assert.Equal(t, tc.want, scoreDays(&template, tc.userDays))
		})
	}
}

func TestScoreSplitType(t *testing.T) {
	testCases := []struct {
		name     string
		split    *domain.SplitType
		userDays int
		want     int
	}{
		{name: "full body for 3 days", split: splitPtr(domain.SplitFullBody), userDays: 3, want: 2},
		{name: "circuit for 2 days", split: splitPtr(domain.SplitCircuit), userDays: 2, want: 2},
		{name: "upper lower for 4 days", split: splitPtr(domain.SplitUpperLower), userDays: 4, want: 2},
		{name: "upper lower for 3 days", split: splitPtr(domain.SplitUpperLower), userDays: 3, want: 0},
		{name: "push pull legs for 5 days", split: splitPtr(domain.SplitPushPullLegs), userDays: 5, want: 2},
		{name: "muscle group for 6 days", split: splitPtr(domain.SplitMuscleGroup), userDays: 6, want: 2},
		{name: "no split", split: nil, userDays: 3, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			template := newTemplate("t", domain.ObjectiveStrength, domain.LevelBeginner, nil, tc.split)
			assert.Equal(t, tc.want, scoreSplitType(&template, tc.userDays))
		})
	}
}
