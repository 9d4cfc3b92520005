// Package health provides the body-metric and nutrition calculators shown on
// the health screen. All functions are pure and never fail: missing or
// invalid inputs yield a nil result the caller must branch on.
package health

import (
	"math"
	"strings"

	"dmarins/fittrack/internal/domain"
)

// CalorieInput carries the profile fields the daily-calorie estimate needs.
// Zero values mark missing data.
type CalorieInput struct {
	WeightKg  float64
	HeightCm  float64
	AgeYears  int
	Sex       string // "female"/"feminino" selects the female formula; anything else the male one
	Level     string
	Objective string
}

// CalorieResult is the estimated daily intake plus the adjustment applied.
type CalorieResult struct {
	Calories    int    `json:"calories"`
	Description string `json:"description"`
}

// MacroSplit is the daily macronutrient distribution in grams.
type MacroSplit struct {
	CarbsG   int `json:"carbsG"`
	ProteinG int `json:"proteinG"`
	FatG     int `json:"fatG"`
}

// Activity multipliers applied on top of the basal metabolic rate.
const (
	activityBeginner     = 1.375
	activityIntermediate = 1.55
	activityAdvanced     = 1.725
)

// Objective adjustment applied to maintenance calories.
const objectiveAdjustment = 300

var weightLossKeywords = []string{"perder", "emagrecer", "gordura", "fat", "lose", "cut"}
var muscleGainKeywords = []string{"ganhar", "massa", "muscle", "gain", "hipertrofia", "hypertrophy"}

// BMI computes the body mass index from weight in kg and height in cm,
// rounded to one decimal place. Returns nil when either input is missing,
// zero, or negative.
func BMI(weightKg, heightCm float64) *float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	heightM := heightCm / 100
	bmi := round1(weightKg / (heightM * heightM))
	return &bmi
}

// ClassifyBMI maps a BMI value onto its standard band. Band boundaries are
// inclusive on the lower bound.
func ClassifyBMI(bmi *float64) string {
	if bmi == nil {
		return "Fill in your weight and height to see your BMI"
	}
	switch {
	case *bmi < 18.5:
		return "Underweight"
	case *bmi < 25:
		return "Normal weight"
	case *bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// DailyWaterLiters estimates the recommended daily water intake
// (35 ml per kg of body weight), in liters rounded to one decimal place.
func DailyWaterLiters(weightKg float64) *float64 {
	if weightKg <= 0 {
		return nil
	}
	liters := round1(weightKg * 35 / 1000)
	return &liters
}

// DailyCalories estimates daily caloric intake using the Mifflin-St Jeor
// basal metabolic rate, an activity multiplier keyed on training level, and a
// +-300 kcal adjustment when the objective indicates muscle gain or weight
// loss. Returns nil when weight, height, or age is missing or non-positive.
func DailyCalories(in CalorieInput) *CalorieResult {
	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.AgeYears <= 0 {
		return nil
	}

	var bmr float64
	sex := strings.ToLower(strings.TrimSpace(in.Sex))
	if sex == "female" || sex == "feminino" {
		bmr = 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.AgeYears) - 161
	} else {
		// Male formula is the default for unset or other values.
		bmr = 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.AgeYears) + 5
	}

	factor := activityIntermediate // default when level is unrecognized
	if level, ok := domain.ParseLevel(in.Level); ok {
		switch level {
		case domain.LevelBeginner:
			factor = activityBeginner
		case domain.LevelIntermediate:
			factor = activityIntermediate
		case domain.LevelAdvanced:
			factor = activityAdvanced
		}
	}

	calories := bmr * factor
	description := "To maintain weight at your activity level"

	objective := strings.ToLower(in.Objective)
	if containsAny(objective, weightLossKeywords) {
		calories -= objectiveAdjustment
		description = "For weight loss at your activity level"
	} else if containsAny(objective, muscleGainKeywords) {
		calories += objectiveAdjustment
		description = "For muscle gain at your activity level"
	}

	return &CalorieResult{
		Calories:    int(math.Round(calories)),
		Description: description,
	}
}

// Macros distributes daily calories across macronutrients. Protein defaults
// to 1.6 g/kg (2.0 g/kg for muscle gain or weight loss), fat to 1.0 g/kg
// (0.8 g/kg for weight loss); carbs absorb the remaining calories, floored at
// zero. Returns nil when weight or calories is missing or non-positive.
func Macros(calories int, weightKg float64, objective string) *MacroSplit {
	if weightKg <= 0 || calories <= 0 {
		return nil
	}

	proteinFactor := 1.6
	fatFactor := 1.0

	lowered := strings.ToLower(objective)
	if containsAny(lowered, weightLossKeywords) {
		proteinFactor = 2.0
		fatFactor = 0.8
	} else if containsAny(lowered, muscleGainKeywords) {
		proteinFactor = 2.0
	}

	proteinG := proteinFactor * weightKg
	fatG := fatFactor * weightKg

	carbCalories := float64(calories) - (proteinG*4 + fatG*9)
	carbsG := math.Max(0, carbCalories/4)

	return &MacroSplit{
		CarbsG:   int(math.Round(carbsG)),
		ProteinG: int(math.Round(proteinG)),
		FatG:     int(math.Round(fatG)),
	}
}

// round1 rounds half away from zero at one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
