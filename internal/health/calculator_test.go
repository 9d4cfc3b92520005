package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	testCases := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     *float64
	}{
		{name: "typical values", weightKg: 70, heightCm: 175, want: ptr(22.9)},
		{name: "rounds to one decimal", weightKg: 80, heightCm: 180, want: ptr(24.7)},
		{name: "zero weight", weightKg: 0, heightCm: 175, want: nil},
		{name: "zero height", weightKg: 70, heightCm: 0, want: nil},
		{name: "negative weight", weightKg: -5, heightCm: 175, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMI(tc.weightKg, tc.heightCm)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tc.want, *got, 0.001)
		})
	}
}

func TestBMIMonotonicity(t *testing.T) {
	// Increasing weight raises BMI; increasing height lowers it.
	low := BMI(60, 175)
	high := BMI(80, 175)
	require.NotNil(t, low)
	require.NotNil(t, high)
	assert.Greater(t, *high, *low)

	short := BMI(70, 160)
	tall := BMI(70, 190)
	require.NotNil(t, short)
	require.NotNil(t, tall)
	assert.Less(t, *tall, *short)
}

func TestClassifyBMI(t *testing.T) {
	testCases := []struct {
		name string
		bmi  *float64
		want string
	}{
		{name: "missing data prompt", bmi: nil, want: "Fill in your weight and height to see your BMI"},
		{name: "underweight", bmi: ptr(17.0), want: "Underweight"},
		{name: "normal lower bound inclusive", bmi: ptr(18.5), want: "Normal weight"},
		{name: "normal upper", bmi: ptr(24.9), want: "Normal weight"},
		{name: "overweight lower bound inclusive", bmi: ptr(25.0), want: "Overweight"},
		{name: "obese lower bound inclusive", bmi: ptr(30.0), want: "Obese"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyBMI(tc.bmi))
		})
	}
}

func TestDailyWaterLiters(t *testing.T) {
	// 70 * 35 = 2450 ml = 2.45 L, which rounds half away from zero to 2.5.
	got := DailyWaterLiters(70)
	require.NotNil(t, got)
	assert.InDelta(t, 2.5, *got, 0.001)

	assert.Nil(t, DailyWaterLiters(0))
	assert.Nil(t, DailyWaterLiters(-10))
}

func TestDailyCalories(t *testing.T) {
	testCases := []struct {
		name            string
		in              CalorieInput
		wantCalories    int
		wantDescription string
		wantNil         bool
	}{
		{
			name: "intermediate male muscle gain",
			in: CalorieInput{
				WeightKg: 70, HeightCm: 175, AgeYears: 30,
				Sex: "male", Level: "intermediate", Objective: "muscle gain",
			},
			// BMR 1648.75 * 1.55 = 2555.5625, +300 = 2855.5625
			wantCalories:    2856,
			wantDescription: "For muscle gain at your activity level",
		},
		{
			name: "female formula",
			in: CalorieInput{
				WeightKg: 60, HeightCm: 165, AgeYears: 25,
				Sex: "female", Level: "beginner", Objective: "",
			},
			// BMR = 600 + 1031.25 - 125 - 161 = 1345.25, * 1.375 = 1849.71875
			wantCalories:    1850,
			wantDescription: "To maintain weight at your activity level",
		},
		{
			name: "weight loss subtracts",
			in: CalorieInput{
				WeightKg: 90, HeightCm: 180, AgeYears: 40,
				Sex: "male", Level: "advanced", Objective: "perder_gordura",
			},
			// BMR = 900 + 1125 - 200 + 5 = 1830, * 1.725 = 3156.75, -300 = 2856.75
			wantCalories:    2857,
			wantDescription: "For weight loss at your activity level",
		},
		{
			name: "portuguese level synonym",
			in: CalorieInput{
				WeightKg: 70, HeightCm: 175, AgeYears: 30,
				Sex: "male", Level: "Avançado", Objective: "",
			},
			// BMR 1648.75 * 1.725 = 2844.09375
			wantCalories:    2844,
			wantDescription: "To maintain weight at your activity level",
		},
		{
			name: "unrecognized level defaults to intermediate",
			in: CalorieInput{
				WeightKg: 70, HeightCm: 175, AgeYears: 30,
				Sex: "male", Level: "expert", Objective: "",
			},
			wantCalories:    2556,
			wantDescription: "To maintain weight at your activity level",
		},
		{
			name:    "missing age",
			in:      CalorieInput{WeightKg: 70, HeightCm: 175, AgeYears: 0},
			wantNil: true,
		},
		{
			name:    "missing weight",
			in:      CalorieInput{HeightCm: 175, AgeYears: 30},
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DailyCalories(tc.in)
			if tc.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.wantCalories, got.Calories)
			assert.Equal(t, tc.wantDescription, got.Description)
		})
	}
}

func TestMacros(t *testing.T) {
	testCases := []struct {
		name      string
		calories  int
		weightKg  float64
		objective string
		want      *MacroSplit
	}{
		{
			name:     "maintenance defaults",
			calories: 2500, weightKg: 70, objective: "",
			// protein 112g (448 kcal), fat 70g (630 kcal), carbs (2500-1078)/4 = 355.5
			want: &MacroSplit{CarbsG: 356, ProteinG: 112, FatG: 70},
		},
		{
			name:     "muscle gain raises protein",
			calories: 2856, weightKg: 70, objective: "ganhar_massa",
			// protein 140g (560), fat 70g (630), carbs (2856-1190)/4 = 416.5
			want: &MacroSplit{CarbsG: 417, ProteinG: 140, FatG: 70},
		},
		{
			name:     "weight loss lowers fat",
			calories: 1800, weightKg: 80, objective: "emagrecer",
			// protein 160g (640), fat 64g (576), carbs (1800-1216)/4 = 146
			want: &MacroSplit{CarbsG: 146, ProteinG: 160, FatG: 64},
		},
		{
			name:     "carbs floored at zero",
			calories: 900, weightKg: 80, objective: "emagrecer",
			// protein+fat calories exceed the total; carbs must not go negative
			want: &MacroSplit{CarbsG: 0, ProteinG: 160, FatG: 64},
		},
		{name: "zero calories", calories: 0, weightKg: 70, want: nil},
		{name: "zero weight", calories: 2000, weightKg: 0, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Macros(tc.calories, tc.weightKg, tc.objective)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func ptr(v float64) *float64 { return &v }
