package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		raw    string
		want   Level
		wantOK bool
	}{
		{raw: "beginner", want: LevelBeginner, wantOK: true},
		{raw: "Iniciante", want: LevelBeginner, wantOK: true},
		{raw: "intermediario", want: LevelIntermediate, wantOK: true},
		{raw: "intermediário", want: LevelIntermediate, wantOK: true},
		{raw: " ADVANCED ", want: LevelAdvanced, wantOK: true},
		{raw: "avançado", want: LevelAdvanced, wantOK: true},
		{raw: "expert", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParseLevel(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseObjectives(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []ObjectiveTag
	}{
		{
			name: "json array string",
			raw:  `["ganhar_massa_muscular","perder_gordura"]`,
			want: []ObjectiveTag{ObjectiveHypertrophy, ObjectiveFatLoss},
		},
		{
			name: "comma joined string",
			raw:  "hipertrofia, ganhar_forca",
			want: []ObjectiveTag{ObjectiveHypertrophy, ObjectiveStrength},
		},
		{
			name: "single token",
			raw:  "emagrecer",
			want: []ObjectiveTag{ObjectiveFatLoss},
		},
		{
			name: "english keywords",
			raw:  "build muscle",
			want: []ObjectiveTag{ObjectiveHypertrophy},
		},
		{
			name: "duplicates collapse",
			raw:  `["hipertrofia","ganhar_massa_muscular"]`,
			want: []ObjectiveTag{ObjectiveHypertrophy},
		},
		{
			name: "empty defaults to health conditioning",
			raw:  "",
			want: []ObjectiveTag{ObjectiveHealthConditioning},
		},
		{
			name: "unknown defaults to health conditioning",
			raw:  "run a marathon backwards",
			want: []ObjectiveTag{ObjectiveHealthConditioning},
		},
		{
			name: "malformed json treated as plain token",
			raw:  "[not-json",
			want: []ObjectiveTag{ObjectiveHealthConditioning},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseObjectives(tc.raw))
		})
	}
}

func TestParseSplitType(t *testing.T) {
	got, ok := ParseSplitType("circuito")
	assert.True(t, ok)
	assert.Equal(t, SplitCircuit, got)

	got, ok = ParseSplitType("GRUPO_MUSCULAR")
	assert.True(t, ok)
	assert.Equal(t, SplitMuscleGroup, got)

	_, ok = ParseSplitType("crossfit")
	assert.False(t, ok)
}

func TestParseWeekdays(t *testing.T) {
	testCases := []struct {
		name string
		raw  []string
		want []Weekday
	}{
		{name: "english tokens", raw: []string{"mon", "wed", "fri"}, want: []Weekday{Monday, Wednesday, Friday}},
		{name: "portuguese synonyms", raw: []string{"seg", "qua", "sex"}, want: []Weekday{Monday, Wednesday, Friday}},
		{name: "drops unknown and duplicates", raw: []string{"mon", "seg", "blursday", "sun"}, want: []Weekday{Monday, Sunday}},
		{name: "empty", raw: nil, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseWeekdays(tc.raw))
		})
	}
}
