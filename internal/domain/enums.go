package domain

import (
	"encoding/json"
	"strings"
)

// Level is the canonical training experience level.
// Profile imports and the template catalog both carry free-text spellings
// (English and Portuguese); ParseLevel maps them onto these constants.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// levelSynonyms maps every spelling observed in stored data to a canonical level.
var levelSynonyms = map[string]Level{
	"beginner":      LevelBeginner,
	"iniciante":     LevelBeginner,
	"novice":        LevelBeginner,
	"intermediate":  LevelIntermediate,
	"intermediario": LevelIntermediate,
	"intermediário": LevelIntermediate,
	"advanced":      LevelAdvanced,
	"avancado":      LevelAdvanced,
	"avançado":      LevelAdvanced,
}

// ParseLevel normalizes a free-text level spelling.
// The second return value reports whether the input was recognized.
func ParseLevel(raw string) (Level, bool) {
	level, ok := levelSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return level, ok
}

// ObjectiveTag is the canonical fitness-goal category.
type ObjectiveTag string

const (
	ObjectiveHypertrophy        ObjectiveTag = "hypertrophy"
	ObjectiveFatLoss            ObjectiveTag = "fat_loss"
	ObjectiveStrength           ObjectiveTag = "strength"
	ObjectiveHealthConditioning ObjectiveTag = "health_conditioning"
)

// objectiveFragments holds the keyword fragments recognized for each tag.
// Matching is case-insensitive substring matching, so a raw objective like
// "ganhar_massa_muscular" or "build muscle" lands on hypertrophy.
var objectiveFragments = []struct {
	tag       ObjectiveTag
	fragments []string
}{
	{ObjectiveHypertrophy, []string{"hipertrofia", "hypertrophy", "massa", "muscle"}},
	{ObjectiveFatLoss, []string{"emagrecer", "perder", "gordura", "fat", "lose", "weight_loss"}},
	{ObjectiveStrength, []string{"forca", "força", "strength"}},
	{ObjectiveHealthConditioning, []string{"condicionamento", "resistencia", "saude", "conditioning", "endurance", "health"}},
}

// ParseObjectives normalizes the stored objective representation into a set of
// canonical tags. The raw value may be a JSON-array-encoded string, a
// comma-joined string, or a single token; all three shapes appear in legacy
// profile rows. Returns {health_conditioning} when nothing matches.
func ParseObjectives(raw string) []ObjectiveTag {
	var tokens []string

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &tokens); err != nil {
			tokens = []string{trimmed}
		}
	} else if trimmed != "" {
		tokens = strings.Split(trimmed, ",")
	}

	return ObjectivesFromTokens(tokens)
}

// ObjectivesFromTokens maps raw objective tokens onto canonical tags,
// de-duplicated, preserving first-match order.
func ObjectivesFromTokens(tokens []string) []ObjectiveTag {
	var tags []ObjectiveTag
	seen := make(map[ObjectiveTag]bool)

	for _, token := range tokens {
		lowered := strings.ToLower(strings.TrimSpace(token))
		if lowered == "" {
			continue
		}
		for _, entry := range objectiveFragments {
			for _, fragment := range entry.fragments {
				if strings.Contains(lowered, fragment) {
					if !seen[entry.tag] {
						seen[entry.tag] = true
						tags = append(tags, entry.tag)
					}
					break
				}
			}
		}
	}

	if len(tags) == 0 {
		return []ObjectiveTag{ObjectiveHealthConditioning}
	}
	return tags
}

// SplitType labels how a template distributes muscle groups across the week.
type SplitType string

const (
	SplitFullBody     SplitType = "full_body"
	SplitCircuit      SplitType = "circuit"
	SplitUpperLower   SplitType = "upper_lower"
	SplitPushPullLegs SplitType = "push_pull_legs"
	SplitMuscleGroup  SplitType = "muscle_group"
)

var splitSynonyms = map[string]SplitType{
	"full_body":      SplitFullBody,
	"circuit":        SplitCircuit,
	"circuito":       SplitCircuit,
	"upper_lower":    SplitUpperLower,
	"push_pull_legs": SplitPushPullLegs,
	"muscle_group":   SplitMuscleGroup,
	"grupo_muscular": SplitMuscleGroup,
}

// ParseSplitType normalizes a split-type token from the template catalog.
func ParseSplitType(raw string) (SplitType, bool) {
	split, ok := splitSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return split, ok
}

// Weekday is a fixed three-letter lowercase day token. English tokens are the
// canonical set; the Portuguese abbreviations used by older profile rows are
// accepted as synonyms and normalized on ingestion.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

var weekdaySynonyms = map[string]Weekday{
	"mon": Monday, "seg": Monday,
	"tue": Tuesday, "ter": Tuesday,
	"wed": Wednesday, "qua": Wednesday,
	"thu": Thursday, "qui": Thursday,
	"fri": Friday, "sex": Friday,
	"sat": Saturday, "sab": Saturday,
	"sun": Sunday, "dom": Sunday,
}

// ParseWeekday normalizes a day token.
func ParseWeekday(raw string) (Weekday, bool) {
	day, ok := weekdaySynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return day, ok
}

// ParseWeekdays normalizes a list of day tokens, silently dropping
// unrecognized entries and duplicates.
func ParseWeekdays(raw []string) []Weekday {
	var days []Weekday
	seen := make(map[Weekday]bool)
	for _, token := range raw {
		day, ok := ParseWeekday(token)
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}
