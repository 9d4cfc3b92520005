// Package recommend ranks the template-workout catalog against a user
// profile and picks the single best match. The scoring is a deterministic
// multi-criteria ranking: no randomness, no external state.
package recommend

import (
	"sort"

	"dmarins/fittrack/internal/domain"
)

// scoredTemplate pairs a template with its computed score for the duration of
// one recommendation pass.
type scoredTemplate struct {
	template *domain.TemplateWorkout
	score    int
}

// Recommend returns the best-matching template for the profile, or nil when
// the catalog is empty. The profile's objectives, level, and training days
// are expected in canonical form (normalized at the ingestion boundary).
func Recommend(profile *domain.Profile, catalog []domain.TemplateWorkout) *domain.TemplateWorkout {
	if len(catalog) == 0 {
		return nil
	}

	objectives := profile.Objectives
	if len(objectives) == 0 {
		objectives = []domain.ObjectiveTag{domain.ObjectiveHealthConditioning}
	}
	userDays := len(profile.TrainingDays)
	if userDays == 0 {
		userDays = 3
	}

	pool := filterByLevel(catalog, profile.Level)

	scored := make([]scoredTemplate, 0, len(pool))
	for i := range pool {
		template := &pool[i]
		total := scoreObjectives(template, objectives) +
			scoreLevel(template, profile.Level) +
			scoreDays(template, userDays) +
			scoreSplitType(template, userDays)
		scored = append(scored, scoredTemplate{template: template, score: total})
	}

	// Stable sort keeps catalog order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Tie-break only when the top two scores are equal.
	if len(scored) > 1 && scored[0].score == scored[1].score {
		return breakTie(scored, profile.Level, userDays)
	}

	return scored[0].template
}

// filterByLevel narrows the catalog with strict cascading fallback rules
// rather than a plain filter. An unset user level keeps the full catalog.
func filterByLevel(catalog []domain.TemplateWorkout, userLevel domain.Level) []domain.TemplateWorkout {
	if userLevel == "" {
		return catalog
	}

	exact := filter(catalog, userLevel)
	if len(exact) > 0 {
		return exact
	}

	switch userLevel {
	case domain.LevelBeginner:
		// Beginners step up to intermediate templates when no beginner ones exist.
		if intermediate := filter(catalog, domain.LevelIntermediate); len(intermediate) > 0 {
			return intermediate
		}
		return catalog
	case domain.LevelIntermediate:
		// Intermediate users accept the full pool as fallback.
		return catalog
	case domain.LevelAdvanced:
		// Advanced users step down to intermediate before anything else;
		// beginner templates only appear when nothing else is left.
		if intermediate := filter(catalog, domain.LevelIntermediate); len(intermediate) > 0 {
			return intermediate
		}
		return catalog
	}

	return catalog
}

func filter(catalog []domain.TemplateWorkout, level domain.Level) []domain.TemplateWorkout {
	var out []domain.TemplateWorkout
	for _, template := range catalog {
		if template.Level == level {
			out = append(out, template)
		}
	}
	return out
}

// scoreObjectives awards +3 per user tag equal to the template objective and
// +2 for the complementary hypertrophy/strength pair, with a +1 bonus when a
// multi-objective user already scored an exact match.
func scoreObjectives(template *domain.TemplateWorkout, objectives []domain.ObjectiveTag) int {
	score := 0
	for _, objective := range objectives {
		switch {
		case objective == template.Objective:
			score += 3
		case objective == domain.ObjectiveHypertrophy && template.Objective == domain.ObjectiveStrength,
			objective == domain.ObjectiveStrength && template.Objective == domain.ObjectiveHypertrophy:
			score += 2
		}
	}
	if len(objectives) > 1 && score >= 3 {
		score++
	}
	return score
}

func scoreLevel(template *domain.TemplateWorkout, userLevel domain.Level) int {
	if userLevel != "" && template.Level == userLevel {
		return 2
	}
	return 0
}

// scoreDays rewards templates whose suggested weekly frequency is close to
// the user's configured day count.
func scoreDays(template *domain.TemplateWorkout, userDays int) int {
	if template.SuggestedDaysPerWeek == nil {
		return 0
	}
	switch diff := abs(userDays - *template.SuggestedDaysPerWeek); diff {
	case 0:
		return 3
	case 1:
		return 2
	case 2:
		return 1
	default:
		return 0
	}
}

// scoreSplitType rewards split methodologies that suit the user's weekly
// frequency: full-body/circuit up to 3 days, upper/lower at 4, push/pull/legs
// or per-muscle-group at 5 and above.
func scoreSplitType(template *domain.TemplateWorkout, userDays int) int {
	if template.SplitType == nil {
		return 0
	}
	split := *template.SplitType
	switch {
	case userDays <= 3 && (split == domain.SplitFullBody || split == domain.SplitCircuit):
		return 2
	case userDays == 4 && split == domain.SplitUpperLower:
		return 2
	case userDays >= 5 && (split == domain.SplitPushPullLegs || split == domain.SplitMuscleGroup):
		return 2
	}
	return 0
}

// breakTie resolves equal top scores: first an exact level match among the
// tied set (catalog order), then the smallest suggested-days distance found
// by a left-to-right scan. Templates without a suggested-days value count as
// distance zero in the second rule.
func breakTie(scored []scoredTemplate, userLevel domain.Level, userDays int) *domain.TemplateWorkout {
	top := scored[0].score
	var tied []scoredTemplate
	for _, entry := range scored {
		if entry.score != top {
			break
		}
		tied = append(tied, entry)
	}

	if userLevel != "" {
		for _, entry := range tied {
			if entry.template.Level == userLevel {
				return entry.template
			}
		}
	}

	best := tied[0]
	bestDiff := daysDiff(best.template, userDays)
	for _, entry := range tied[1:] {
		if diff := daysDiff(entry.template, userDays); diff < bestDiff {
			best = entry
			bestDiff = diff
		}
	}
	return best.template
}

func daysDiff(template *domain.TemplateWorkout, userDays int) int {
	if template.SuggestedDaysPerWeek == nil {
		return 0
	}
	return abs(*template.SuggestedDaysPerWeek - userDays)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
