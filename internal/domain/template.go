// internal/domain/template.go
package domain

import (
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateWorkout is a read-only suggested workout program that a user may
// import into their own workout list. The day structure is stored as an
// embedded document rather than normalized rows; exercises inside it are
// matched against the library by name at import time.
type TemplateWorkout struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title                string             `bson:"title" json:"title"`
	ShortDescription     string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Objective            ObjectiveTag       `bson:"objective" json:"objective"`
	Level                Level              `bson:"level" json:"level"`
	SuggestedDaysPerWeek *int               `bson:"suggestedDaysPerWeek,omitempty" json:"suggestedDaysPerWeek,omitempty"`
	SplitType            *SplitType         `bson:"splitType,omitempty" json:"splitType,omitempty"`
	Structure            TemplateStructure  `bson:"structure" json:"structure"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
}

// TemplateStructure wraps the ordered day list, mirroring the embedded shape
// the catalog is seeded with.
type TemplateStructure struct {
	Days []TemplateDay `bson:"days" json:"days"`
}

// TemplateDay is one training day within a template, e.g. "A" or "Dia 1".
type TemplateDay struct {
	DayLabel  string             `bson:"dayLabel" json:"dayLabel"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Exercises []TemplateExercise `bson:"exercises" json:"exercises"`
}

// TemplateExercise is an abstract exercise reference inside a template day.
// Reps may be seeded as a plain number, a range string like "8-12", or a
// duration string like "30s"; RepCount resolves all three.
type TemplateExercise struct {
	Name        string `bson:"name" json:"name"`
	Sets        int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps        any    `bson:"reps,omitempty" json:"reps,omitempty"`
	RestPeriod  string `bson:"restPeriod,omitempty" json:"restPeriod,omitempty"`
	MuscleGroup string `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"` // Display hint only
}

const defaultRepCount = 10

var firstNumberPattern = regexp.MustCompile(`\d+`)

// SetCount returns the configured set count, defaulting to 3 when absent.
func (e TemplateExercise) SetCount() int {
	if e.Sets <= 0 {
		return 3
	}
	return e.Sets
}

// RepCount resolves the repetition count. Numeric values are used directly;
// strings yield their first embedded number ("8-12" -> 8, "30s" -> 30).
// Falls back to 10 when no number can be extracted.
func (e TemplateExercise) RepCount() int {
	switch reps := e.Reps.(type) {
	case int:
		return reps
	case int32:
		return int(reps)
	case int64:
		return int(reps)
	case float64:
		return int(reps)
	case string:
		if match := firstNumberPattern.FindString(reps); match != "" {
			if n, err := strconv.Atoi(match); err == nil {
				return n
			}
		}
	}
	return defaultRepCount
}
