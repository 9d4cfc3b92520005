// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single entry in the exercise library. The library is seeded
// externally and read-only from the application's perspective; template
// imports resolve against it by name.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscleGroup" json:"muscleGroup"` // e.g., "Chest", "Legs", "Back"
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	Explanation string             `bson:"explanation,omitempty" json:"explanation,omitempty"` // Execution instructions
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
