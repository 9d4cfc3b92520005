package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a user-owned, mutable workout. Created either by the manual
// builder or by importing a template; never shared across users.
type Workout struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name         string             `bson:"name" json:"name"`
	TrainingDays []Weekday          `bson:"trainingDays" json:"trainingDays"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutExercise is one exercise row inside a workout, referencing the
// library entry. Order values are contiguous 1..N within a workout, assigned
// at creation/import time; no two entries in the same workout share one.
type WorkoutExercise struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID  primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Order      int                `bson:"order" json:"order"`
	Sets       int                `bson:"sets" json:"sets"`
	Reps       int                `bson:"reps" json:"reps"`
	Load       *float64           `bson:"load,omitempty" json:"load,omitempty"` // Unset on import; user fills in later
	Notes      *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
