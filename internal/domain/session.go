package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutSession records one completed run of a workout.
type WorkoutSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutID   primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	PerformedAt time.Time          `bson:"performedAt" json:"performedAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
