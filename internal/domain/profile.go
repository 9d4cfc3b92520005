// internal/domain/profile.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds a user's body metrics, goals, and training schedule.
// Created at onboarding, mutated via the profile screens, never deleted.
//
// Objectives, Level, and TrainingDays are stored in canonical form; free-text
// spellings are normalized at the ingestion boundary (see enums.go) so the
// recommendation scorer never has to branch on string shape.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	DisplayName  string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	WeightKg     float64            `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	HeightCm     float64            `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	AgeYears     int                `bson:"ageYears,omitempty" json:"ageYears,omitempty"`
	Sex          string             `bson:"sex,omitempty" json:"sex,omitempty"` // "male", "female", or unset
	Objectives   []ObjectiveTag     `bson:"objectives,omitempty" json:"objectives,omitempty"`
	Level        Level              `bson:"level,omitempty" json:"level,omitempty"`
	TrainingDays []Weekday          `bson:"trainingDays,omitempty" json:"trainingDays,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
