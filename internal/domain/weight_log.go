package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightLog is one weight/photo progress entry. PhotoKey, when set, points at
// an object in the progress-photo bucket; the API layer exchanges it for a
// presigned download URL.
type WeightLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	WeightKg  float64            `bson:"weightKg" json:"weightKg"`
	LoggedAt  time.Time          `bson:"loggedAt" json:"loggedAt"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoKey  string             `bson:"photoKey,omitempty" json:"-"` // Internal storage key, never exposed directly
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
