// shared/models/workout.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Difficulty labels used by workouts.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Workout is a suggested exercise routine. It references nothing.
type Workout struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
}

func (w *Workout) GetID() primitive.ObjectID   { return w.ID }
func (w *Workout) SetID(id primitive.ObjectID) { w.ID = id }
