// shared/models/team.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Team is a group of users competing on the leaderboard. Name is the natural key
// other documents use to reference it.
type Team struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// GetID returns the document identifier.
func (t *Team) GetID() primitive.ObjectID { return t.ID }

// SetID assigns the document identifier.
func (t *Team) SetID(id primitive.ObjectID) { t.ID = id }
