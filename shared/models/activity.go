// shared/models/activity.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Activity is a single logged exercise session. User references User.Name.
type Activity struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User     string             `bson:"user" json:"user"`
	Type     string             `bson:"type" json:"type"`
	Duration int                `bson:"duration" json:"duration"` // minutes
}

func (a *Activity) GetID() primitive.ObjectID   { return a.ID }
func (a *Activity) SetID(id primitive.ObjectID) { a.ID = id }
