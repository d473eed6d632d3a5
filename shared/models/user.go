// shared/models/user.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a tracked athlete. Team holds a copy of the owning Team's name, nothing
// checks that it exists.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Team        string             `bson:"team" json:"team"`
	IsSuperhero bool               `bson:"is_superhero" json:"is_superhero"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }
