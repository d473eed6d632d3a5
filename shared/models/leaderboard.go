// shared/models/leaderboard.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LeaderboardEntry holds the points of one team. Team references Team.Name.
type LeaderboardEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Team   string             `bson:"team" json:"team"`
	Points int                `bson:"points" json:"points"`
}

func (l *LeaderboardEntry) GetID() primitive.ObjectID   { return l.ID }
func (l *LeaderboardEntry) SetID(id primitive.ObjectID) { l.ID = id }
