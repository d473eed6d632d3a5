// seeder/store/store.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/octofit/octofit-tracker/shared/models"
)

// Document is implemented by every seeded model. IDs belong to the store: Create
// assigns a fresh ObjectID before inserting, so _id is persisted as BSON ObjectId.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
}

// Filter selects documents by equality on bson field names, e.g. Filter{"team": "DC"}.
// An empty filter matches every document.
type Filter map[string]any

// Collection is the per-entity persistence boundary the seeder depends on.
type Collection[T any] interface {
	// DeleteAll removes every document and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
	// Create assigns a new ID to doc and inserts it.
	Create(ctx context.Context, doc *T) error
	// Count returns the number of documents.
	Count(ctx context.Context) (int64, error)
	// Find returns the documents matching filter.
	Find(ctx context.Context, filter Filter) ([]T, error)
}

// Store groups the five collections the seeder resets and repopulates.
type Store struct {
	Teams       Collection[models.Team]
	Users       Collection[models.User]
	Activities  Collection[models.Activity]
	Leaderboard Collection[models.LeaderboardEntry]
	Workouts    Collection[models.Workout]
}
