// seeder/store/mongo_store.go
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/octofit/octofit-tracker/shared/config"
	"github.com/octofit/octofit-tracker/shared/models"
	"github.com/octofit/octofit-tracker/shared/mongodb"
)

// MongoCollection is a Collection backed by a MongoDB collection.
type MongoCollection[T any, P interface {
	*T
	Document
}] struct {
	collection *mongo.Collection
}

// NewMongoCollection wraps an existing *mongo.Collection.
func NewMongoCollection[T any, P interface {
	*T
	Document
}](collection *mongo.Collection) *MongoCollection[T, P] {
	return &MongoCollection[T, P]{collection: collection}
}

// NewMongoStore builds a Store whose collections live in the client's database.
func NewMongoStore(client *mongodb.Client, names config.CollectionNames) *Store {
	return &Store{
		Teams:       NewMongoCollection[models.Team](client.Collection(names.Teams)),
		Users:       NewMongoCollection[models.User](client.Collection(names.Users)),
		Activities:  NewMongoCollection[models.Activity](client.Collection(names.Activities)),
		Leaderboard: NewMongoCollection[models.LeaderboardEntry](client.Collection(names.Leaderboard)),
		Workouts:    NewMongoCollection[models.Workout](client.Collection(names.Workouts)),
	}
}

// DeleteAll removes every document in the collection.
func (mc *MongoCollection[T, P]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := mc.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents from %s: %w", mc.collection.Name(), err)
	}
	return res.DeletedCount, nil
}

// Create inserts doc under a freshly generated ObjectID.
func (mc *MongoCollection[T, P]) Create(ctx context.Context, doc *T) error {
	P(doc).SetID(primitive.NewObjectID())
	if _, err := mc.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("document %s already exists in %s: %w", P(doc).GetID().Hex(), mc.collection.Name(), err)
		}
		return fmt.Errorf("failed to insert into %s: %w", mc.collection.Name(), err)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (mc *MongoCollection[T, P]) Count(ctx context.Context) (int64, error) {
	n, err := mc.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", mc.collection.Name(), err)
	}
	return n, nil
}

// Find returns every document matching filter.
func (mc *MongoCollection[T, P]) Find(ctx context.Context, filter Filter) ([]T, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := mc.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", mc.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s: %w", mc.collection.Name(), err)
	}
	return docs, nil
}
