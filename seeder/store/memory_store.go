// seeder/store/memory_store.go
package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/octofit/octofit-tracker/shared/models"
)

// MemoryCollection keeps documents in insertion order for tests and dry runs.
type MemoryCollection[T any, P interface {
	*T
	Document
}] struct {
	mu   sync.RWMutex
	name string
	docs []T
}

// NewMemoryCollection returns an empty in-memory collection.
func NewMemoryCollection[T any, P interface {
	*T
	Document
}](name string) *MemoryCollection[T, P] {
	return &MemoryCollection[T, P]{name: name}
}

// NewMemoryStore builds a Store with empty in-memory collections.
func NewMemoryStore() *Store {
	return &Store{
		Teams:       NewMemoryCollection[models.Team]("teams"),
		Users:       NewMemoryCollection[models.User]("users"),
		Activities:  NewMemoryCollection[models.Activity]("activities"),
		Leaderboard: NewMemoryCollection[models.LeaderboardEntry]("leaderboard"),
		Workouts:    NewMemoryCollection[models.Workout]("workouts"),
	}
}

func (mc *MemoryCollection[T, P]) DeleteAll(ctx context.Context) (int64, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	n := int64(len(mc.docs))
	mc.docs = nil
	return n, nil
}

func (mc *MemoryCollection[T, P]) Create(ctx context.Context, doc *T) error {
	P(doc).SetID(primitive.NewObjectID())

	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.docs = append(mc.docs, *doc)
	return nil
}

func (mc *MemoryCollection[T, P]) Count(ctx context.Context) (int64, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return int64(len(mc.docs)), nil
}

// Find matches documents the way MongoDB would for a plain equality filter. Both
// sides go through the bson encoder so Go ints compare equal to their stored form.
func (mc *MemoryCollection[T, P]) Find(ctx context.Context, filter Filter) ([]T, error) {
	want := bson.M{}
	if len(filter) > 0 {
		var err error
		if want, err = toBSON(filter); err != nil {
			return nil, fmt.Errorf("failed to encode filter for %s: %w", mc.name, err)
		}
	}

	mc.mu.RLock()
	defer mc.mu.RUnlock()

	out := []T{}
	for i := range mc.docs {
		have, err := toBSON(&mc.docs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to encode document from %s: %w", mc.name, err)
		}
		if matches(have, want) {
			out = append(out, mc.docs[i])
		}
	}
	return out, nil
}

func toBSON(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		have, ok := doc[key]
		if !ok || !reflect.DeepEqual(have, want) {
			return false
		}
	}
	return true
}
