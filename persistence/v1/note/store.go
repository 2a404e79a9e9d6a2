package note

import (
	"context"
	"github.com/RAprogramm/notes-api/persistence/v1/schema"
	"go.mongodb.org/mongo-driver/mongo"
	"sync"
)

// Store runs the note operations against a mongo collection.
type Store struct {
	coll *mongo.Collection

	mu      sync.Mutex
	indexed bool
}

func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// EnsureIndexes creates the collection indexes if this Store has not
// created them yet. A failed attempt is retried on the next call.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexed {
		return nil
	}
	if err := schema.Create(ctx, s.coll); err != nil {
		return err
	}
	s.indexed = true
	return nil
}
