package note

import (
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

// Insert stores a new note and returns it as persisted, reading it back
// by the id the store assigned. A nil note means the re-read found nothing.
func (s *Store) Insert(ctx context.Context, newN NewNote) (*Note, error) {
	if err := s.EnsureIndexes(ctx); err != nil {
		return nil, QueryError{Op: "create index", Err: err}
	}

	doc := storable(newN)
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, SerializeError{Err: err}
	}

	result, err := s.coll.InsertOne(ctx, bson.Raw(raw))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, DuplicateKeyError{Err: err}
		}
		return nil, QueryError{Op: "insert", Err: err}
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, QueryError{Op: "insert", Err: fmt.Errorf("unexpected inserted id %v", result.InsertedID)}
	}

	return s.FindByID(ctx, oid)
}
