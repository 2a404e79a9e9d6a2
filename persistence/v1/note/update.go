package note

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
)

// UpdateByID merges the present fields into the note and returns the
// post-update document. updatedAt always moves, even on an empty update.
// A nil note without error means no document matched.
func (s *Store) UpdateByID(ctx context.Context, oid primitive.ObjectID, u NoteUpdate) (*Note, error) {
	fields := updateFields(u)
	fields = append(fields, bson.E{Key: "updatedAt", Value: time.Now().UTC()})

	update, err := bson.Marshal(setFields(fields))
	if err != nil {
		return nil, SerializeError{Err: err}
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Note
	err = s.coll.FindOneAndUpdate(ctx, byID(oid), bson.Raw(update), after).Decode(&updated)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, nil
	case err != nil:
		return nil, QueryError{Op: "update", Err: err}
	}
	return &updated, nil
}
