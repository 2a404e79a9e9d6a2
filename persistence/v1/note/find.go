package note

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindByID looks a note up by its object id.
// A nil note without error means no document matched.
func (s *Store) FindByID(ctx context.Context, oid primitive.ObjectID) (*Note, error) {
	var found Note
	err := s.coll.FindOne(ctx, byID(oid)).Decode(&found)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, nil
	case err != nil:
		return nil, QueryError{Op: "find", Err: err}
	}
	return &found, nil
}

// FindPage returns one page of notes in insertion order.
// Pages start at 1, a page past the data comes back empty.
func (s *Store) FindPage(ctx context.Context, page, limit int) ([]Note, error) {
	window, err := listWindow(page, limit)
	if err != nil {
		return nil, err
	}

	cursor, err := s.coll.Find(ctx, bson.D{}, window)
	if err != nil {
		return nil, QueryError{Op: "find page", Err: err}
	}
	defer cursor.Close(ctx)

	notes := make([]Note, 0)
	for cursor.Next(ctx) {
		var n Note
		if err := cursor.Decode(&n); err != nil {
			return nil, QueryError{Op: "decode page", Err: err}
		}
		notes = append(notes, n)
	}
	if err := cursor.Err(); err != nil {
		return nil, QueryError{Op: "find page", Err: err}
	}

	return notes, nil
}
