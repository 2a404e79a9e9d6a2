package note

import (
	"context"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteByID removes a note. It reports whether a document was deleted.
func (s *Store) DeleteByID(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	result, err := s.coll.DeleteOne(ctx, byID(oid))
	if err != nil {
		return false, QueryError{Op: "delete", Err: err}
	}
	return result.DeletedCount > 0, nil
}
