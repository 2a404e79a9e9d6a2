package note

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID converts a hex identifier into an object id.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, InvalidIDError{ID: id}
	}
	return oid, nil
}
