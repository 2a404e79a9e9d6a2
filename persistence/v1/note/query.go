package note

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// byID builds the filter matching a single document by object id.
func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}

// setFields wraps a partial document into a $set merge update.
// An empty partial is still a valid update.
func setFields(fields bson.D) bson.D {
	return bson.D{{Key: "$set", Value: fields}}
}

// updateFields collects the fields present on the update into a partial document.
// Nil fields are left out so the merge does not touch them.
func updateFields(u NoteUpdate) bson.D {
	fields := bson.D{}
	if u.Title != nil {
		fields = append(fields, bson.E{Key: "title", Value: *u.Title})
	}
	if u.Content != nil {
		fields = append(fields, bson.E{Key: "content", Value: *u.Content})
	}
	if u.Category != nil {
		fields = append(fields, bson.E{Key: "category", Value: *u.Category})
	}
	if u.Published != nil {
		fields = append(fields, bson.E{Key: "published", Value: *u.Published})
	}
	return fields
}

// listWindow builds the find options for one page of notes.
// Pages start at 1 and documents come back in insertion order, so the
// same page always holds the same window of notes.
func listWindow(page, limit int) (*options.FindOptions, error) {
	if page < 1 || limit < 1 {
		return nil, PaginationError{Page: page, Limit: limit}
	}

	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)), nil
}
