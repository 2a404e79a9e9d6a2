package note

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Category  *string            `bson:"category,omitempty"`
	Published *bool              `bson:"published,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type NewNote struct {
	Title     string
	Content   string
	Category  *string
	Published *bool
}

type NoteUpdate struct {
	Title     *string
	Content   *string
	Category  *string
	Published *bool
}

// storable maps a new note to the document shape kept in the collection.
// Absent category becomes "" and absent published becomes false.
// Timestamps are left zero, the insert stamps them.
func storable(newN NewNote) Note {
	category := ""
	if newN.Category != nil {
		category = *newN.Category
	}
	published := false
	if newN.Published != nil {
		published = *newN.Published
	}

	return Note{
		Title:     newN.Title,
		Content:   newN.Content,
		Category:  &category,
		Published: &published,
	}
}
