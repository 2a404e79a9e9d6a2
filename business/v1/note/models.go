package note

import (
	"github.com/RAprogramm/notes-api/persistence/v1/note"
	"time"
)

type Note struct {
	ID        string    `json:"id" example:"6021e59541a3ae69b39ecb46"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note text"`
	Category  string    `json:"category" example:"personal"`
	Published bool      `json:"published" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	Title     string  `json:"title" binding:"required" example:"my note"`
	Content   string  `json:"content" binding:"required" example:"my note text"`
	Category  *string `json:"category,omitempty" example:"personal"`
	Published *bool   `json:"published,omitempty" example:"false"`
}

type UpdateNote struct {
	Title     *string `json:"title,omitempty" example:"my note"`
	Content   *string `json:"content,omitempty" example:"my note text"`
	Category  *string `json:"category,omitempty" example:"personal"`
	Published *bool   `json:"published,omitempty" example:"true"`
}

type NoteData struct {
	Note Note `json:"note"`
}

type SingleNote struct {
	Status string   `json:"status" example:"success"`
	Data   NoteData `json:"data"`
}

type NoteList struct {
	Status  string `json:"status" example:"success"`
	Results int    `json:"results" example:"1"`
	Notes   []Note `json:"notes"`
}

// fromModel renders a stored note for responses. The id becomes its hex
// form and the optional fields fall back to their defaults.
func fromModel(m note.Note) (Note, error) {
	if m.Title == "" || m.Content == "" {
		return Note{}, MalformedDocumentError{ID: m.ID.Hex()}
	}

	category := ""
	if m.Category != nil {
		category = *m.Category
	}
	published := false
	if m.Published != nil {
		published = *m.Published
	}

	return Note{
		ID:        m.ID.Hex(),
		Title:     m.Title,
		Content:   m.Content,
		Category:  category,
		Published: published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
