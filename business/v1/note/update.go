package note

import (
	"context"
	"github.com/RAprogramm/notes-api/persistence/v1/note"
)

// Update merges the present fields into the note and returns the result
// after the update, or nil if no note matches the id.
func (s *Service) Update(ctx context.Context, id string, update UpdateNote) (*Note, error) {
	oid, err := note.ParseID(id)
	if err != nil {
		return nil, err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	updated, err := s.store.UpdateByID(dbCtx, oid, note.NoteUpdate(update))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	resp, err := fromModel(*updated)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
