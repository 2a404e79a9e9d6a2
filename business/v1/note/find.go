package note

import (
	"context"
	"github.com/RAprogramm/notes-api/persistence/v1/note"
)

// Find returns the note with the given hex id, or nil if none matches.
func (s *Service) Find(ctx context.Context, id string) (*Note, error) {
	oid, err := note.ParseID(id)
	if err != nil {
		return nil, err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	found, err := s.store.FindByID(dbCtx, oid)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}

	resp, err := fromModel(*found)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
