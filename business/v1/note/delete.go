package note

import (
	"context"
	"github.com/RAprogramm/notes-api/persistence/v1/note"
)

// Delete removes the note with the given hex id.
// It reports whether a note was actually deleted.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := note.ParseID(id)
	if err != nil {
		return false, err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	return s.store.DeleteByID(dbCtx, oid)
}
