package note

import (
	"context"
	"github.com/RAprogramm/notes-api/persistence/v1/note"
)

func (s *Service) Create(ctx context.Context, newN NewNote) (*Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	created, err := s.store.Insert(dbCtx, note.NewNote(newN))
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}

	resp, err := fromModel(*created)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
