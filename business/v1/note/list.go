package note

import "context"

// List returns one page of notes in insertion order.
func (s *Service) List(ctx context.Context, page, limit int) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	models, err := s.store.FindPage(dbCtx, page, limit)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(models))
	for _, m := range models {
		n, err := fromModel(m)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, nil
}
