package note

import (
	"github.com/RAprogramm/notes-api/persistence/v1/note"
	"time"
)

// Service runs the note operations on top of the persistence store.
// Each store call gets a deadline of opTimeout hung off the request context.
type Service struct {
	store     *note.Store
	opTimeout time.Duration
}

func NewService(store *note.Store, opTimeout time.Duration) *Service {
	return &Service{
		store:     store,
		opTimeout: opTimeout,
	}
}
