package note

import "fmt"

// MalformedDocumentError reports a stored document missing required fields.
type MalformedDocumentError struct {
	ID string
}

func (e MalformedDocumentError) Error() string {
	return fmt.Sprintf("could not access field in document: %s", e.ID)
}
