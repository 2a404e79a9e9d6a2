package note

import "fmt"

// InvalidIDError reports an identifier that is not a valid object id.
type InvalidIDError struct {
	ID string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id used: %s", e.ID)
}

// DuplicateKeyError reports an insert that violated a unique index.
type DuplicateKeyError struct {
	Err error
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key error occurred: %s", e.Err)
}

func (e DuplicateKeyError) Unwrap() error {
	return e.Err
}

// QueryError reports a failure running an operation against the store.
type QueryError struct {
	Op  string
	Err error
}

func (e QueryError) Error() string {
	return fmt.Sprintf("error during mongodb query: %s: %s", e.Op, e.Err)
}

func (e QueryError) Unwrap() error {
	return e.Err
}

// SerializeError reports a document that could not be serialized to bson.
type SerializeError struct {
	Err error
}

func (e SerializeError) Error() string {
	return fmt.Sprintf("could not serialize data: %s", e.Err)
}

func (e SerializeError) Unwrap() error {
	return e.Err
}

// PaginationError reports page parameters outside the valid range.
type PaginationError struct {
	Page  int
	Limit int
}

func (e PaginationError) Error() string {
	return fmt.Sprintf("invalid pagination: page %d limit %d", e.Page, e.Limit)
}
