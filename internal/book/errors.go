package book

import "errors"

var (
	// ErrNotFound is returned when a book is not in the catalog or collection.
	ErrNotFound = errors.New("book not found")
	// ErrAlreadyExists is returned when a book with the same ISBN is already indexed.
	ErrAlreadyExists = errors.New("book already exists")
	// ErrIndexOutOfRange is returned when a position is outside a collection.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrTypeMismatch is returned for nil books, unknown attributes and
	// attribute values of the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")
)
