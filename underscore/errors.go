package underscore

import "errors"

// Sentinel errors returned by Container operations. Context is attached with
// fmt.Errorf("%w: ..."), so compare with errors.Is.
var (
	// ErrInvalidInput is returned when a Container is built from a value that
	// is neither an ordered mapping, a list nor another Container, and by
	// Dict when an element is not a [key, value] pair.
	ErrInvalidInput = errors.New("underscore: invalid input")

	// ErrKeyNotFound is returned by Get when the key is absent.
	ErrKeyNotFound = errors.New("underscore: key not found")

	// ErrEmptyContainer is returned when an operation reads the first element
	// of a container that has none.
	ErrEmptyContainer = errors.New("underscore: operation on empty container")

	// ErrTypeCoercion is returned by Sum and Product when a value cannot be
	// interpreted as a number.
	ErrTypeCoercion = errors.New("underscore: value is not numeric")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("underscore: chunk size must be greater than 0")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// lists have different lengths.
	ErrMismatchedLengths = errors.New("underscore: keys and values must have the same length")

	// ErrInvalidKey is returned when a value cannot be used as a key.
	ErrInvalidKey = errors.New("underscore: value cannot be used as a key")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("underscore: macro not found")
)
