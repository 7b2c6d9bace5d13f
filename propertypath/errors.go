package propertypath

import "errors"

var (
	// ErrInvalidPath is returned when a path cannot be parsed.
	ErrInvalidPath = errors.New("propertypath: invalid path")

	// ErrNotFound is returned when a segment names a missing key or index.
	ErrNotFound = errors.New("propertypath: not found")

	// ErrNotTraversable is returned when a segment is applied to a value that
	// has no keys, such as a number, a string, nil or a struct.
	ErrNotTraversable = errors.New("propertypath: value is not traversable")
)
