package fontload

import "errors"

// Sentinel errors for the fontload package.
var (
	// ErrNotCollection is returned when font data does not start with the
	// "ttcf" collection header.
	ErrNotCollection = errors.New("fontload: not a font collection")

	// ErrMemberOutOfRange is returned when a collection has no font at the
	// requested index.
	ErrMemberOutOfRange = errors.New("fontload: collection member out of range")

	// ErrNoTables is returned when a collection member has an empty table directory.
	ErrNoTables = errors.New("fontload: collection member has no tables")
)
