package menu

import "errors"

var (
	// ErrNodeNotFound is returned when no node carries the requested id.
	ErrNodeNotFound = errors.New("menu item not found")
	// ErrGroupNotFound is returned when the target group does not exist.
	ErrGroupNotFound = errors.New("group not found")
	// ErrConsecutiveSeparator is returned when a separator would follow another separator.
	ErrConsecutiveSeparator = errors.New("cannot add two separators in a row")
	// ErrNotASearch is returned when a search-only edit targets another node type.
	ErrNotASearch = errors.New("menu item is not a search")
	// ErrInvalidImport is returned when imported data is not a menu tree.
	ErrInvalidImport = errors.New("invalid import: expected an array of menu items")
	// ErrInvalidID is returned by Validate for empty or duplicate ids.
	ErrInvalidID = errors.New("invalid menu item id")
	// ErrInvalidEncoding is returned for unknown query encodings.
	ErrInvalidEncoding = errors.New("unknown query encoding")
	// ErrIndexOutOfRange is returned when a move targets a position past the end of a list.
	ErrIndexOutOfRange = errors.New("index out of range")
)
