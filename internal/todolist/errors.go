package todolist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPathFormat is returned when a path segment is not a non-negative integer.
	ErrInvalidPathFormat = errors.New("invalid path format")

	// ErrPathNotFound is returned when an empty path is supplied.
	ErrPathNotFound = errors.New("path not found")

	// ErrIndexOutOfBounds matches any *IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("path segment out of bounds")

	// ErrNoSublist matches any *NoSublistError.
	ErrNoSublist = errors.New("item has no sub-list")

	// ErrItemNotFound matches any *ItemNotFoundError.
	ErrItemNotFound = errors.New("item not found")

	// ErrParentNotFound wraps resolver failures of an add's parent path.
	ErrParentNotFound = errors.New("parent not found")

	// SkipChildren is returned by a Walk callback to skip the sub-list of
	// the item it was called with. Walk itself never returns it.
	SkipChildren = errors.New("skip children")
)

// IndexOutOfBoundsError reports a path segment that names no item at its depth.
// Index is the segment value, an item identifier.
type IndexOutOfBoundsError struct {
	Index int
	Depth int
	Path  string
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("path %q: no item %d at depth %d", e.Path, e.Index, e.Depth)
}

func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

// NoSublistError reports a non-final path segment whose item has no children.
type NoSublistError struct {
	Index int
	Path  string
}

func (e *NoSublistError) Error() string {
	return fmt.Sprintf("path %q: item %d has no sub-list", e.Path, e.Index)
}

func (e *NoSublistError) Is(target error) bool {
	return target == ErrNoSublist
}

// ItemNotFoundError reports an id absent from the addressed list.
type ItemNotFoundError struct {
	ID int
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item with id %d not found", e.ID)
}

func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
