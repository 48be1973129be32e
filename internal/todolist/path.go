package todolist

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a walk from the root list down through sub-lists. Every segment is
// an item identifier in the list at that depth; "3:0:2" is item 2 inside the
// sub-list of item 0, which sits in the sub-list of root item 3.
//
// Identifiers are used at every depth by every operation, so a path printed by
// the list display stays valid after other items are removed.
type Path []int

// ParsePath parses a colon-separated path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, ErrPathNotFound
	}
	parts := strings.Split(s, ":")
	path := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || strings.TrimLeft(part, "0123456789") != "" {
			return nil, fmt.Errorf("%w: segment %q in %q", ErrInvalidPathFormat, part, s)
		}
		path[i] = n
	}
	return path, nil
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ":")
}

// Child returns p extended by id.
func (p Path) Child(id int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, id)
}

// SplitPath splits s at its last colon into the parent path and the final
// identifier. hasParent is false for single-segment paths.
func SplitPath(s string) (parent string, hasParent bool, final int, err error) {
	if _, err := ParsePath(s); err != nil {
		return "", false, 0, err
	}
	i := strings.LastIndex(s, ":")
	if i >= 0 {
		parent, hasParent = s[:i], true
	}
	final, _ = strconv.Atoi(s[i+1:])
	return parent, hasParent, final, nil
}

// Resolve returns the item addressed by path.
func (l *TodoList) Resolve(path string) (*TodoItem, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	list := l
	for depth, id := range segs {
		item, ok := list.find(id)
		if !ok {
			return nil, &IndexOutOfBoundsError{Index: id, Depth: depth, Path: path}
		}
		if depth == len(segs)-1 {
			return item, nil
		}
		if item.SubList == nil {
			return nil, &NoSublistError{Index: id, Path: path}
		}
		list = item.SubList
	}
	// unreachable: ParsePath never returns an empty Path without error
	return nil, ErrPathNotFound
}

// ResolveList returns the list a path's children live in: the root list for
// an empty path, else the sub-list owned by the addressed item.
func (l *TodoList) ResolveList(path string) (*TodoList, error) {
	if path == "" {
		return l, nil
	}
	item, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}
	if item.SubList == nil {
		return nil, &NoSublistError{Index: item.ID, Path: path}
	}
	return item.SubList, nil
}
