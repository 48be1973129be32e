// Package todolist implements the hierarchical todo list: items, nested
// sub-lists, per-list identifier pools, and path addressing.
//
// A TodoList owns its items; an item owns at most one sub-list, created the
// first time a child is added under it. Identifiers are unique only within the
// list that issued them. Every mutating operation either succeeds completely
// or leaves the tree unchanged.
package todolist

import (
	"fmt"
	"time"

	"todo-lite/internal/deadline"
	"todo-lite/internal/idpool"
)

// TodoItem is one entry of a list.
type TodoItem struct {
	ID          int
	Description string
	Completed   bool
	Deadline    *string // stored text, see deadline.Layout
	SubList     *TodoList
}

// TodoList is an ordered sequence of items plus the pool their ids come from.
type TodoList struct {
	Items  []*TodoItem
	IDPool *idpool.Pool
}

// New returns an empty list.
func New() *TodoList {
	return &TodoList{IDPool: idpool.New()}
}

// Add appends a new item to the root list, or to the sub-list of the item at
// parentPath when it is non-empty. The parent's sub-list is created on demand.
func (l *TodoList) Add(description string, due *time.Time, parentPath string) (*TodoItem, error) {
	target := l
	if parentPath != "" {
		parent, err := l.Resolve(parentPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParentNotFound, err)
		}
		if parent.SubList == nil {
			parent.SubList = New()
		}
		target = parent.SubList
	}

	item := &TodoItem{
		ID:          target.pool().Acquire(),
		Description: description,
		Deadline:    formatDeadline(due),
	}
	target.Items = append(target.Items, item)
	return item, nil
}

// Edit replaces the description of the item at path. The deadline is replaced
// only when due is non-nil; nil keeps the current one.
func (l *TodoList) Edit(path, description string, due *time.Time) (*TodoItem, error) {
	item, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}
	item.Description = description
	if due != nil {
		item.Deadline = formatDeadline(due)
	}
	return item, nil
}

// ClearDeadline removes the deadline of the item at path.
func (l *TodoList) ClearDeadline(path string) (*TodoItem, error) {
	item, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}
	item.Deadline = nil
	return item, nil
}

// Complete marks the item at path completed. Completing twice is not an error.
func (l *TodoList) Complete(path string) (*TodoItem, error) {
	item, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}
	item.Completed = true
	return item, nil
}

// Reopen clears the completed flag of the item at path.
func (l *TodoList) Reopen(path string) (*TodoItem, error) {
	item, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}
	item.Completed = false
	return item, nil
}

// Remove detaches the item at path, together with its sub-list, and returns
// its id to the pool of the list it lived in.
func (l *TodoList) Remove(path string) (*TodoItem, error) {
	parentPath, _, id, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	list, err := l.ResolveList(parentPath)
	if err != nil {
		return nil, err
	}

	item, err := list.Get(id)
	if err != nil {
		return nil, err
	}
	if err := list.pool().Release(id); err != nil {
		return nil, err
	}
	idx := list.indexOf(id)
	list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
	return item, nil
}

// List returns the items at this level, dropping completed ones unless
// showCompleted is set. Sub-lists are not expanded.
func (l *TodoList) List(showCompleted bool) []*TodoItem {
	out := make([]*TodoItem, 0, len(l.Items))
	for _, item := range l.Items {
		if showCompleted || !item.Completed {
			out = append(out, item)
		}
	}
	return out
}

// TodoLen returns the number of incomplete items at this level.
func (l *TodoList) TodoLen() int {
	n := 0
	for _, item := range l.Items {
		if !item.Completed {
			n++
		}
	}
	return n
}

// Get returns the item with the given id at this level.
func (l *TodoList) Get(id int) (*TodoItem, error) {
	item, ok := l.find(id)
	if !ok {
		return nil, &ItemNotFoundError{ID: id}
	}
	return item, nil
}

// Len returns the number of items at this level, completed or not.
func (l *TodoList) Len() int {
	return len(l.Items)
}

// Walk calls fn for every item in depth-first order, parents before children.
// If fn returns SkipChildren the item's sub-list is not visited; any other
// error stops the walk and is returned.
func (l *TodoList) Walk(fn func(path Path, item *TodoItem) error) error {
	return l.walk(nil, fn)
}

func (l *TodoList) walk(prefix Path, fn func(Path, *TodoItem) error) error {
	for _, item := range l.Items {
		p := prefix.Child(item.ID)
		err := fn(p, item)
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}
		if item.SubList != nil {
			if err := item.SubList.walk(p, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *TodoList) find(id int) (*TodoItem, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.Items[i], true
	}
	return nil, false
}

func (l *TodoList) indexOf(id int) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (l *TodoList) pool() *idpool.Pool {
	if l.IDPool == nil {
		l.IDPool = idpool.New()
	}
	return l.IDPool
}

func formatDeadline(due *time.Time) *string {
	if due == nil {
		return nil
	}
	s := deadline.Format(*due)
	return &s
}
