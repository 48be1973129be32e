package cmd

import (
	"time"

	"todo-lite/internal/deadline"
	"todo-lite/internal/todolist"
)

// ItemJSON is the JSON output format for a todo item.
type ItemJSON struct {
	ID          int        `json:"id"`
	Path        string     `json:"path"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Deadline    string     `json:"deadline,omitempty"`
	Overdue     bool       `json:"overdue,omitempty"`
	TodoCount   *int       `json:"todo_count,omitempty"`
	SubItems    []ItemJSON `json:"sub_items,omitempty"`
}

// ListJSON is the JSON output format for the list command.
type ListJSON struct {
	TodoCount int        `json:"todo_count"`
	Items     []ItemJSON `json:"items"`
}

// ToItemJSON converts an item without its children.
func ToItemJSON(path todolist.Path, item *todolist.TodoItem, now time.Time) ItemJSON {
	out := ItemJSON{
		ID:          item.ID,
		Path:        path.String(),
		Description: item.Description,
		Completed:   item.Completed,
	}
	if item.Deadline != nil {
		out.Deadline = *item.Deadline
		out.Overdue = !item.Completed && deadline.Overdue(*item.Deadline, now)
	}
	if item.SubList != nil {
		n := item.SubList.TodoLen()
		out.TodoCount = &n
	}
	return out
}

// toTreeJSON converts the visible items of l and their visible descendants.
func toTreeJSON(l *todolist.TodoList, prefix todolist.Path, showCompleted bool, now time.Time) []ItemJSON {
	items := l.List(showCompleted)
	result := make([]ItemJSON, 0, len(items))
	for _, item := range items {
		p := prefix.Child(item.ID)
		j := ToItemJSON(p, item, now)
		if item.SubList != nil {
			j.SubItems = toTreeJSON(item.SubList, p, showCompleted, now)
		}
		result = append(result, j)
	}
	return result
}
