package cmd

import (
	"fmt"
	"strings"

	"todo-lite/internal/deadline"
	"todo-lite/internal/todolist"
)

// walkVisible calls fn for every item that is shown: completed items and
// everything below them are hidden unless showCompleted is set.
func walkVisible(l *todolist.TodoList, showCompleted bool, fn func(todolist.Path, *todolist.TodoItem)) error {
	return l.Walk(func(p todolist.Path, item *todolist.TodoItem) error {
		if item.Completed && !showCompleted {
			return todolist.SkipChildren
		}
		fn(p, item)
		return nil
	})
}

// printItems renders the visible items of l, each sub-item indented two
// spaces per level below its parent.
func printItems(app *App, l *todolist.TodoList, showCompleted bool) error {
	return walkVisible(l, showCompleted, func(p todolist.Path, item *todolist.TodoItem) {
		indent := strings.Repeat("  ", len(p)-1)
		fmt.Fprintln(app.Out, indent+formatItem(app, item, "#"+fmt.Sprint(item.ID)))
	})
}

// printFlat renders every visible item on its own line, addressed by its full
// path.
func printFlat(app *App, l *todolist.TodoList, showCompleted bool) error {
	return walkVisible(l, showCompleted, func(p todolist.Path, item *todolist.TodoItem) {
		fmt.Fprintln(app.Out, formatItem(app, item, "#"+p.String()))
	})
}

// formatItem renders one line: "[✓] #3: description(2) | deadline: ...".
// The count in parentheses is the number of open sub-items.
func formatItem(app *App, item *todolist.TodoItem, label string) string {
	mark := " "
	if item.Completed {
		mark = "✓"
		if app.Styles != nil {
			mark = app.Styles.Done.Render(mark)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", mark, label, item.Description)
	if item.SubList != nil {
		fmt.Fprintf(&b, "(%d)", item.SubList.TodoLen())
	}
	if item.Deadline != nil {
		b.WriteString(" " + formatDeadline(app, item))
	}
	return b.String()
}

func formatDeadline(app *App, item *todolist.TodoItem) string {
	text := "| deadline: " + *item.Deadline
	if app.Styles == nil {
		return text
	}
	if !item.Completed && deadline.Overdue(*item.Deadline, app.now()) {
		return app.Styles.Overdue.Render(text)
	}
	return app.Styles.Deadline.Render(text)
}
