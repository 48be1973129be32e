package todostore

import (
	"todo-lite/internal/idpool"
	"todo-lite/internal/todolist"
)

// Document is the serialized form of a todo list. Nested lists have the same
// shape, each carrying its own id pool.
type Document struct {
	Items  []ItemDocument `json:"items" yaml:"items" toml:"items"`
	IDPool PoolDocument   `json:"id_pool" yaml:"id_pool" toml:"id_pool"`
}

// ItemDocument is the serialized form of a todo item.
type ItemDocument struct {
	ID          int       `json:"id" yaml:"id" toml:"id"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Completed   bool      `json:"completed" yaml:"completed" toml:"completed"`
	Deadline    *string   `json:"deadline,omitempty" yaml:"deadline,omitempty" toml:"deadline,omitempty"`
	SubList     *Document `json:"sub_list,omitempty" yaml:"sub_list,omitempty" toml:"sub_list,omitempty"`
}

// PoolDocument is the serialized form of an id pool. UsedIDs is sorted.
type PoolDocument struct {
	NextID      int   `json:"next_id" yaml:"next_id" toml:"next_id"`
	RecycledIDs []int `json:"recycled_ids" yaml:"recycled_ids" toml:"recycled_ids"`
	UsedIDs     []int `json:"used_ids" yaml:"used_ids" toml:"used_ids"`
}

// FromList converts a list into its document form.
func FromList(l *todolist.TodoList) *Document {
	doc := &Document{Items: make([]ItemDocument, 0, len(l.Items))}
	pool := l.IDPool
	if pool == nil {
		pool = idpool.New()
	}
	doc.IDPool = PoolDocument{
		NextID:      pool.NextID,
		RecycledIDs: append([]int{}, pool.Recycled...),
		UsedIDs:     pool.UsedIDs(),
	}
	for _, item := range l.Items {
		d := ItemDocument{
			ID:          item.ID,
			Description: item.Description,
			Completed:   item.Completed,
		}
		if item.Deadline != nil {
			s := *item.Deadline
			d.Deadline = &s
		}
		if item.SubList != nil {
			d.SubList = FromList(item.SubList)
		}
		doc.Items = append(doc.Items, d)
	}
	return doc
}

// List converts the document back into a list.
func (d *Document) List() *todolist.TodoList {
	l := &todolist.TodoList{
		Items:  make([]*todolist.TodoItem, 0, len(d.Items)),
		IDPool: idpool.Restore(d.IDPool.NextID, d.IDPool.RecycledIDs, d.IDPool.UsedIDs),
	}
	for _, di := range d.Items {
		item := &todolist.TodoItem{
			ID:          di.ID,
			Description: di.Description,
			Completed:   di.Completed,
		}
		if di.Deadline != nil {
			s := *di.Deadline
			item.Deadline = &s
		}
		if di.SubList != nil {
			item.SubList = di.SubList.List()
		}
		l.Items = append(l.Items, item)
	}
	return l
}
