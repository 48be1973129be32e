package todolist

import (
	"fmt"
	"sort"

	"todo-lite/internal/idpool"
)

// Check reports inconsistencies between every list's items and its id pool:
// duplicate ids, ids the pool does not consider in use, and pool invariant
// violations. An empty result means the tree is consistent.
func (l *TodoList) Check() []string {
	return l.check("root")
}

func (l *TodoList) check(where string) []string {
	problems := l.checkLevel(where)
	for _, item := range l.Items {
		if item.SubList != nil {
			problems = append(problems, item.SubList.check(fmt.Sprintf("%s > %d", where, item.ID))...)
		}
	}
	return problems
}

// checkLevel checks this list only, without descending into sub-lists.
func (l *TodoList) checkLevel(where string) []string {
	var problems []string
	pool := l.IDPool
	if pool == nil {
		pool = idpool.New()
	}

	seen := make(map[int]bool, len(l.Items))
	for _, item := range l.Items {
		if seen[item.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate id %d", where, item.ID))
		}
		seen[item.ID] = true
		if !pool.InUse(item.ID) {
			problems = append(problems, fmt.Sprintf("%s: item %d is not marked used in the id pool", where, item.ID))
		}
	}
	for _, id := range pool.UsedIDs() {
		if !seen[id] {
			problems = append(problems, fmt.Sprintf("%s: id %d is marked used but no item has it", where, id))
		}
	}
	for _, p := range pool.Check() {
		problems = append(problems, where+": "+p)
	}
	return problems
}

// RepairPools rebuilds every list's id pool from the ids its items carry.
// Duplicate ids are reassigned fresh ids from the rebuilt pool. It returns the
// number of lists whose pool or items changed.
func (l *TodoList) RepairPools() int {
	repaired := 0
	if l.IDPool == nil || len(l.checkLevel("")) > 0 {
		var ids []int
		seen := make(map[int]bool, len(l.Items))
		var dups []*TodoItem
		for _, item := range l.Items {
			if seen[item.ID] {
				dups = append(dups, item)
				continue
			}
			seen[item.ID] = true
			ids = append(ids, item.ID)
		}
		sort.Ints(ids)
		l.IDPool = idpool.Rebuild(ids)
		for _, item := range dups {
			item.ID = l.IDPool.Acquire()
		}
		repaired++
	}
	for _, item := range l.Items {
		if item.SubList != nil {
			repaired += item.SubList.RepairPools()
		}
	}
	return repaired
}
