// Package idpool allocates small integer identifiers within one list scope.
//
// Identifiers released by removed items are pushed on a recycle stack and
// handed out again (last released, first reused) before the counter grows,
// so ids stay small for long-lived lists.
package idpool

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotInUse is returned when releasing an id that is not allocated.
var ErrNotInUse = errors.New("id is not in use")

// NotInUseError reports a release of an id that is not currently allocated.
type NotInUseError struct {
	ID int
}

func (e *NotInUseError) Error() string {
	return fmt.Sprintf("id %d is not in use", e.ID)
}

// Is lets errors.Is match ErrNotInUse.
func (e *NotInUseError) Is(target error) bool {
	return target == ErrNotInUse
}

// Pool tracks the next never-used id, the recycled ids and the ids in use.
// An id is in exactly one of: above the counter, used, recycled.
type Pool struct {
	NextID   int
	Recycled []int // stack; the last element is handed out first
	Used     map[int]bool
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{
		Recycled: []int{},
		Used:     make(map[int]bool),
	}
}

// Restore rebuilds a pool from its serialized parts.
func Restore(nextID int, recycled, used []int) *Pool {
	p := New()
	p.NextID = nextID
	p.Recycled = append(p.Recycled, recycled...)
	for _, id := range used {
		p.Used[id] = true
	}
	return p
}

// Acquire returns a recycled id if one is available, else the next
// never-used id, and marks it used.
func (p *Pool) Acquire() int {
	p.ensure()
	var id int
	if n := len(p.Recycled); n > 0 {
		id = p.Recycled[n-1]
		p.Recycled = p.Recycled[:n-1]
	} else {
		id = p.NextID
		p.NextID++
	}
	p.Used[id] = true
	return id
}

// Release moves id from used to the recycle stack.
func (p *Pool) Release(id int) error {
	p.ensure()
	if !p.Used[id] {
		return &NotInUseError{ID: id}
	}
	delete(p.Used, id)
	p.Recycled = append(p.Recycled, id)
	return nil
}

// InUse reports whether id is currently allocated.
func (p *Pool) InUse(id int) bool {
	return p.Used[id]
}

// Len returns the number of allocated ids.
func (p *Pool) Len() int {
	return len(p.Used)
}

// UsedIDs returns the allocated ids in ascending order.
func (p *Pool) UsedIDs() []int {
	ids := make([]int, 0, len(p.Used))
	for id := range p.Used {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Check returns a description of every invariant violation in the pool.
func (p *Pool) Check() []string {
	var problems []string
	if p.NextID < 0 {
		problems = append(problems, fmt.Sprintf("next_id is negative (%d)", p.NextID))
	}
	seen := make(map[int]bool, len(p.Recycled))
	for _, id := range p.Recycled {
		switch {
		case id < 0 || id >= p.NextID:
			problems = append(problems, fmt.Sprintf("recycled id %d was never issued (next_id %d)", id, p.NextID))
		case p.Used[id]:
			problems = append(problems, fmt.Sprintf("id %d is both used and recycled", id))
		case seen[id]:
			problems = append(problems, fmt.Sprintf("id %d is recycled more than once", id))
		}
		seen[id] = true
	}
	for _, id := range p.UsedIDs() {
		if id < 0 || id >= p.NextID {
			problems = append(problems, fmt.Sprintf("used id %d was never issued (next_id %d)", id, p.NextID))
		}
	}
	for id := 0; id < p.NextID; id++ {
		if !p.Used[id] && !seen[id] {
			problems = append(problems, fmt.Sprintf("id %d is neither used nor recycled", id))
		}
	}
	return problems
}

// Rebuild returns a consistent pool for a list holding exactly ids.
// Gaps below the highest id become recycled, smallest on top of the stack.
func Rebuild(ids []int) *Pool {
	p := New()
	for _, id := range ids {
		p.Used[id] = true
		if id >= p.NextID {
			p.NextID = id + 1
		}
	}
	for id := p.NextID - 1; id >= 0; id-- {
		if !p.Used[id] {
			p.Recycled = append(p.Recycled, id)
		}
	}
	return p
}

func (p *Pool) ensure() {
	if p.Used == nil {
		p.Used = make(map[int]bool)
	}
}
