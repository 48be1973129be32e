// Package testutil provides test utilities for building todo lists.
package testutil

import (
	"fmt"
	"math/rand"
	"strings"

	"todo-lite/internal/todolist"
)

// ListGenerator fills a todo list with items in various shapes and remembers
// the path of every live item it created.
type ListGenerator struct {
	list  *todolist.TodoList
	rng   *rand.Rand
	paths []string
}

// NewListGenerator creates a generator for l. The seed makes churn
// reproducible.
func NewListGenerator(l *todolist.TodoList, seed int64) *ListGenerator {
	return &ListGenerator{
		list:  l,
		rng:   rand.New(rand.NewSource(seed)),
		paths: make([]string, 0),
	}
}

// Paths returns the paths of all live items created by this generator, in
// creation order.
func (g *ListGenerator) Paths() []string {
	return g.paths
}

// Cleanup removes all items created by this generator.
func (g *ListGenerator) Cleanup() error {
	// children were created after their parents
	for i := len(g.paths) - 1; i >= 0; i-- {
		if _, err := g.list.Remove(g.paths[i]); err != nil {
			return fmt.Errorf("cleanup item %s: %w", g.paths[i], err)
		}
	}
	g.paths = g.paths[:0]
	return nil
}

// GenerateTree creates a hierarchy with the given depth and breadth. Each
// level has breadth children per item.
func (g *ListGenerator) GenerateTree(depth, breadth int) error {
	return g.generateTreeRecursive("", depth, breadth)
}

func (g *ListGenerator) generateTreeRecursive(parent string, depth, breadth int) error {
	if depth == 0 {
		return nil
	}
	for i := 0; i < breadth; i++ {
		path, err := g.add(fmt.Sprintf("Level %d Item %d", depth, i), parent)
		if err != nil {
			return fmt.Errorf("add item at depth %d: %w", depth, err)
		}
		if err := g.generateTreeRecursive(path, depth-1, breadth); err != nil {
			return err
		}
	}
	return nil
}

// GenerateChurn performs ops random operations: adds under a random live item
// or the root, removals of a random live item, and completions. Removals
// return ids to their pools, so later adds exercise recycling.
func (g *ListGenerator) GenerateChurn(ops int) error {
	for i := 0; i < ops; i++ {
		switch n := g.rng.Intn(4); {
		case n == 0 && len(g.paths) > 0:
			path := g.paths[g.rng.Intn(len(g.paths))]
			if _, err := g.list.Remove(path); err != nil {
				return fmt.Errorf("remove %s: %w", path, err)
			}
			g.forget(path)
		case n == 1 && len(g.paths) > 0:
			path := g.paths[g.rng.Intn(len(g.paths))]
			if _, err := g.list.Complete(path); err != nil {
				return fmt.Errorf("complete %s: %w", path, err)
			}
		default:
			parent := ""
			if k := g.rng.Intn(len(g.paths) + 1); k < len(g.paths) {
				parent = g.paths[k]
			}
			if _, err := g.add(fmt.Sprintf("Churn %d", i), parent); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *ListGenerator) add(description, parent string) (string, error) {
	item, err := g.list.Add(description, nil, parent)
	if err != nil {
		return "", err
	}
	path := fmt.Sprint(item.ID)
	if parent != "" {
		path = parent + ":" + path
	}
	g.paths = append(g.paths, path)
	return path, nil
}

// forget drops path and everything below it.
func (g *ListGenerator) forget(path string) {
	kept := g.paths[:0]
	for _, p := range g.paths {
		if p != path && !strings.HasPrefix(p, path+":") {
			kept = append(kept, p)
		}
	}
	g.paths = kept
}
