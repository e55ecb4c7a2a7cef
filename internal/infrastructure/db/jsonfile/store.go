// Package jsonfile implements the entity repositories over flat JSON files,
// one array file per entity under a data directory. Every write rewrites
// the whole file; an internal mutex keeps individual file operations
// consistent within this process. Cross-operation atomicity (read, validate,
// write back) is the booking service's job via its per-room lock.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// collection persists one entity type as a JSON array on disk.
type collection[T any] struct {
	mu       sync.Mutex
	path     string
	idOf     func(*T) string
	notFound error
}

func newCollection[T any](path string, idOf func(*T) string, notFound error) *collection[T] {
	return &collection[T]{path: path, idOf: idOf, notFound: notFound}
}

// load reads the whole file. A missing file is an empty collection.
func (c *collection[T]) load() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("jsonfile read %s: %w", c.path, err)
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("jsonfile decode %s: %w", c.path, err)
	}
	return items, nil
}

// store rewrites the whole file. The write goes through a temp file plus
// rename so a crash mid-write never leaves a truncated collection behind.
func (c *collection[T]) store(items []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("jsonfile mkdir: %w", err)
	}

	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile encode %s: %w", c.path, err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("jsonfile write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("jsonfile rename %s: %w", tmp, err)
	}
	return nil
}

func (c *collection[T]) listAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *collection[T]) findByID(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.idOf(&items[i]) == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, c.notFound
}

func (c *collection[T]) insert(item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	return c.store(append(items, *item))
}

func (c *collection[T]) replace(id string, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	for i := range items {
		if c.idOf(&items[i]) == id {
			items[i] = *item
			return c.store(items)
		}
	}
	return c.notFound
}

func (c *collection[T]) removeByID(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for i := range items {
		if c.idOf(&items[i]) != id {
			kept = append(kept, items[i])
		}
	}
	if len(kept) == len(items) {
		return c.notFound
	}
	return c.store(kept)
}

// nextID returns max(numeric ids)+1 as a string, or "1" when empty.
// Non-numeric ids are ignored.
func (c *collection[T]) nextID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return "", err
	}
	max := 0
	for i := range items {
		if n, err := strconv.Atoi(c.idOf(&items[i])); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}
